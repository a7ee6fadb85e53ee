package tasks

import (
	"context"
	"sync"
	"time"
)

// TaskStore хранит задачи в памяти процесса в порядке добавления.
//
// Создаётся при старте сервиса и передаётся в Service явно, глобального состояния нет.
// RWMutex держится только на время операции со слайсом, поэтому
// медленный create не блокирует остальные запросы.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []Task
}

// NewTaskStore создаёт пустое хранилище задач.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: []Task{}}
}

// List возвращает копию коллекции, чтобы вызывающий код не мог менять её снаружи.
func (ts *TaskStore) List() []Task {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	out := make([]Task, len(ts.tasks))
	copy(out, ts.tasks)
	return out
}

// Get ищет задачу по id линейным проходом.
func (ts *TaskStore) Get(id string) (Task, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	idx := ts.indexOf(id)
	if idx == -1 {
		return Task{}, false
	}
	return ts.tasks[idx], true
}

// Append добавляет задачу в конец коллекции.
func (ts *TaskStore) Append(task Task) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.tasks = append(ts.tasks, task)
}

// Replace перезаписывает title и description у задачи с указанным id.
// ID и Completed не трогаем.
func (ts *TaskStore) Replace(id string, in TaskCreate) (Task, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	idx := ts.indexOf(id)
	if idx == -1 {
		return Task{}, false
	}

	ts.tasks[idx].Title = in.Title
	ts.tasks[idx].Description = in.Description
	return ts.tasks[idx], true
}

// Remove удаляет задачу по id, сохраняя порядок остальных.
func (ts *TaskStore) Remove(id string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	idx := ts.indexOf(id)
	if idx == -1 {
		return false
	}

	candidate := make([]Task, 0, len(ts.tasks)-1)
	candidate = append(candidate, ts.tasks[:idx]...)
	candidate = append(candidate, ts.tasks[idx+1:]...)
	ts.tasks = candidate
	return true
}

// Len — текущее количество задач.
func (ts *TaskStore) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return len(ts.tasks)
}

// SimulateSlowIO имитирует медленное хранилище: ждёт d или отмену ctx.
//
// Блокировка при этом не берётся, ждёт только горутина текущего запроса.
func (ts *TaskStore) SimulateSlowIO(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// indexOf вызывается под блокировкой.
func (ts *TaskStore) indexOf(id string) int {
	for i := range ts.tasks {
		if ts.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
