package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service - слой бизнес-логики: handler -> service -> store.
//
// Все проверки (валидация, поиск по id) выполняются до мутации,
// поэтому неудачная операция никогда не меняет коллекцию частично.
type Service struct {
	store       *TaskStore
	createDelay time.Duration
}

// NewService создаёт сервис поверх хранилища.
// createDelay — искусственная задержка перед добавлением задачи в CreateTask.
func NewService(store *TaskStore, createDelay time.Duration) *Service {
	return &Service{
		store:       store,
		createDelay: createDelay,
	}
}

// Welcome возвращает приветственное сообщение API.
func (s *Service) Welcome() MessageResponse {
	return MessageResponse{Message: welcomeMessage}
}

// ListTasks возвращает все задачи в порядке добавления.
func (s *Service) ListTasks(ctx context.Context) ([]Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.List(), nil
}

// GetTask возвращает задачу по id или ErrTaskNotFound.
func (s *Service) GetTask(ctx context.Context, id string) (Task, error) {
	if err := ctx.Err(); err != nil {
		return Task{}, err
	}

	task, ok := s.store.Get(id)
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return task, nil
}

// CreateTask валидирует вход, выдерживает createDelay и добавляет задачу в конец коллекции.
//
// Задержка прерывается по ctx.Done(): в этом случае ничего не добавляется.
func (s *Service) CreateTask(ctx context.Context, in TaskCreate) (Task, error) {
	if err := ValidateTaskCreate(in); err != nil {
		return Task{}, err
	}

	if err := s.store.SimulateSlowIO(ctx, s.createDelay); err != nil {
		return Task{}, err
	}

	created := Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
	}
	s.store.Append(created)

	zap.L().Debug("task created", zap.String("task_id", created.ID))
	return created, nil
}

// UpdateTask перезаписывает title и description задачи.
//
// Синхронная операция: без задержки, в отличие от CreateTask.
func (s *Service) UpdateTask(ctx context.Context, id string, in TaskCreate) (Task, error) {
	if err := ctx.Err(); err != nil {
		return Task{}, err
	}
	if err := ValidateTaskCreate(in); err != nil {
		return Task{}, err
	}

	updated, ok := s.store.Replace(id, in)
	if !ok {
		return Task{}, ErrTaskNotFound
	}

	zap.L().Debug("task updated", zap.String("task_id", id))
	return updated, nil
}

// DeleteTask удаляет задачу по id и возвращает подтверждение.
func (s *Service) DeleteTask(ctx context.Context, id string) (MessageResponse, error) {
	if err := ctx.Err(); err != nil {
		return MessageResponse{}, err
	}

	if !s.store.Remove(id) {
		return MessageResponse{}, ErrTaskNotFound
	}

	zap.L().Debug("task deleted", zap.String("task_id", id))
	return MessageResponse{Message: deletedMessage}, nil
}
