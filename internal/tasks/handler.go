// Package tasks — модуль задач: модель, in-memory хранилище, бизнес-логика и HTTP-слой.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	appMiddleware "task-manager-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler - HTTP слой модуля задач
//
// Здесь лежит всё, что относится к HTTP:
// роуты, парсинг JSON, коды ответов, маппинг ошибок.
// Состояние и бизнес-логика живут в Service.
type Handler struct {
	svc            *Service
	requestTimeout time.Duration
}

// NewHandler создаёт Handler поверх сервиса.
// requestTimeout <= 0 отключает таймаут на запросы tasks API.
func NewHandler(svc *Service, requestTimeout time.Duration) *Handler {
	return &Handler{svc: svc, requestTimeout: requestTimeout}
}

// errorResponse — тело ошибки: {"detail": "..."} или {"detail": [нарушения]}.
type errorResponse struct {
	Detail any `json:"detail"`
}

// Router собирает HTTP-роутер: приветствие на "/" и CRUD на "/tasks".
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(appMiddleware.JSONHeaderMiddleware)

	// NotFound/MethodNotAllowed задаём до Route, чтобы chi передал их в подроутер.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", h.welcome)

	r.Route("/tasks", func(r chi.Router) {
		r.Use(appMiddleware.RequestTimeoutMiddleware(h.requestTimeout))

		r.Get("/", h.getAllTasks)
		r.Post("/", h.createTask)

		r.Get("/{id}", h.getTaskByID)
		r.Put("/{id}", h.updateTask)
		r.Delete("/{id}", h.deleteTask)
	})
	return r
}

// welcome обрабатывает GET /
func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Welcome())
}

// getAllTasks обрабатывает GET /tasks
func (h *Handler) getAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListTasks(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// createTask обрабатывает POST /tasks
//
// Отвечает с задержкой сервиса; остальные запросы в это время обслуживаются.
func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	in, err := decodeTaskCreate(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	created, err := h.svc.CreateTask(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// getTaskByID обрабатывает GET /tasks/{id}
func (h *Handler) getTaskByID(w http.ResponseWriter, r *http.Request) {
	task, err := h.svc.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// updateTask обрабатывает PUT /tasks/{id}
func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	in, err := decodeTaskCreate(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteTask обрабатывает DELETE /tasks/{id}
func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.DeleteTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeTaskCreate читает тело запроса как ровно один JSON-объект TaskCreate.
//
// Всё, кроме пробелов, после объекта считается ошибкой разбора.
func decodeTaskCreate(r *http.Request) (TaskCreate, error) {
	var in TaskCreate

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&in); err != nil {
		return TaskCreate{}, decodeViolation(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return TaskCreate{}, decodeViolation(errTrailingData)
	}
	return in, nil
}

// handleError переводит ошибку сервиса в HTTP-ответ.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: verr.Violations})
	case errors.Is(err, ErrTaskNotFound):
		writeDetail(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, context.Canceled):
		// Клиент ушёл или сервер останавливается: отвечать уже некому.
		zap.L().Debug("request canceled", zap.String("path", r.URL.Path))
	case errors.Is(err, context.DeadlineExceeded):
		writeDetail(w, http.StatusRequestTimeout, "Request timeout")
	default:
		zap.L().Error("tasks request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeJSON пишет статус и JSON-тело. Content-Type выставляет JSONHeaderMiddleware.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}
