package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware_LogsRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	h := chiMiddleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})))

	req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.InfoLevel, entry.Level)
	require.Equal(t, "http request", entry.Message)

	fields := entry.ContextMap()
	require.Equal(t, int64(http.StatusCreated), fields["status"])
	require.Equal(t, http.MethodPost, fields["method"])
	require.Equal(t, "/tasks", fields["path"])
	require.Equal(t, int64(2), fields["bytes"])
	require.NotEmpty(t, fields["request_id"])
}

func TestLoggingMiddleware_DefaultStatusIsOK(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	h := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 1, logs.Len())
	require.Equal(t, int64(http.StatusOK), logs.All()[0].ContextMap()["status"])
}

func TestLoggingMiddleware_ServerErrorLogsAtErrorLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	h := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tasks", nil))

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestLoggingMiddleware_CanceledRequestIsNotLoggedAsOK(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	h := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/tasks", nil).WithContext(ctx)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, int64(StatusClientClosedRequest), fields["status"])
	require.Equal(t, true, fields["canceled"])
}

func TestJSONHeaderMiddleware(t *testing.T) {
	h := JSONHeaderMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestRequestTimeoutMiddleware_SetsDeadline(t *testing.T) {
	var (
		deadline time.Time
		ok       bool
	)
	h := RequestTimeoutMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}

func TestRequestTimeoutMiddleware_DisabledForNonPositive(t *testing.T) {
	var ok bool
	h := RequestTimeoutMiddleware(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.False(t, ok)
}
