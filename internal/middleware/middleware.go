// Package middleware содержит HTTP‑middleware: функции-обёртки над http.Handler,
// которые добавляют общий функционал (логирование, заголовки, таймауты)
// вокруг основного обработчика без изменения его кода.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// StatusClientClosedRequest пишется в лог вместо статуса, если клиент отменил запрос
// и обработчик ничего не ответил (код 499 в духе nginx, клиенту не отправляется).
const StatusClientClosedRequest = 499

// LoggingMiddleware измеряет время обработки запроса и пишет запись в лог
// после того, как основной обработчик завершил работу.
//
// Важно: логирование идёт "после" next.ServeHTTP, поэтому в latency входит
// вся обработка запроса обработчиком и другими middleware внутри цепочки.
// Ответы 5xx пишутся с уровнем error.
func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			canceled := status == 0 && errors.Is(r.Context().Err(), context.Canceled)
			switch {
			case canceled:
				// Клиент ушёл до ответа: фактически ничего не отправлено.
				status = StatusClientClosedRequest
			case status == 0:
				// Обработчик ничего не записал: net/http ответит 200.
				status = http.StatusOK
			}

			fields := []zap.Field{
				zap.Int("status", status),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("latency", time.Since(start)),
			}
			if canceled {
				fields = append(fields, zap.Bool("canceled", true))
			}

			if status >= http.StatusInternalServerError {
				logger.Error("http request", fields...)
				return
			}
			logger.Info("http request", fields...)
		})
	}
}

// contentTypeJSON — единственный тип ответов API, включая ошибки 404/405/422.
const contentTypeJSON = "application/json; charset=utf-8"

// JSONHeaderMiddleware выставляет Content-Type заранее, до вызова обработчика:
// после первого Write заголовки уже не меняются.
func JSONHeaderMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeJSON)
		next.ServeHTTP(w, r)
	})
}
