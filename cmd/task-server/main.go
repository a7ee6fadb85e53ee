package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"task-manager-api/internal/config"
	"task-manager-api/internal/middleware"
	"task-manager-api/internal/tasks"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // алиас, чтобы не конфликтовать с internal/middleware
	"go.uber.org/zap"
)

// Здесь только:
// - создание зависимостей;
// - настройка middleware;
// - запуск HTTP-сервера и graceful shutdown.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	// Пакеты пишут в лог через zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	// Хранилище живёт ровно столько, сколько процесс.
	store := tasks.NewTaskStore()
	svc := tasks.NewService(store, cfg.CreateDelay)
	handler := tasks.NewHandler(svc, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: chiWithMiddleware(logger, handler.Router()),
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.Duration("create_delay", cfg.CreateDelay),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				logger.Info("shutting down server")
				return srv.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	logger.Info("server stopped", zap.Int("exit_code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}

// chiWithMiddleware навешивает базовые middleware на уже собранный роутер.
//
// internal/tasks остаётся независимым от общесервисных middleware.
func chiWithMiddleware(logger *zap.Logger, h http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(chiMiddleware.Recoverer)

	r.Mount("/", h)
	return r
}

func newLogger(env string) (*zap.Logger, error) {
	if env == config.EnvDevelopment {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
