// Package config читает настройки сервиса из окружения (и необязательного .env).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config — настройки процесса. Значения по умолчанию воспроизводят
// поведение сервиса без какого-либо окружения.
type Config struct {
	AppEnv          string
	AppPort         string
	CreateDelay     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// LoadConfig загружает .env (если он есть) и собирает Config из переменных окружения.
//
// Ошибка возвращается, если длительность не парсится или отрицательна,
// а также если задержка create не укладывается в таймаут запроса.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	createDelay, err := getDuration("TASKS_CREATE_DELAY", 500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	requestTimeout, err := getDuration("REQUEST_TIMEOUT", 2*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	// Иначе каждый create отвечал бы 408 и ничего не сохранял.
	if requestTimeout > 0 && createDelay >= requestTimeout {
		return nil, fmt.Errorf("config: TASKS_CREATE_DELAY (%s) must be less than REQUEST_TIMEOUT (%s)", createDelay, requestTimeout)
	}

	return &Config{
		AppEnv:          getEnv("APP_ENV", EnvProduction),
		AppPort:         getEnv("APP_PORT", "8080"),
		CreateDelay:     createDelay,
		RequestTimeout:  requestTimeout,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

// Addr — адрес для http.Server.
func (c *Config) Addr() string {
	return ":" + c.AppPort
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: %s must be >= 0, got %s", key, raw)
	}
	return d, nil
}
