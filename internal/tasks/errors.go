package tasks

import (
	"errors"
	"strings"
)

// ErrTaskNotFound возвращается, если задачи с указанным id нет в коллекции.
var ErrTaskNotFound = errors.New("task not found")

// FieldViolation — одно нарушение правил валидации.
//
// Loc указывает путь до поля ("body", "title"), Type — машинно-читаемый код.
type FieldViolation struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError — входные данные не прошли проверку длины полей.
// Возвращается до любой мутации коллекции.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, strings.Join(v.Loc, ".")+": "+v.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
