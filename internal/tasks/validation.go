package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate — общий экземпляр валидатора: он кэширует разбор тегов структур
// и безопасен для конкурентного использования.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках хотим видеть имена полей из JSON ("title"), а не из Go ("Title").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateTaskCreate проверяет длины полей по тегам validate у TaskCreate.
//
// Возвращает *ValidationError со всеми нарушениями сразу, а не только первым.
func ValidateTaskCreate(in TaskCreate) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Violations: make([]FieldViolation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, toViolation(fe))
	}
	return out
}

// toViolation переводит ошибку валидатора в формат ответа API.
func toViolation(fe validator.FieldError) FieldViolation {
	v := FieldViolation{Loc: []string{"body", fe.Field()}}

	switch fe.Tag() {
	case "required":
		v.Type = "missing"
		v.Msg = "Field required"
	case "min":
		v.Type = "string_too_short"
		v.Msg = fmt.Sprintf("String should have at least %s characters", fe.Param())
	case "max":
		v.Type = "string_too_long"
		v.Msg = fmt.Sprintf("String should have at most %s characters", fe.Param())
	default:
		v.Type = "value_error"
		v.Msg = fe.Error()
	}
	return v
}

// errTrailingData — после JSON-объекта в теле есть что-то ещё.
var errTrailingData = errors.New("unexpected data after JSON object")

// decodeViolation переводит ошибку разбора тела в формат ответа API.
//
// Неверный тип поля ({"title": 123}) привязывается к самому полю,
// остальное (битый JSON, лишние данные) — к телу целиком.
func decodeViolation(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &ValidationError{Violations: []FieldViolation{{
				Loc:  []string{"body"},
				Msg:  "Input should be a valid dictionary or object to extract fields from",
				Type: "model_attributes_type",
			}}}
		}
		return &ValidationError{Violations: []FieldViolation{{
			Loc:  append([]string{"body"}, strings.Split(typeErr.Field, ".")...),
			Msg:  "Input should be a valid string",
			Type: "string_type",
		}}}
	}

	return &ValidationError{Violations: []FieldViolation{{
		Loc:  []string{"body"},
		Msg:  "JSON decode error: " + err.Error(),
		Type: "json_invalid",
	}}}
}
