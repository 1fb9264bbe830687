// Package validator envuelve go-playground/validator para validar los DTO de
// entrada y producir mensajes de campo legibles.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct valida un struct según sus tags `validate`.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// FieldError error de validación de un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Format convierte el error del validador en una lista de errores de campo.
func Format(err error) []FieldError {
	var out []FieldError
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Tag:     fe.Tag(),
			Message: fmt.Sprintf("el campo %s no cumple la regla %s", strings.ToLower(fe.Field()), fe.Tag()),
		})
	}
	return out
}

// Message resume los errores de campo en una sola línea para ErrorResponse.
func Message(err error) string {
	fields := Format(err)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Message)
	}
	return strings.Join(parts, "; ")
}
