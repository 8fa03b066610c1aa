// Package validation envuelve go-playground/validator con mensajes en español
// y devuelve los fallos como apperr.Validation. Nada de lo que falla acá llega
// a la red.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"lost-pets-catalog/internal/platform/apperr"
)

var phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// El nombre del campo sale del tag `form`, que es lo que ve la UI.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{v: v}
}

// Struct valida s y traduce cada fallo a un apperr.FieldError.
// Los mensajes vienen del tag `msg` (clave=mensaje;clave=mensaje) si está,
// si no, de un texto genérico por regla.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := messagesFor(s)
	fields := make([]apperr.FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, apperr.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe, msgs[fe.StructField()]),
		})
	}
	return apperr.Validation(fields...)
}

func fieldMessage(fe validator.FieldError, custom map[string]string) string {
	if m, ok := custom[fe.Tag()]; ok {
		return m
	}
	switch fe.Tag() {
	case "required", "notblank":
		return "Este campo es requerido"
	case "email":
		return "El email no es válido"
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("Debe tener como máximo %s caracteres", fe.Param())
	case "eqfield":
		return "Los valores no coinciden"
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s", fe.Param())
	case "phone":
		return "El teléfono no es válido"
	default:
		return fmt.Sprintf("Valor inválido (%s)", fe.Tag())
	}
}

// messagesFor lee los tags `msg` de la struct (o puntero a struct).
func messagesFor(s any) map[string]map[string]string {
	out := map[string]map[string]string{}
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		raw := f.Tag.Get("msg")
		if raw == "" {
			continue
		}
		m := map[string]string{}
		for _, part := range strings.Split(raw, ";") {
			k, v, ok := strings.Cut(part, "=")
			if !ok {
				continue
			}
			m[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
		out[f.Name] = m
	}
	return out
}
