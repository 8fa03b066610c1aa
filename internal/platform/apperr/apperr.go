// Package apperr define la taxonomía de errores que ve el usuario:
// validación, autenticación rechazada, sesión expirada y red.
//
// Cada error concreto es un *Error cuyo Kind es uno de los sentinels de abajo,
// así que los callers deciden con errors.Is sin conocer el tipo.
package apperr

import (
	"errors"
	"strings"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrAuth           = errors.New("authentication rejected")
	ErrSessionExpired = errors.New("session expired")
	ErrNetwork        = errors.New("network error")
)

// Mensajes por defecto (idioma de la UI).
const (
	MsgSessionExpired = "Sesión expirada. Por favor, inicia sesión nuevamente."
	MsgLoginFailed    = "Error al iniciar sesión. Verifica tus credenciales."
	MsgRegisterFailed = "Error al registrar usuario. Intenta nuevamente."
	MsgNetwork        = "No se pudo completar la operación. Intenta nuevamente."
	MsgInvalidForm    = "Revisa los campos marcados."
)

// FieldError es un error de validación sobre un campo del formulario.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    error
	Message string
	Fields  []FieldError
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap expone Kind y Cause para errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func Validation(fields ...FieldError) *Error {
	return &Error{Kind: ErrValidation, Message: MsgInvalidForm, Fields: fields}
}

func Auth(msg string, cause error) *Error {
	return &Error{Kind: ErrAuth, Message: msg, Cause: cause}
}

func SessionExpired(cause error) *Error {
	return &Error{Kind: ErrSessionExpired, Message: MsgSessionExpired, Cause: cause}
}

func Network(msg string, cause error) *Error {
	if msg == "" {
		msg = MsgNetwork
	}
	return &Error{Kind: ErrNetwork, Message: msg, Cause: cause}
}

// As extrae el *Error de la cadena; nil si no hay.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// UserMessage devuelve el texto a mostrar inline para err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if ae := As(err); ae != nil && ae.Message != "" {
		return ae.Message
	}
	return MsgNetwork
}

// FieldMap indexa los errores de campo por nombre (útil en templates).
func FieldMap(err error) map[string]string {
	out := map[string]string{}
	ae := As(err)
	if ae == nil {
		return out
	}
	for _, f := range ae.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}
