package session

import "errors"

// Claves persistidas en el kv de cada navegador. Se borran juntas.
const (
	KeyToken = "authToken"
	KeyUser  = "authUser"
)

var ErrNoSession = errors.New("no session token")

// User es el perfil del usuario logueado.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email" msg:"required=El email es requerido;email=El email no es válido"`
	Password string `form:"password" validate:"required,min=6" msg:"required=La contraseña es requerida;min=La contraseña debe tener al menos 6 caracteres"`
}

type RegisterForm struct {
	Name            string `form:"name" validate:"notblank,min=2" msg:"notblank=El nombre es requerido;min=El nombre debe tener al menos 2 caracteres"`
	Email           string `form:"email" validate:"required,email" msg:"required=El email es requerido;email=El email no es válido"`
	Phone           string `form:"phone" validate:"required,phone" msg:"required=El teléfono es requerido;phone=El teléfono no es válido"`
	Password        string `form:"password" validate:"required,min=6" msg:"required=La contraseña es requerida;min=La contraseña debe tener al menos 6 caracteres"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password" msg:"required=Confirma tu contraseña;eqfield=Las contraseñas no coinciden"`
}
