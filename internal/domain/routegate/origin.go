package routegate

import (
	"context"
	"strings"

	"lost-pets-catalog/internal/ports/kv"
)

// KeyReturnTo es la clave donde se guarda el destino original.
const KeyReturnTo = "returnTo"

// Origin recuerda a dónde quería ir el usuario antes de mandarlo al login.
// Se consume una sola vez.
type Origin struct {
	kv kv.Store
}

func NewOrigin(store kv.Store) *Origin {
	return &Origin{kv: store}
}

// Remember guarda path si es un path relativo del propio sitio; si no, lo ignora.
func (o *Origin) Remember(ctx context.Context, path string) error {
	if !SafePath(path) {
		return nil
	}
	return o.kv.Set(ctx, KeyReturnTo, path)
}

// Consume devuelve el destino guardado y lo borra. Sin destino => "".
func (o *Origin) Consume(ctx context.Context) string {
	path, ok, err := o.kv.Get(ctx, KeyReturnTo)
	if err != nil || !ok {
		return ""
	}
	_ = o.kv.Remove(ctx, KeyReturnTo)
	if !SafePath(path) {
		return ""
	}
	return path
}

// SafePath acepta solo paths absolutos del mismo sitio ("/pet/3?x=1").
// Rechaza URLs con esquema, "//host" y las páginas de login/registro.
func SafePath(p string) bool {
	if p == "" || !strings.HasPrefix(p, "/") {
		return false
	}
	if strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return false
	}
	if strings.ContainsAny(p, "\r\n") {
		return false
	}
	base, _, _ := strings.Cut(p, "?")
	switch base {
	case LoginPath, "/register", "/logout":
		return false
	}
	return true
}

type originKey struct{}

// WithOrigin / OriginFrom llevan el Origin del navegador en el context del request.
func WithOrigin(ctx context.Context, o *Origin) context.Context {
	return context.WithValue(ctx, originKey{}, o)
}

func OriginFrom(ctx context.Context) (*Origin, bool) {
	o, ok := ctx.Value(originKey{}).(*Origin)
	return o, ok && o != nil
}
