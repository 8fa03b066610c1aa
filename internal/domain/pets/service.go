package pets

import (
	"context"
	"strings"

	"lost-pets-catalog/internal/platform/apperr"
	"lost-pets-catalog/internal/platform/validation"
)

// Session es lo que el servicio necesita de la sesión del navegador.
type Session interface {
	Guard(ctx context.Context, call func(ctx context.Context, token string) error) error
	UserID() string
}

// Service expone las operaciones sobre publicaciones. Cada llamada remota pasa
// por Session.Guard: un 401 cierra la sesión y vuelve como sesión expirada.
type Service struct {
	api      API
	validate *validation.Validator
}

func NewService(api API, v *validation.Validator) *Service {
	if v == nil {
		v = validation.New()
	}
	return &Service{api: api, validate: v}
}

// All trae el listado completo (todas las páginas).
func (s *Service) All(ctx context.Context, sess Session) ([]Listing, error) {
	var out []Listing
	err := sess.Guard(ctx, func(ctx context.Context, token string) error {
		items, err := s.api.ListAllPets(ctx, token)
		out = items
		return err
	})
	return out, err
}

func (s *Service) Get(ctx context.Context, sess Session, id string) (Detail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Detail{}, ErrNotFound
	}

	var out Detail
	err := sess.Guard(ctx, func(ctx context.Context, token string) error {
		d, err := s.api.GetPet(ctx, token, id)
		out = d
		return err
	})
	return out, err
}

// Mine son las publicaciones del usuario logueado.
func (s *Service) Mine(ctx context.Context, sess Session) ([]Listing, error) {
	all, err := s.All(ctx, sess)
	if err != nil {
		return nil, err
	}
	return OwnedBy(all, sess.UserID()), nil
}

// Search usa el endpoint de búsqueda del backend.
func (s *Service) Search(ctx context.Context, sess Session, q SearchQuery) ([]Listing, error) {
	var out []Listing
	err := sess.Guard(ctx, func(ctx context.Context, token string) error {
		items, err := s.api.SearchPets(ctx, token, q)
		out = items
		return err
	})
	return out, err
}

// Create valida y publica. Con imagen se manda como multipart.
// Un form inválido nunca llega a la API.
func (s *Service) Create(ctx context.Context, sess Session, f Form, img *Image) (Listing, error) {
	f, err := s.Check(f, img)
	if err != nil {
		return Listing{}, err
	}

	d := f.draft()
	var out Listing
	err = sess.Guard(ctx, func(ctx context.Context, token string) error {
		var err error
		if img != nil {
			out, err = s.api.CreatePetWithImage(ctx, token, d, *img)
		} else {
			out, err = s.api.CreatePet(ctx, token, d)
		}
		return err
	})
	return out, err
}

func (s *Service) Update(ctx context.Context, sess Session, id string, f Form) error {
	f, err := s.Check(f, nil)
	if err != nil {
		return err
	}

	d := f.draft()
	return sess.Guard(ctx, func(ctx context.Context, token string) error {
		return s.api.UpdatePet(ctx, token, id, d)
	})
}

func (s *Service) Delete(ctx context.Context, sess Session, id string) error {
	return sess.Guard(ctx, func(ctx context.Context, token string) error {
		return s.api.DeletePet(ctx, token, id)
	})
}

func (s *Service) MarkFound(ctx context.Context, sess Session, id string) error {
	return sess.Guard(ctx, func(ctx context.Context, token string) error {
		return s.api.MarkFound(ctx, token, id)
	})
}

// Check normaliza y valida el form y la imagen. Devuelve apperr.Validation con todos los campos.
func (s *Service) Check(f Form, img *Image) (Form, error) {
	f = f.normalized()

	var fields []apperr.FieldError
	if err := s.validate.Struct(f); err != nil {
		ae := apperr.As(err)
		if ae == nil {
			return f, err
		}
		fields = append(fields, ae.Fields...)
	}

	if f.Type.Valid() && f.Breed != "" && !IsBreedOf(f.Type, f.Breed) {
		fields = append(fields, apperr.FieldError{Field: "breed", Message: "La raza no corresponde al tipo seleccionado"})
	}
	if img != nil {
		fields = append(fields, checkImage(*img)...)
	}

	if len(fields) > 0 {
		return f, apperr.Validation(fields...)
	}
	return f, nil
}

func checkImage(img Image) []apperr.FieldError {
	var out []apperr.FieldError
	if !strings.HasPrefix(strings.ToLower(img.ContentType), "image/") {
		out = append(out, apperr.FieldError{Field: "picture", Message: "El archivo debe ser una imagen"})
	}
	if img.Size > MaxImageSize {
		out = append(out, apperr.FieldError{Field: "picture", Message: "La imagen no debe superar los 5MB"})
	}
	return out
}
