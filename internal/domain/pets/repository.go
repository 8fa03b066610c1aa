package pets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet not found")

// API es el backend remoto de publicaciones. Todas las llamadas van con el token del usuario.
// Un 401 se reporta envolviendo auth.ErrUnauthorized.
type API interface {
	ListPets(ctx context.Context, token string, page, size int) (ListPage, error)
	ListAllPets(ctx context.Context, token string) ([]Listing, error)
	GetPet(ctx context.Context, token, id string) (Detail, error)
	CreatePet(ctx context.Context, token string, d Draft) (Listing, error)
	CreatePetWithImage(ctx context.Context, token string, d Draft, img Image) (Listing, error)
	UpdatePet(ctx context.Context, token, id string, d Draft) error
	DeletePet(ctx context.Context, token, id string) error
	MarkFound(ctx context.Context, token, id string) error
	SearchPets(ctx context.Context, token string, q SearchQuery) ([]Listing, error)
}
