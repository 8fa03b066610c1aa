package catalog

import (
	"errors"
	"net/url"
	"strings"

	"lost-pets-catalog/internal/domain/pets"
)

// FilterKey es uno de los filtros del catálogo.
type FilterKey string

const (
	KeyType  FilterKey = "type"
	KeyBreed FilterKey = "breed"
	KeyCity  FilterKey = "city"
)

var (
	ErrUnknownKey        = errors.New("unknown filter key")
	ErrInvalidType       = errors.New("invalid pet type")
	ErrBreedWithoutType  = errors.New("breed requires a type")
	ErrBreedTypeMismatch = errors.New("breed does not belong to type")
)

// FilterState es la selección actual. Breed solo puede estar si Type está.
type FilterState struct {
	Type  pets.PetType `json:"type,omitempty"`
	Breed string       `json:"breed,omitempty"`
	City  string       `json:"city,omitempty"`
}

func (f FilterState) IsEmpty() bool {
	return f.Type == "" && f.Breed == "" && f.City == ""
}

// Matches es el AND de los filtros presentes. City busca substring en Location.
func (f FilterState) Matches(l pets.Listing) bool {
	if f.Type != "" && l.Type != f.Type {
		return false
	}
	if f.Breed != "" && l.Breed != f.Breed {
		return false
	}
	if f.City != "" && !strings.Contains(l.Location, f.City) {
		return false
	}
	return true
}

// Values serializa el filtro a query string (solo claves presentes).
func (f FilterState) Values() url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set(string(KeyType), string(f.Type))
	}
	if f.Breed != "" {
		q.Set(string(KeyBreed), f.Breed)
	}
	if f.City != "" {
		q.Set(string(KeyCity), f.City)
	}
	return q
}

// FilterFromValues lee el filtro de la query sin validarlo; Engine.Apply lo valida.
func FilterFromValues(q url.Values) FilterState {
	return FilterState{
		Type:  pets.PetType(strings.TrimSpace(q.Get(string(KeyType)))),
		Breed: strings.TrimSpace(q.Get(string(KeyBreed))),
		City:  strings.TrimSpace(q.Get(string(KeyCity))),
	}
}
