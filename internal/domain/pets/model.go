package pets

import (
	"io"
	"time"
)

// PetType define los tipos de mascota soportados.
// @Enum perro, gato, otro
type PetType string

const (
	TypeDog   PetType = "perro"
	TypeCat   PetType = "gato"
	TypeOther PetType = "otro"
)

// Types en el orden en que se muestran en los selects.
var Types = []PetType{TypeDog, TypeCat, TypeOther}

func (t PetType) Valid() bool {
	switch t {
	case TypeDog, TypeCat, TypeOther:
		return true
	}
	return false
}

// Textos que se muestran cuando la API no manda el dato.
const (
	NotAvailable   = "Información no disponible"
	NoDescription  = "Sin descripción disponible"
	LastSeenLayout = "02-01-2006" // DD-MM-YYYY, formato que espera la API
)

// Listing es una publicación tal como aparece en el catálogo.
// En el listado los datos de contacto del dueño no vienen: quedan en NotAvailable.
type Listing struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        PetType   `json:"type"`
	Breed       string    `json:"breed"`
	Location    string    `json:"location"` // "Provincia, Ciudad"
	OwnerID     string    `json:"owner_id,omitempty"`
	OwnerName   string    `json:"owner_name"`
	OwnerPhone  string    `json:"owner_phone"`
	CreatedAt   time.Time `json:"created_at"`
	ImageURL    string    `json:"image_url"`
	Found       bool      `json:"found"`
	LastSeen    string    `json:"last_seen_time"`
}

// Detail agrega contacto del dueño y permisos calculados por la API para quien mira.
// CanEdit y CanDelete son independientes.
type Detail struct {
	Listing
	OwnerEmail string `json:"owner_email,omitempty"`
	CanEdit    bool   `json:"can_edit"`
	CanDelete  bool   `json:"can_delete"`
}

// ListPage es una página del listado remoto.
type ListPage struct {
	Items      []Listing
	Total      int
	Page       int
	Size       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Draft es lo que se envía al crear o editar una publicación.
type Draft struct {
	Name        string
	Description string
	Type        PetType
	Breed       string
	LastSeen    time.Time
	Province    string
	City        string
	PictureURL  string
}

// Image es la foto adjunta al publicar.
type Image struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// SearchQuery son los filtros que acepta /pets/search.
type SearchQuery struct {
	Type   PetType
	Breed  string
	City   string
	Search string
}
