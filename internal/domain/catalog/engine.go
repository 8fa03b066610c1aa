// Package catalog filtra y pagina en memoria el listado de publicaciones.
//
// El Engine es el único que escribe el filtro, el subconjunto filtrado y la
// página actual. Cambiar cualquier filtro vuelve a la página 1.
package catalog

import (
	"slices"
	"strings"
	"sync"

	"lost-pets-catalog/internal/domain/pets"
	"lost-pets-catalog/internal/platform/pagination"
)

const DefaultPageSize = 9

type Engine struct {
	mu       sync.RWMutex
	all      []pets.Listing
	filtered []pets.Listing
	filter   FilterState
	page     int
	size     int

	// tickets de carga: solo se aplica la respuesta del último pedido emitido
	issued uint64
}

func NewEngine(pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{page: 1, size: pageSize}
}

// BeginLoad emite un ticket para el próximo Load.
func (e *Engine) BeginLoad() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.issued++
	return e.issued
}

// Load reemplaza el listado completo si ticket es el último emitido.
// Respuestas viejas se descartan (devuelve false). La página se conserva, acotada.
func (e *Engine) Load(ticket uint64, items []pets.Listing) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ticket != e.issued {
		return false
	}
	e.all = slices.Clone(items)
	e.recompute()
	e.page = e.clamp(e.page)
	return true
}

// SetFilter cambia un filtro. Cambiar type limpia breed. Valor vacío quita el filtro.
func (e *Engine) SetFilter(key FilterKey, value string) error {
	value = strings.TrimSpace(value)

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.filter
	switch key {
	case KeyType:
		t := pets.PetType(strings.ToLower(value))
		if t != "" && !t.Valid() {
			return ErrInvalidType
		}
		if t != next.Type {
			next.Breed = ""
		}
		next.Type = t
	case KeyBreed:
		if value != "" {
			if next.Type == "" {
				return ErrBreedWithoutType
			}
			if !pets.IsBreedOf(next.Type, value) {
				return ErrBreedTypeMismatch
			}
		}
		next.Breed = value
	case KeyCity:
		next.City = value
	default:
		return ErrUnknownKey
	}

	e.filter = next
	e.recompute()
	e.page = 1
	return nil
}

// Apply aplica un filtro completo (p.ej. leído de la URL) paso a paso.
// Si una parte es inválida se descarta y se devuelve el primer error.
func (e *Engine) Apply(f FilterState) error {
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	e.ClearFilters()
	keep(e.SetFilter(KeyType, string(f.Type)))
	keep(e.SetFilter(KeyBreed, f.Breed))
	keep(e.SetFilter(KeyCity, f.City))
	return first
}

// ClearFilters vuelve al estado vacío. Idempotente.
func (e *Engine) ClearFilters() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.filter = FilterState{}
	e.recompute()
	e.page = 1
}

func (e *Engine) Filter() FilterState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filter
}

// Filtered devuelve una copia del subconjunto filtrado.
func (e *Engine) Filtered() []pets.Listing {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.filtered)
}

func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.filtered)
}

func (e *Engine) PageSize() int { return e.size }

func (e *Engine) CurrentPage() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.page
}

func (e *Engine) TotalPages() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return pagination.TotalPages(len(e.filtered), e.size)
}

// Page devuelve los items de la página actual: [(p-1)*size, p*size) recortado.
func (e *Engine) Page() []pets.Listing {
	e.mu.RLock()
	defer e.mu.RUnlock()

	start := (e.page - 1) * e.size
	if start >= len(e.filtered) || start < 0 {
		return []pets.Listing{}
	}
	end := min(start+e.size, len(e.filtered))
	return slices.Clone(e.filtered[start:end])
}

// SetPage mueve la página actual, acotada a [1, TotalPages]. Devuelve la página resultante.
func (e *Engine) SetPage(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.page = e.clamp(n)
	return e.page
}

// BreedOptions son las razas del tipo seleccionado; vacío sin tipo.
func (e *Engine) BreedOptions() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.filter.Type == "" {
		return []string{}
	}
	return pets.BreedsFor(e.filter.Type)
}

// Window es la tira de paginación para el estado actual.
func (e *Engine) Window() []pagination.Token {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return pagination.Window(e.page, pagination.TotalPages(len(e.filtered), e.size))
}

func (e *Engine) recompute() {
	if e.filter.IsEmpty() {
		e.filtered = slices.Clone(e.all)
		return
	}
	out := make([]pets.Listing, 0, len(e.all))
	for _, l := range e.all {
		if e.filter.Matches(l) {
			out = append(out, l)
		}
	}
	e.filtered = out
}

func (e *Engine) clamp(n int) int {
	total := pagination.TotalPages(len(e.filtered), e.size)
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}
	return n
}
