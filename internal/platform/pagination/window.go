// Package pagination calcula la tira compacta de controles de página.
// Todo es función pura de (página actual, total de páginas).
package pagination

import "strconv"

// MaxVisible es la cantidad de páginas que se muestran sin truncar.
const MaxVisible = 5

// Token es un control de la tira: un número de página o un ellipsis.
type Token struct {
	Page     int
	Ellipsis bool
}

func page(n int) Token { return Token{Page: n} }

var ellipsis = Token{Ellipsis: true}

func (t Token) String() string {
	if t.Ellipsis {
		return "…"
	}
	return strconv.Itoa(t.Page)
}

// TotalPages es ceil(count/size). size <= 0 se trata como una sola página.
func TotalPages(count, size int) int {
	if count <= 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// Window devuelve los tokens a mostrar. Con total <= 1 no hay paginador.
func Window(current, total int) []Token {
	if total <= 1 {
		return nil
	}

	out := make([]Token, 0, MaxVisible+2)
	switch {
	case total <= MaxVisible:
		for i := 1; i <= total; i++ {
			out = append(out, page(i))
		}
	case current <= 3:
		for i := 1; i <= 4; i++ {
			out = append(out, page(i))
		}
		out = append(out, ellipsis, page(total))
	case current >= total-2:
		out = append(out, page(1), ellipsis)
		for i := total - 3; i <= total; i++ {
			out = append(out, page(i))
		}
	default:
		out = append(out, page(1), ellipsis,
			page(current-1), page(current), page(current+1),
			ellipsis, page(total))
	}
	return out
}

// Controls indica qué botones Anterior/Siguiente quedan deshabilitados.
type Controls struct {
	PrevDisabled bool
	NextDisabled bool
	Prev         int
	Next         int
}

func NewControls(current, total int) Controls {
	return Controls{
		PrevDisabled: current <= 1,
		NextDisabled: current >= total,
		Prev:         max(current-1, 1),
		Next:         min(current+1, max(total, 1)),
	}
}

// Target resuelve el click sobre un token: los ellipsis no navegan.
func Target(t Token, current int) int {
	if t.Ellipsis {
		return current
	}
	return t.Page
}

// Summary es el rango "Mostrando First-Last de Total".
type Summary struct {
	First int
	Last  int
	Total int
}

func NewSummary(current, size, count int) Summary {
	if count <= 0 || size <= 0 {
		return Summary{}
	}
	return Summary{
		First: (current-1)*size + 1,
		Last:  min(current*size, count),
		Total: count,
	}
}
