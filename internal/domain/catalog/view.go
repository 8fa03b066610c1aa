package catalog

import (
	"net/url"
	"strconv"

	"lost-pets-catalog/internal/domain/pets"
	"lost-pets-catalog/internal/platform/pagination"
	"lost-pets-catalog/internal/platform/view"
)

// Link es un control del paginador.
type Link struct {
	Label    string
	Href     string
	Active   bool
	Ellipsis bool
	Disabled bool
}

// PageView es el modelo de la página del catálogo.
type PageView struct {
	Filter    FilterState
	Types     []view.Option
	Breeds    []view.Option
	Cities    []view.Option
	Items     []pets.Listing
	Count     int
	ShowPager bool
	Links     []Link
	Prev      Link
	Next      Link
	Summary   pagination.Summary
}

func buildPageView(e *Engine) PageView {
	f := e.Filter()
	current := e.CurrentPage()
	total := e.TotalPages()

	pv := PageView{
		Filter:  f,
		Items:   e.Page(),
		Count:   e.Count(),
		Summary: pagination.NewSummary(current, e.PageSize(), e.Count()),
	}

	for _, t := range pets.Types {
		pv.Types = append(pv.Types, view.Option{Value: string(t), Label: view.TypeLabel(string(t)), Selected: t == f.Type})
	}
	pv.Breeds = view.Options(e.BreedOptions(), f.Breed)
	pv.Cities = view.Options(pets.Cities(), f.City)

	tokens := e.Window()
	pv.ShowPager = len(tokens) > 0
	for _, tok := range tokens {
		if tok.Ellipsis {
			pv.Links = append(pv.Links, Link{Label: tok.String(), Ellipsis: true})
			continue
		}
		pv.Links = append(pv.Links, Link{
			Label:  tok.String(),
			Href:   pageHref(f, tok.Page),
			Active: tok.Page == current,
		})
	}

	ctl := pagination.NewControls(current, total)
	pv.Prev = Link{Label: "Anterior", Href: pageHref(f, ctl.Prev), Disabled: ctl.PrevDisabled}
	pv.Next = Link{Label: "Siguiente", Href: pageHref(f, ctl.Next), Disabled: ctl.NextDisabled}
	return pv
}

// CanonicalURL es la URL del catálogo para un filtro y página.
func CanonicalURL(f FilterState, page int) string {
	q := f.Values()
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

func pageHref(f FilterState, page int) string {
	return CanonicalURL(f, page)
}

func pageFromQuery(q url.Values) int {
	n, err := strconv.Atoi(q.Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
