package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lost-pets-catalog/internal/domain/pets"
	"lost-pets-catalog/internal/domain/routegate"
	"lost-pets-catalog/internal/domain/session"
	"lost-pets-catalog/internal/platform/apperr"
	"lost-pets-catalog/internal/platform/logger"
	"lost-pets-catalog/internal/platform/view"
)

type Deps struct {
	Pets     *pets.Service
	View     *view.Renderer
	Gate     session.Gate
	PageSize int
	Logger   logger.Logger
}

// RegisterRoutes monta el catálogo (protegido) y /api/breeds (abierto).
func RegisterRoutes(r chi.Router, d Deps) {
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}

	r.Group(func(pr chi.Router) {
		pr.Use(d.Gate(routegate.RequireAuth))

		pr.Get("/", catalogPageHandler(d))
		pr.Get("/filter", setFilterHandler())
		pr.Get("/filters/clear", clearFiltersHandler())
		pr.Get("/api/catalog", catalogAPIHandler(d))
	})

	r.Group(func(or chi.Router) {
		or.Use(d.Gate(routegate.Open))
		or.Get("/api/breeds", breedsHandler())
	})
}

type windowToken struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

type catalogResponse struct {
	Items      []pets.Listing `json:"items"`
	Filter     FilterState    `json:"filter"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
	Window     []windowToken  `json:"window"`
	Breeds     []string       `json:"breeds"`
}

type breedsResponse struct {
	Type   pets.PetType `json:"type"`
	Breeds []string     `json:"breeds"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// load arma un Engine con el listado completo y el filtro/página de la query.
// filterOK es false si la query traía un filtro inválido (se descarta esa parte).
func load(r *http.Request, d Deps) (e *Engine, filterOK bool, err error) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return nil, false, apperr.SessionExpired(session.ErrNoSession)
	}

	e = NewEngine(d.PageSize)
	ticket := e.BeginLoad()
	items, err := d.Pets.All(r.Context(), sess)
	if err != nil {
		return nil, false, err
	}
	e.Load(ticket, items)

	q := r.URL.Query()
	filterErr := e.Apply(FilterFromValues(q))
	e.SetPage(pageFromQuery(q))
	return e, filterErr == nil, nil
}

func catalogPageHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, filterOK, err := load(r, d)
		if err != nil {
			if session.RedirectIfExpired(w, r, err) {
				return
			}
			d.Logger.Warn("catalog load failed", map[string]any{"error": err})
			p := session.PageFor(r, "Mascotas perdidas")
			p.Error = apperr.UserMessage(err)
			p.Data = buildPageView(NewEngine(d.PageSize))
			d.View.Render(w, http.StatusBadGateway, view.PageCatalog, p)
			return
		}

		// filtro inválido en la URL: se redirige a la versión válida
		if !filterOK {
			http.Redirect(w, r, CanonicalURL(e.Filter(), 1), http.StatusSeeOther)
			return
		}

		p := session.PageFor(r, "Mascotas perdidas")
		p.Notice = noticeText(r.URL.Query().Get("notice"))
		p.Data = buildPageView(e)
		d.View.Render(w, http.StatusOK, view.PageCatalog, p)
	}
}

// setFilterHandler aplica un solo paso SetFilter sobre el filtro actual
// (type/breed/city en la query) y redirige a la URL canónica, página 1.
func setFilterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		e := NewEngine(DefaultPageSize)
		_ = e.Apply(FilterFromValues(q))
		_ = e.SetFilter(FilterKey(q.Get("key")), q.Get("value"))

		http.Redirect(w, r, CanonicalURL(e.Filter(), 1), http.StatusSeeOther)
	}
}

func clearFiltersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, CanonicalURL(FilterState{}, 1), http.StatusSeeOther)
	}
}

// catalogAPIHandler godoc
// @Summary Página del catálogo
// @Description Devuelve la página pedida del listado filtrado, junto con la tira de paginación y las razas del tipo elegido. Requiere sesión iniciada (cookie del navegador).
// @Tags catalog
// @Produce json
// @Param type query string false "Tipo de mascota (perro, gato, otro)"
// @Param breed query string false "Raza exacta; requiere type"
// @Param city query string false "Texto contenido en la ubicación (ej: Plata)"
// @Param page query int false "Página (se acota a [1, total_pages])"
// @Success 200 {object} catalogResponse
// @Failure 400 {object} errorResponse "filtro inválido"
// @Failure 401 {object} errorResponse "sesión expirada"
// @Failure 502 {object} errorResponse "error de la API remota"
// @Router /api/catalog [get]
func catalogAPIHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, filterOK, err := load(r, d)
		if err != nil {
			if errors.Is(err, apperr.ErrSessionExpired) {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: apperr.MsgSessionExpired})
				return
			}
			d.Logger.Warn("catalog api load failed", map[string]any{"error": err})
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: apperr.UserMessage(err)})
			return
		}
		if !filterOK {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "filtro inválido"})
			return
		}

		tokens := e.Window()
		win := make([]windowToken, 0, len(tokens))
		for _, t := range tokens {
			win = append(win, windowToken{Page: t.Page, Ellipsis: t.Ellipsis})
		}

		writeJSON(w, http.StatusOK, catalogResponse{
			Items:      e.Page(),
			Filter:     e.Filter(),
			Page:       e.CurrentPage(),
			PageSize:   e.PageSize(),
			TotalPages: e.TotalPages(),
			Total:      e.Count(),
			Window:     win,
			Breeds:     e.BreedOptions(),
		})
	}
}

// breedsHandler godoc
// @Summary Razas por tipo
// @Description Devuelve las razas disponibles para un tipo de mascota. Sin tipo devuelve una lista vacía.
// @Tags catalog
// @Produce json
// @Param type query string false "Tipo de mascota (perro, gato, otro)"
// @Success 200 {object} breedsResponse
// @Failure 400 {object} errorResponse "tipo inválido"
// @Router /api/breeds [get]
func breedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e := NewEngine(DefaultPageSize)
		if err := e.SetFilter(KeyType, r.URL.Query().Get("type")); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, breedsResponse{Type: e.Filter().Type, Breeds: e.BreedOptions()})
	}
}

func noticeText(code string) string {
	switch code {
	case "created":
		return "¡Mascota publicada exitosamente!"
	case "deleted":
		return "Publicación eliminada."
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
