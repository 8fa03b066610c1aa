package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"lost-pets-catalog/internal/domain/routegate"
	"lost-pets-catalog/internal/domain/session"
	"lost-pets-catalog/internal/platform/apperr"
	"lost-pets-catalog/internal/platform/logger"
	"lost-pets-catalog/internal/platform/view"
)

// DetailView es el modelo de /pet/{id}.
type DetailView struct {
	Pet         Detail
	CanMarkFound bool
}

// FormView es el modelo del formulario de publicar / editar.
type FormView struct {
	Action    string
	Submit    string
	Editing   bool
	Form      Form
	Types     []view.Option
	Breeds    []view.Group
	Provinces []view.Option
	Cities    []view.Group
}

// ListView es el modelo de /my-pets.
type ListView struct {
	Items []Listing
}

// RegisterRoutes monta las páginas de publicaciones. Todas requieren sesión.
func RegisterRoutes(r chi.Router, svc *Service, v *view.Renderer, gate session.Gate, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	h := &handler{svc: svc, view: v, log: log}

	r.Group(func(pr chi.Router) {
		pr.Use(gate(routegate.RequireAuth))

		pr.Get("/pet/{petID}", h.detail)
		pr.Post("/pet/{petID}/delete", h.delete)
		pr.Post("/pet/{petID}/found", h.markFound)

		pr.Get("/publish", h.publishPage)
		pr.Post("/publish", h.publish)

		pr.Get("/edit-pet/{petID}", h.editPage)
		pr.Post("/edit-pet/{petID}", h.edit)

		pr.Get("/my-pets", h.mine)

		pr.Get("/api/pets/search", h.search)
	})
}

type handler struct {
	svc  *Service
	view *view.Renderer
	log  logger.Logger
}

func (h *handler) detail(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	d, err := h.svc.Get(r.Context(), sess, chi.URLParam(r, "petID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	p := session.PageFor(r, d.Name)
	p.Notice = noticeText(r.URL.Query().Get("notice"))
	p.Data = DetailView{Pet: d, CanMarkFound: d.CanEdit && !d.Found}
	h.view.Render(w, http.StatusOK, view.PageDetail, p)
}

func (h *handler) publishPage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "/publish", false, Form{Type: TypeDog}, nil)
}

func (h *handler) publish(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxImageSize+(1<<20))
	if err := r.ParseMultipartForm(MaxImageSize + (1 << 20)); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.renderForm(w, r, http.StatusRequestEntityTooLarge, "/publish", false, Form{},
			apperr.Validation(apperr.FieldError{Field: "picture", Message: "La imagen no debe superar los 5MB"}))
		return
	}

	f := formFromRequest(r)
	img, closeImg := imageFromRequest(r)
	defer closeImg()

	if _, err := h.svc.Create(r.Context(), sess, f, img); err != nil {
		if session.RedirectIfExpired(w, r, err) {
			return
		}
		h.renderForm(w, r, statusFor(err), "/publish", false, f, err)
		return
	}

	http.Redirect(w, r, "/?notice=created", http.StatusSeeOther)
}

func (h *handler) editPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "petID")
	d, err := h.svc.Get(r.Context(), sess, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !d.CanEdit {
		h.renderError(w, r, http.StatusForbidden, "No tenés permiso para editar esta publicación")
		return
	}

	h.renderForm(w, r, http.StatusOK, editAction(id), true, FormFromDetail(d), nil)
}

func (h *handler) edit(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "petID")
	f := formFromRequest(r)
	if err := h.svc.Update(r.Context(), sess, id, f); err != nil {
		if session.RedirectIfExpired(w, r, err) {
			return
		}
		h.renderForm(w, r, statusFor(err), editAction(id), true, f, err)
		return
	}

	http.Redirect(w, r, "/pet/"+url.PathEscape(id)+"?notice=updated", http.StatusSeeOther)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	if err := h.svc.Delete(r.Context(), sess, chi.URLParam(r, "petID")); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/my-pets?notice=deleted", http.StatusSeeOther)
}

func (h *handler) markFound(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "petID")
	if err := h.svc.MarkFound(r.Context(), sess, id); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/pet/"+url.PathEscape(id)+"?notice=found", http.StatusSeeOther)
}

func (h *handler) mine(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	items, err := h.svc.Mine(r.Context(), sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	p := session.PageFor(r, "Mis mascotas")
	p.Notice = noticeText(r.URL.Query().Get("notice"))
	p.Data = ListView{Items: items}
	h.view.Render(w, http.StatusOK, view.PageMyPets, p)
}

type searchResponse struct {
	Items []Listing `json:"items"`
	Total int       `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// search godoc
// @Summary Búsqueda de mascotas
// @Description Delega en el endpoint de búsqueda de la API remota. Solo se envían los filtros presentes.
// @Tags pets
// @Produce json
// @Param type query string false "Tipo de mascota (perro, gato, otro)"
// @Param breed query string false "Raza"
// @Param city query string false "Ciudad"
// @Param search query string false "Texto libre"
// @Success 200 {object} searchResponse
// @Failure 401 {object} errorResponse "sesión expirada"
// @Failure 502 {object} errorResponse "error de la API remota"
// @Router /api/pets/search [get]
func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "session unavailable"})
		return
	}

	q := r.URL.Query()
	items, err := h.svc.Search(r.Context(), sess, SearchQuery{
		Type:   PetType(strings.ToLower(strings.TrimSpace(q.Get("type")))),
		Breed:  strings.TrimSpace(q.Get("breed")),
		City:   strings.TrimSpace(q.Get("city")),
		Search: strings.TrimSpace(q.Get("search")),
	})
	if err != nil {
		if errors.Is(err, apperr.ErrSessionExpired) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: apperr.MsgSessionExpired})
			return
		}
		h.log.Warn("pets search failed", map[string]any{"error": err})
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: apperr.UserMessage(err)})
		return
	}
	if items == nil {
		items = []Listing{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Items: items, Total: len(items)})
}

// fail resuelve los errores de las páginas: sesión vencida redirige, el resto se muestra.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if session.RedirectIfExpired(w, r, err) {
		return
	}
	if errors.Is(err, ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "Mascota no encontrada")
		return
	}
	h.log.Warn("pets request failed", map[string]any{"path": r.URL.Path, "error": err})
	h.renderError(w, r, http.StatusBadGateway, apperr.UserMessage(err))
}

func (h *handler) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	p := session.PageFor(r, msg)
	h.view.Render(w, status, view.PageError, p)
}

func (h *handler) renderForm(w http.ResponseWriter, r *http.Request, status int, action string, editing bool, f Form, err error) {
	title, submit := "Publicar mascota perdida", "Publicar"
	if editing {
		title, submit = "Editar publicación", "Guardar cambios"
	}

	p := session.PageFor(r, title)
	if err != nil {
		p.Error = apperr.UserMessage(err)
		p.Fields = apperr.FieldMap(err)
	}
	p.Data = newFormView(action, submit, editing, f)
	h.view.Render(w, status, view.PageForm, p)
}

func newFormView(action, submit string, editing bool, f Form) FormView {
	fv := FormView{Action: action, Submit: submit, Editing: editing, Form: f}

	for _, t := range Types {
		fv.Types = append(fv.Types, view.Option{Value: string(t), Label: view.TypeLabel(string(t)), Selected: t == f.Type})
		fv.Breeds = append(fv.Breeds, view.Group{Label: view.TypeLabel(string(t)), Options: view.Options(BreedsFor(t), selectedIf(t == f.Type, f.Breed))})
	}
	fv.Provinces = view.Options(Provinces(), f.Province)
	for _, prov := range Provinces() {
		fv.Cities = append(fv.Cities, view.Group{Label: prov, Options: view.Options(CitiesOf(prov), selectedIf(prov == f.Province, f.City))})
	}
	return fv
}

func selectedIf(cond bool, v string) string {
	if cond {
		return v
	}
	return ""
}

func formFromRequest(r *http.Request) Form {
	return Form{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Type:        PetType(r.FormValue("type")),
		Breed:       r.FormValue("breed"),
		Province:    r.FormValue("last_seen_province"),
		City:        r.FormValue("last_seen_city"),
		LastSeen:    r.FormValue("last_seen_time"),
		PictureURL:  r.FormValue("imageUrl"),
	}
}

// imageFromRequest devuelve la foto adjunta (nil si no vino) y cómo cerrarla.
func imageFromRequest(r *http.Request) (*Image, func()) {
	file, hdr, err := r.FormFile("picture")
	if err != nil {
		return nil, func() {}
	}
	if hdr.Size == 0 && strings.TrimSpace(hdr.Filename) == "" {
		_ = file.Close()
		return nil, func() {}
	}
	return &Image{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Size:        hdr.Size,
		Content:     file,
	}, func() { _ = file.Close() }
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func editAction(id string) string {
	return "/edit-pet/" + url.PathEscape(id)
}

func noticeText(code string) string {
	switch code {
	case "updated":
		return "Publicación actualizada."
	case "found":
		return "¡Qué buena noticia! La mascota figura como encontrada."
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
