// Package view renderiza las páginas HTML del catálogo a partir de templates embebidos.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lost-pets-catalog/internal/platform/logger"
)

//go:embed templates/*.html
var files embed.FS

// Páginas disponibles.
const (
	PageLogin    = "login.html"
	PageRegister = "register.html"
	PageCatalog  = "catalog.html"
	PageDetail   = "detail.html"
	PageForm     = "form.html"
	PageMyPets   = "my_pets.html"
	PageError    = "error.html"
)

var pages = []string{PageLogin, PageRegister, PageCatalog, PageDetail, PageForm, PageMyPets, PageError}

// Page es lo que recibe el layout. Data lleva el modelo propio de cada página.
type Page struct {
	Title         string
	AppName       string
	Authenticated bool
	UserName      string
	Notice        string
	Error         string
	Fields        map[string]string
	Data          any
}

// Option es una opción de un <select>.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Group es un <optgroup>.
type Group struct {
	Label   string
	Options []Option
}

// Options arma opciones marcando selected.
func Options(values []string, selected string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v, Selected: v == selected})
	}
	return out
}

type Renderer struct {
	pages   map[string]*template.Template
	appName string
	log     logger.Logger
}

func New(appName string, log logger.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.Nop()
	}

	policy := bluemonday.StrictPolicy()
	funcs := template.FuncMap{
		"typeLabel": TypeLabel,
		"plain":     func(s string) string { return policy.Sanitize(s) },
		"date":      formatDate,
		"truncate":  truncate,
	}

	out := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		out[name] = t
	}

	return &Renderer{pages: out, appName: appName, log: log}, nil
}

// Render ejecuta la página en un buffer y recién después escribe la respuesta,
// así un error de template no deja HTML a medias.
func (v *Renderer) Render(w http.ResponseWriter, status int, name string, p Page) {
	t, ok := v.pages[name]
	if !ok {
		v.log.Error("unknown page", map[string]any{"page": name})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if p.AppName == "" {
		p.AppName = v.appName
	}
	if p.Fields == nil {
		p.Fields = map[string]string{}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		v.log.Error("render failed", map[string]any{"page": name, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// TypeLabel pasa "perro" a "Perro". Un Caser no se comparte entre goroutines.
func TypeLabel(s string) string {
	return cases.Title(language.Spanish).String(s)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func truncate(n int, s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
