package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, p Page) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	v, err := New("Mascotas Perdidas", nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	v.Render(rec, http.StatusOK, name, p)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestRender_LayoutNavFollowsSession(t *testing.T) {
	rec, doc := render(t, PageError, Page{Title: "Página no encontrada"})
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Página no encontrada | Mascotas Perdidas", doc.Find("title").Text())
	assert.Equal(t, 0, doc.Find("#logout").Length())
	assert.Equal(t, 1, doc.Find(`a[href="/login"]`).Length())

	_, doc = render(t, PageError, Page{Title: "x", Authenticated: true, UserName: "Ana"})
	assert.Equal(t, "Ana", doc.Find("#nav-user").Text())
	assert.Equal(t, 1, doc.Find("#logout").Length())
}

func TestRender_FieldErrorsAndAlerts(t *testing.T) {
	_, doc := render(t, PageLogin, Page{
		Title:  "Iniciar sesión",
		Error:  "Revisa los campos marcados.",
		Notice: "ok",
		Fields: map[string]string{"email": "El email no es válido"},
	})
	assert.Equal(t, "Revisa los campos marcados.", doc.Find("#error").Text())
	assert.Equal(t, "ok", doc.Find("#notice").Text())
	assert.Equal(t, "El email no es válido", doc.Find(`[data-field="email"]`).Text())
	assert.Equal(t, 0, doc.Find(`[data-field="password"]`).Length())
}

func TestRender_UnknownPage(t *testing.T) {
	v, err := New("x", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	v.Render(rec, http.StatusOK, "nope.html", Page{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestTypeLabelAndTruncate(t *testing.T) {
	assert.Equal(t, "Perro", TypeLabel("perro"))
	assert.Equal(t, "Otro", TypeLabel("otro"))
	assert.Equal(t, "corto", truncate(10, " corto "))
	assert.Equal(t, "ñandú…", truncate(5, "ñandú perdido"))
}

func TestOptions_MarksSelected(t *testing.T) {
	opts := Options([]string{"La Plata", "Tandil"}, "Tandil")
	require.Len(t, opts, 2)
	assert.False(t, opts[0].Selected)
	assert.True(t, opts[1].Selected)
	assert.Equal(t, "Tandil", opts[1].Label)
}
