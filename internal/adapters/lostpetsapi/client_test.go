package lostpetsapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lost-pets-catalog/internal/domain/pets"
	"lost-pets-catalog/internal/ports/auth"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := NewClient(Config{BaseURL: ts.URL + "/api/v1", Timeout: 2 * time.Second, FetchSize: 2, MaxFetchPages: 3})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var in loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok-1"}`))
	}))

	tok, err := c.Login(t.Context(), "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	_, err = c.Login(t.Context(), "ana@example.com", "wrong!")
	assert.ErrorIs(t, err, auth.ErrRejected)
	assert.NotErrorIs(t, err, auth.ErrUnauthorized)
}

func TestRegister_SplitsName(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/", r.URL.Path)

		var in registerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Ana", in.Name)
		assert.Equal(t, "María López", in.LastName)
		assert.Equal(t, "secret1", in.ConfirmPassword)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"auth_token":"tok-2","message":"ok","user":{"id":12,"name":"Ana","email":"ana@example.com","phone":"123"}}`))
	}))

	out, err := c.Register(t.Context(), auth.Registration{
		Name:            "  Ana María  López ",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-2", out.Token)
	assert.Equal(t, "12", out.Account.ID)
	assert.Equal(t, "Ana", out.Account.Name)
}

func TestRegister_ServerErrorIsUpstream(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Register(t.Context(), auth.Registration{Name: "Ana"})
	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, auth.ErrRejected)
}

func TestListPets_MapsItems(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pets/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{
			"data":[{"id":3,"name":"Milo","description":"","type":"gato","breed":"Persa","user_id":9,
				"last_seen_time":"01-02-2025","last_seen_place":"Buenos Aires, La Plata","is_found":false,
				"picture_url":"http://img/3.png","created_at":"2025-02-01T10:00:00"}],
			"total":1,"page":1,"size":9,"total_pages":1,"has_next":false,"has_prev":false}`))
	}))

	page, err := c.ListPets(t.Context(), "tok", 1, 9)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	l := page.Items[0]
	assert.Equal(t, "3", l.ID)
	assert.Equal(t, pets.TypeCat, l.Type)
	assert.Equal(t, "9", l.OwnerID)
	assert.Equal(t, pets.NoDescription, l.Description)
	assert.Equal(t, pets.NotAvailable, l.OwnerName)
	assert.Equal(t, pets.NotAvailable, l.OwnerPhone)
	assert.Equal(t, "Buenos Aires, La Plata", l.Location)
	assert.Equal(t, 2025, l.CreatedAt.Year())
	assert.Equal(t, 1, page.TotalPages)
}

func TestListAllPets_FollowsHasNext(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		p, _ := strconv.Atoi(r.URL.Query().Get("page"))
		assert.Equal(t, "2", r.URL.Query().Get("size"))
		_, _ = fmt.Fprintf(w, `{"data":[{"id":%d},{"id":%d}],"has_next":%t}`, p*10, p*10+1, p < 2)
	}))

	all, err := c.ListAllPets(t.Context(), "tok")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "21", all[3].ID)
}

func TestListAllPets_StopsAtMaxPages(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"data":[{"id":1}],"has_next":true}`))
	}))

	all, err := c.ListAllPets(t.Context(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, all, 3)
}

func TestGetPet_Detail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pets/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"pet_id":7,"owner_id":4,"owner_name":"Ana","owner_last_name":"López",
			"owner_phone":"555","name":"Rex","type":"perro","breed":"Boxer","description":"Perdido cerca de la plaza",
			"last_seen_time":"2025-03-04","can_edit":true,"can_delete":false}`))
	}))

	d, err := c.GetPet(t.Context(), "tok", "7")
	require.NoError(t, err)
	assert.Equal(t, "7", d.ID)
	assert.Equal(t, "Ana López", d.OwnerName)
	assert.Equal(t, "555", d.OwnerPhone)
	assert.True(t, d.CanEdit)
	assert.False(t, d.CanDelete)
}

func TestProtectedCalls_ErrorMapping(t *testing.T) {
	status := http.StatusUnauthorized
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))

	_, err := c.GetPet(t.Context(), "tok", "1")
	assert.ErrorIs(t, err, ErrUnauthorized)

	status = http.StatusNotFound
	_, err = c.GetPet(t.Context(), "tok", "1")
	assert.ErrorIs(t, err, pets.ErrNotFound)
	assert.ErrorIs(t, err, ErrUpstream)

	status = http.StatusBadGateway
	err = c.DeletePet(t.Context(), "tok", "1")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestMutations_MethodsAndPaths(t *testing.T) {
	var got []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPut {
			var in draftWire
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "04-03-2025", in.LastSeenTime)
			assert.Equal(t, "La Plata", in.LastSeenCity)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	d := pets.Draft{Name: "Rex", Type: pets.TypeDog, LastSeen: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), Province: "Buenos Aires", City: "La Plata"}
	require.NoError(t, c.UpdatePet(t.Context(), "tok", "7", d))
	require.NoError(t, c.DeletePet(t.Context(), "tok", "7"))
	require.NoError(t, c.MarkFound(t.Context(), "tok", "7"))

	assert.Equal(t, []string{
		"PUT /api/v1/pets/7",
		"DELETE /api/v1/pets/7",
		"PATCH /api/v1/pets/7/mark-found",
	}, got)
}

func TestCreatePetWithImage_Multipart(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Milo", r.FormValue("name"))
		assert.Equal(t, "gato", r.FormValue("type"))
		assert.Equal(t, "01-02-2025", r.FormValue("last_seen_time"))

		f, _, err := r.FormFile("picture")
		require.NoError(t, err)
		b, _ := io.ReadAll(f)
		assert.Equal(t, "IMG", string(b))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":33,"name":"Milo","type":"gato"}`))
	}))

	d := pets.Draft{Name: "Milo", Description: "Gato gris con collar", Type: pets.TypeCat, Breed: "Persa", LastSeen: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}
	l, err := c.CreatePetWithImage(t.Context(), "tok", d, pets.Image{Filename: "m.png", ContentType: "image/png", Content: strings.NewReader("IMG")})
	require.NoError(t, err)
	assert.Equal(t, "33", l.ID)
}

func TestSearchPets_OnlyPresentFilters(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pets/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "perro", q.Get("type"))
		assert.Equal(t, "Plata", q.Get("city"))
		_, hasBreed := q["breed"]
		assert.False(t, hasBreed)
		_, _ = w.Write([]byte(`{"data":[{"id":1,"type":"perro"}]}`))
	}))

	items, err := c.SearchPets(t.Context(), "tok", pets.SearchQuery{Type: pets.TypeDog, City: "Plata"})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSplitName(t *testing.T) {
	f, l := splitName("Ana")
	assert.Equal(t, "Ana", f)
	assert.Empty(t, l)

	f, l = splitName("")
	assert.Empty(t, f)
	assert.Empty(t, l)
}
