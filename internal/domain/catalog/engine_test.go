package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lost-pets-catalog/internal/domain/pets"
)

func listing(id string, t pets.PetType, breed, location string) pets.Listing {
	return pets.Listing{ID: id, Name: "pet-" + id, Type: t, Breed: breed, Location: location}
}

func sample() []pets.Listing {
	return []pets.Listing{
		listing("1", pets.TypeDog, "Beagle", "Buenos Aires, La Plata"),
		listing("2", pets.TypeDog, "Boxer", "Córdoba, Córdoba"),
		listing("3", pets.TypeCat, "Persa", "Buenos Aires, La Plata"),
		listing("4", pets.TypeCat, "Siamés", "Buenos Aires, Mar del Plata"),
		listing("5", pets.TypeOther, "Conejo", "Mendoza, Mendoza"),
	}
}

func many(n int) []pets.Listing {
	out := make([]pets.Listing, 0, n)
	for i := range n {
		out = append(out, listing(fmt.Sprint(i+1), pets.TypeDog, "Beagle", "Córdoba, Córdoba"))
	}
	return out
}

func loaded(items []pets.Listing) *Engine {
	e := NewEngine(DefaultPageSize)
	e.Load(e.BeginLoad(), items)
	return e
}

func ids(items []pets.Listing) []string {
	out := make([]string, 0, len(items))
	for _, l := range items {
		out = append(out, l.ID)
	}
	return out
}

func TestEngine_NoFilterShowsEverything(t *testing.T) {
	e := loaded(sample())
	assert.Equal(t, 5, e.Count())
	assert.True(t, e.Filter().IsEmpty())
	assert.Equal(t, 1, e.CurrentPage())
}

func TestEngine_TypeFilterIsSubset(t *testing.T) {
	e := loaded(sample())
	require.NoError(t, e.SetFilter(KeyType, "gato"))

	got := e.Filtered()
	assert.Equal(t, []string{"3", "4"}, ids(got))
	for _, l := range got {
		assert.Equal(t, pets.TypeCat, l.Type)
	}
}

func TestEngine_TypeIsCaseInsensitive(t *testing.T) {
	e := loaded(sample())
	require.NoError(t, e.SetFilter(KeyType, "Perro"))
	assert.Equal(t, pets.TypeDog, e.Filter().Type)
	assert.Equal(t, 2, e.Count())
}

func TestEngine_FiltersCombineWithAnd(t *testing.T) {
	e := loaded(sample())
	require.NoError(t, e.SetFilter(KeyType, "gato"))
	require.NoError(t, e.SetFilter(KeyBreed, "Persa"))
	require.NoError(t, e.SetFilter(KeyCity, "La Plata"))

	assert.Equal(t, []string{"3"}, ids(e.Filtered()))
}

func TestEngine_CityIsSubstring(t *testing.T) {
	e := loaded(sample())
	require.NoError(t, e.SetFilter(KeyCity, "Plata"))
	assert.Equal(t, []string{"1", "3", "4"}, ids(e.Filtered()))

	require.NoError(t, e.SetFilter(KeyCity, "plata"))
	assert.Zero(t, e.Count())
}

func TestEngine_ChangingTypeClearsBreed(t *testing.T) {
	e := loaded(sample())
	require.NoError(t, e.SetFilter(KeyType, "perro"))
	require.NoError(t, e.SetFilter(KeyBreed, "Beagle"))

	require.NoError(t, e.SetFilter(KeyType, "gato"))
	assert.Empty(t, e.Filter().Breed)
	assert.Equal(t, 2, e.Count())

	// mismo tipo: la raza se mantiene
	require.NoError(t, e.SetFilter(KeyBreed, "Persa"))
	require.NoError(t, e.SetFilter(KeyType, "gato"))
	assert.Equal(t, "Persa", e.Filter().Breed)
}

func TestEngine_BreedValidation(t *testing.T) {
	e := loaded(sample())
	assert.ErrorIs(t, e.SetFilter(KeyBreed, "Beagle"), ErrBreedWithoutType)

	require.NoError(t, e.SetFilter(KeyType, "gato"))
	assert.ErrorIs(t, e.SetFilter(KeyBreed, "Beagle"), ErrBreedTypeMismatch)
	assert.Empty(t, e.Filter().Breed)

	assert.ErrorIs(t, e.SetFilter(KeyType, "dragón"), ErrInvalidType)
	assert.Equal(t, pets.TypeCat, e.Filter().Type)

	assert.ErrorIs(t, e.SetFilter("color", "negro"), ErrUnknownKey)
}

func TestEngine_ClearFiltersIsIdempotent(t *testing.T) {
	e := loaded(sample())
	require.NoError(t, e.SetFilter(KeyType, "perro"))
	require.NoError(t, e.SetFilter(KeyCity, "Córdoba"))

	e.ClearFilters()
	first := e.Filtered()
	e.ClearFilters()

	assert.True(t, e.Filter().IsEmpty())
	assert.Equal(t, first, e.Filtered())
	assert.Equal(t, 5, e.Count())
	assert.Equal(t, 1, e.CurrentPage())
}

func TestEngine_Paging(t *testing.T) {
	e := loaded(many(9))
	assert.Equal(t, 1, e.TotalPages())
	assert.Empty(t, e.Window())

	e = loaded(many(10))
	assert.Equal(t, 2, e.TotalPages())
	assert.Len(t, e.Page(), 9)

	assert.Equal(t, 2, e.SetPage(2))
	page := e.Page()
	require.Len(t, page, 1)
	assert.Equal(t, "10", page[0].ID)
}

func TestEngine_SetPageClamps(t *testing.T) {
	e := loaded(many(20))
	assert.Equal(t, 3, e.SetPage(99))
	assert.Equal(t, 1, e.SetPage(0))
	assert.Equal(t, 1, e.SetPage(-4))

	empty := loaded(nil)
	assert.Equal(t, 1, empty.SetPage(5))
	assert.Empty(t, empty.Page())
	assert.Zero(t, empty.TotalPages())
}

func TestEngine_FilterChangeResetsPage(t *testing.T) {
	e := loaded(many(30))
	e.SetPage(3)
	require.NoError(t, e.SetFilter(KeyCity, "Córdoba"))
	assert.Equal(t, 1, e.CurrentPage())
}

func TestEngine_StaleLoadIsDiscarded(t *testing.T) {
	e := NewEngine(DefaultPageSize)
	old := e.BeginLoad()
	latest := e.BeginLoad()

	assert.True(t, e.Load(latest, sample()))
	assert.False(t, e.Load(old, many(20)))
	assert.Equal(t, 5, e.Count())
}

func TestEngine_LoadKeepsFilterAndClampsPage(t *testing.T) {
	e := loaded(many(20))
	e.SetPage(3)

	require.True(t, e.Load(e.BeginLoad(), many(10)))
	assert.Equal(t, 2, e.CurrentPage())
}

func TestEngine_LoadCopiesInput(t *testing.T) {
	items := sample()
	e := loaded(items)
	items[0].Name = "changed"
	assert.Equal(t, "pet-1", e.Filtered()[0].Name)
}

func TestEngine_BreedOptions(t *testing.T) {
	e := loaded(sample())
	assert.Empty(t, e.BreedOptions())

	require.NoError(t, e.SetFilter(KeyType, "gato"))
	assert.Equal(t, pets.BreedsFor(pets.TypeCat), e.BreedOptions())
}

func TestEngine_ApplyDropsInvalidParts(t *testing.T) {
	e := loaded(sample())
	err := e.Apply(FilterState{Breed: "Persa", City: "Plata"})
	assert.ErrorIs(t, err, ErrBreedWithoutType)
	assert.Equal(t, FilterState{City: "Plata"}, e.Filter())
}

func TestFilterState_ValuesRoundTrip(t *testing.T) {
	f := FilterState{Type: pets.TypeCat, Breed: "Persa", City: "La Plata"}
	assert.Equal(t, f, FilterFromValues(f.Values()))
	assert.Empty(t, FilterState{}.Values())
}

func TestCanonicalURL(t *testing.T) {
	assert.Equal(t, "/", CanonicalURL(FilterState{}, 1))
	assert.Equal(t, "/?page=2", CanonicalURL(FilterState{}, 2))
	assert.Equal(t, "/?city=La+Plata&type=gato", CanonicalURL(FilterState{Type: pets.TypeCat, City: "La Plata"}, 1))
}

func TestBuildPageView(t *testing.T) {
	e := loaded(many(20))
	e.SetPage(2)

	pv := buildPageView(e)
	assert.True(t, pv.ShowPager)
	assert.Len(t, pv.Items, 9)
	assert.Equal(t, 20, pv.Count)
	assert.False(t, pv.Prev.Disabled)
	assert.Equal(t, "/", pv.Prev.Href)
	assert.Equal(t, "/?page=3", pv.Next.Href)
	require.Len(t, pv.Links, 3)
	assert.True(t, pv.Links[1].Active)
	assert.Len(t, pv.Types, len(pets.Types))
	assert.Empty(t, pv.Breeds)
}
