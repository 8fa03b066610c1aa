package pets

import "slices"

// Datos de referencia para selects y filtros. Son fijos: no se modifican en runtime.

var breedsByType = map[PetType][]string{
	TypeDog: {
		"Labrador Retriever",
		"Golden Retriever",
		"Pastor Alemán",
		"Bulldog",
		"Beagle",
		"Poodle",
		"Rottweiler",
		"Yorkshire Terrier",
		"Boxer",
		"Dachshund",
	},
	TypeCat: {
		"Persa",
		"Siamés",
		"Maine Coon",
		"Ragdoll",
		"British Shorthair",
		"Abyssinian",
		"Russian Blue",
		"Sphynx",
		"Bengal",
		"Munchkin",
	},
	TypeOther: {
		"Conejo",
		"Hamster",
		"Cobayo",
		"Hurón",
		"Pájaro",
		"Tortuga",
		"Pez",
	},
}

var cities = []string{
	"Buenos Aires",
	"Córdoba",
	"Rosario",
	"Mendoza",
	"La Plata",
	"San Miguel de Tucumán",
	"Mar del Plata",
	"Salta",
	"Santa Fe",
	"San Juan",
}

var provinces = []string{
	"Buenos Aires",
	"Córdoba",
	"Santa Fe",
	"Mendoza",
	"Tucumán",
	"Salta",
	"Entre Ríos",
	"Chaco",
	"Corrientes",
	"Santiago del Estero",
}

var provincesAndCities = map[string][]string{
	"Buenos Aires":        {"La Plata", "Mar del Plata", "Bahía Blanca", "Tandil", "Necochea"},
	"Córdoba":             {"Córdoba", "Río Cuarto", "Villa María", "San Francisco", "Villa Carlos Paz"},
	"Santa Fe":            {"Rosario", "Santa Fe", "Rafaela", "Reconquista", "Venado Tuerto"},
	"Mendoza":             {"Mendoza", "San Rafael", "San Martín", "Tunuyán", "Maipú"},
	"Tucumán":             {"San Miguel de Tucumán", "Yerba Buena", "Tafí Viejo", "Aguilares", "Banda del Río Salí"},
	"Salta":               {"Salta", "San Ramón de la Nueva Orán", "Tartagal", "Metán", "Cafayate"},
	"Entre Ríos":          {"Paraná", "Concordia", "Gualeguaychú", "Gualeguay", "Concepción del Uruguay"},
	"Chaco":               {"Resistencia", "Sáenz Peña", "Villa Ángela", "Charata", "Presidencia Roque Sáenz Peña"},
	"Corrientes":          {"Corrientes", "Goya", "Paso de los Libres", "Curuzú Cuatiá", "Mercedes"},
	"Santiago del Estero": {"Santiago del Estero", "La Banda", "Termas de Río Hondo", "Añatuya", "Quimilí"},
}

// BreedsFor devuelve las razas de t en orden. Tipo vacío o desconocido => vacío.
// Devuelve una copia; el caller puede modificarla.
func BreedsFor(t PetType) []string {
	return slices.Clone(breedsByType[t])
}

// IsBreedOf indica si breed pertenece al tipo t.
func IsBreedOf(t PetType, breed string) bool {
	return slices.Contains(breedsByType[t], breed)
}

func Cities() []string    { return slices.Clone(cities) }
func Provinces() []string { return slices.Clone(provinces) }

// CitiesOf devuelve las ciudades de una provincia (vacío si no existe).
func CitiesOf(province string) []string {
	return slices.Clone(provincesAndCities[province])
}
