package pets

import (
	"strings"
	"time"
)

// MaxImageSize es el tope de la foto adjunta (5 MB).
const MaxImageSize = 5 << 20

const formDateLayout = "2006-01-02" // lo que manda <input type="date">

// Form es el formulario de publicar / editar.
type Form struct {
	Name        string  `form:"name" validate:"notblank" msg:"notblank=El nombre de la mascota es requerido"`
	Description string  `form:"description" validate:"notblank,min=10" msg:"notblank=La descripción es requerida;min=La descripción debe tener al menos 10 caracteres"`
	Type        PetType `form:"type" validate:"oneof=perro gato otro" msg:"oneof=Selecciona un tipo válido"`
	Breed       string  `form:"breed" validate:"notblank" msg:"notblank=La raza es requerida"`
	Province    string  `form:"last_seen_province" validate:"notblank" msg:"notblank=La provincia es requerida"`
	City        string  `form:"last_seen_city" validate:"notblank" msg:"notblank=La ciudad es requerida"`
	LastSeen    string  `form:"last_seen_time" validate:"notblank,datetime=2006-01-02" msg:"notblank=La fecha es requerida;datetime=La fecha no es válida"`
	PictureURL  string  `form:"imageUrl" validate:"omitempty,url" msg:"url=La URL de la imagen no es válida"`
}

func (f Form) normalized() Form {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Type = PetType(strings.ToLower(strings.TrimSpace(string(f.Type))))
	f.Breed = strings.TrimSpace(f.Breed)
	f.Province = strings.TrimSpace(f.Province)
	f.City = strings.TrimSpace(f.City)
	f.LastSeen = strings.TrimSpace(f.LastSeen)
	f.PictureURL = strings.TrimSpace(f.PictureURL)
	return f
}

// draft asume un Form ya validado.
func (f Form) draft() Draft {
	seen, _ := time.Parse(formDateLayout, f.LastSeen)
	return Draft{
		Name:        f.Name,
		Description: f.Description,
		Type:        f.Type,
		Breed:       f.Breed,
		LastSeen:    seen,
		Province:    f.Province,
		City:        f.City,
		PictureURL:  f.PictureURL,
	}
}

// FormFromDetail precarga el formulario de edición.
// Location viene como "Provincia, Ciudad".
func FormFromDetail(d Detail) Form {
	province, city, ok := strings.Cut(d.Location, ",")
	if !ok {
		province, city = "", d.Location
	}

	desc := d.Description
	if desc == NoDescription {
		desc = ""
	}

	return Form{
		Name:        d.Name,
		Description: desc,
		Type:        d.Type,
		Breed:       d.Breed,
		Province:    strings.TrimSpace(province),
		City:        strings.TrimSpace(city),
		LastSeen:    formatFormDate(d.LastSeen),
		PictureURL:  d.ImageURL,
	}
}

func formatFormDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range []string{LastSeenLayout, formDateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(formDateLayout)
		}
	}
	return ""
}
