package lostpetsapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"lost-pets-catalog/internal/domain/pets"
)

// flexID acepta ids numéricos o string; la API manda números.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type listItemWire struct {
	ID            flexID `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Breed         string `json:"breed"`
	UserID        flexID `json:"user_id"`
	LastSeenTime  string `json:"last_seen_time"`
	LastSeenPlace string `json:"last_seen_place"`
	IsFound       bool   `json:"is_found"`
	PictureURL    string `json:"picture_url"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type pageWire struct {
	Data       []listItemWire `json:"data"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
	HasNext    bool           `json:"has_next"`
	HasPrev    bool           `json:"has_prev"`
}

type detailWire struct {
	PetID         flexID `json:"pet_id"`
	OwnerID       flexID `json:"owner_id"`
	OwnerName     string `json:"owner_name"`
	OwnerLastName string `json:"owner_last_name"`
	OwnerEmail    string `json:"owner_email"`
	OwnerPhone    string `json:"owner_phone"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Breed         string `json:"breed"`
	LastSeenTime  string `json:"last_seen_time"`
	LastSeenPlace string `json:"last_seen_place"`
	PictureURL    string `json:"picture_url"`
	IsFound       bool   `json:"is_found"`
	Description   string `json:"description"`
	CanEdit       bool   `json:"can_edit"`
	CanDelete     bool   `json:"can_delete"`
}

type draftWire struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	Breed            string `json:"breed"`
	LastSeenTime     string `json:"last_seen_time"`
	LastSeenProvince string `json:"last_seen_province"`
	LastSeenCity     string `json:"last_seen_city"`
	PictureURL       string `json:"picture_url,omitempty"`
}

func description(s string) string {
	if strings.TrimSpace(s) == "" {
		return pets.NoDescription
	}
	return s
}

func (w listItemWire) toListing() pets.Listing {
	return pets.Listing{
		ID:          string(w.ID),
		Name:        w.Name,
		Description: description(w.Description),
		Type:        pets.PetType(strings.ToLower(strings.TrimSpace(w.Type))),
		Breed:       w.Breed,
		Location:    w.LastSeenPlace,
		OwnerID:     string(w.UserID),
		OwnerName:   pets.NotAvailable,
		OwnerPhone:  pets.NotAvailable,
		CreatedAt:   parseTime(w.CreatedAt),
		ImageURL:    w.PictureURL,
		Found:       w.IsFound,
		LastSeen:    w.LastSeenTime,
	}
}

func (w pageWire) toPage() pets.ListPage {
	items := make([]pets.Listing, 0, len(w.Data))
	for _, it := range w.Data {
		items = append(items, it.toListing())
	}
	return pets.ListPage{
		Items:      items,
		Total:      w.Total,
		Page:       w.Page,
		Size:       w.Size,
		TotalPages: w.TotalPages,
		HasNext:    w.HasNext,
		HasPrev:    w.HasPrev,
	}
}

func (w detailWire) toDetail() pets.Detail {
	return pets.Detail{
		Listing: pets.Listing{
			ID:          string(w.PetID),
			Name:        w.Name,
			Description: description(w.Description),
			Type:        pets.PetType(strings.ToLower(strings.TrimSpace(w.Type))),
			Breed:       w.Breed,
			Location:    w.LastSeenPlace,
			OwnerID:     string(w.OwnerID),
			OwnerName:   strings.TrimSpace(w.OwnerName + " " + w.OwnerLastName),
			OwnerPhone:  w.OwnerPhone,
			ImageURL:    w.PictureURL,
			Found:       w.IsFound,
			LastSeen:    w.LastSeenTime,
		},
		OwnerEmail: w.OwnerEmail,
		CanEdit:    w.CanEdit,
		CanDelete:  w.CanDelete,
	}
}

func toDraftWire(d pets.Draft) draftWire {
	return draftWire{
		Name:             strings.TrimSpace(d.Name),
		Description:      strings.TrimSpace(d.Description),
		Type:             string(d.Type),
		Breed:            strings.TrimSpace(d.Breed),
		LastSeenTime:     d.LastSeen.Format(pets.LastSeenLayout),
		LastSeenProvince: strings.TrimSpace(d.Province),
		LastSeenCity:     strings.TrimSpace(d.City),
		PictureURL:       strings.TrimSpace(d.PictureURL),
	}
}

// fields arma el form multipart con las mismas claves que el JSON.
func (w draftWire) fields() map[string]string {
	out := map[string]string{
		"name":               w.Name,
		"description":        w.Description,
		"type":               w.Type,
		"breed":              w.Breed,
		"last_seen_time":     w.LastSeenTime,
		"last_seen_province": w.LastSeenProvince,
		"last_seen_city":     w.LastSeenCity,
	}
	if w.PictureURL != "" {
		out["picture_url"] = w.PictureURL
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
	pets.LastSeenLayout,
}

// parseTime prueba los formatos que usa la API; si ninguno sirve devuelve cero.
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
