package pets

import "strings"

// OwnedBy filtra las publicaciones cuyo dueño es userID.
// userID vacío no matchea nada.
func OwnedBy(items []Listing, userID string) []Listing {
	userID = strings.TrimSpace(userID)
	out := make([]Listing, 0)
	if userID == "" {
		return out
	}
	for _, l := range items {
		if l.OwnerID == userID {
			out = append(out, l)
		}
	}
	return out
}
