package domain

import "strings"

type Tool struct {
	ID             string  `json:"id"` // stable slug, derived from Name at creation
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	Rented         int     `json:"rented"`
	Available      int     `json:"available"`
	BeforeImageRef string  `json:"before_image_ref,omitempty"`
	Description    string  `json:"description"`
	Specs          string  `json:"specs"`
}

// SlugFromName derives a tool ID from its display name: lowercased, runs of
// spaces/hyphens/underscores collapsed to single hyphens, everything else
// outside [a-z0-9] dropped.
func SlugFromName(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}
