package destinations

import (
	"slices"
	"strings"
)

// Suggestion is a static destination offered by the picker.
type Suggestion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Region      string `json:"region"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// DefaultCatalog is the built-in suggestion list, in display order.
func DefaultCatalog() []Suggestion {
	return []Suggestion{
		{ID: "1", Name: "Nearby", Description: "Find what's around you", Icon: "✈️"},
		{ID: "2", Name: "Toronto", Region: "Canada", Description: "Guests interested in Ottawa also looked here", Icon: "🏢"},
		{ID: "3", Name: "Bangkok", Region: "Thailand", Description: "Because your wishlist has stays in Bangkok", Icon: "🏛️"},
		{ID: "4", Name: "London", Region: "United Kingdom", Description: "For sights like Buckingham Palace", Icon: "🌉"},
		{ID: "5", Name: "New York", Region: "NY", Description: "For its stunning architecture", Icon: "🌉"},
	}
}

// Filter returns the catalog entries whose name or region contains text,
// ignoring case, in catalog order. Blank text returns the whole catalog.
func Filter(catalog []Suggestion, text string) []Suggestion {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return slices.Clone(catalog)
	}
	out := make([]Suggestion, 0, len(catalog))
	for _, s := range catalog {
		if strings.Contains(strings.ToLower(s.Name), needle) || strings.Contains(strings.ToLower(s.Region), needle) {
			out = append(out, s)
		}
	}
	return out
}
