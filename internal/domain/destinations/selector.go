package destinations

import (
	"slices"
	"strings"
)

// RecentSearch is a previously submitted search shown while the text is blank.
type RecentSearch struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Dates       string `json:"dates"`
	Guests      string `json:"guests"`
	Icon        string `json:"icon"`
}

const defaultRecentLimit = 5

// Recent keeps the newest searches first, one entry per destination.
type Recent struct {
	items []RecentSearch
	limit int
}

func NewRecent(limit int, seed ...RecentSearch) *Recent {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	r := &Recent{limit: limit}
	for i := len(seed) - 1; i >= 0; i-- {
		r.Add(seed[i])
	}
	return r
}

// SeedRecent is shown to visitors who have not searched yet.
func SeedRecent() []RecentSearch {
	return []RecentSearch{{ID: "seed-1", Destination: "Kuala Lumpur", Dates: "Oct 17 – 19", Guests: "1 guest", Icon: "🏢"}}
}

func (r *Recent) Add(item RecentSearch) {
	key := strings.ToLower(strings.TrimSpace(item.Destination))
	if key == "" {
		return
	}
	r.items = slices.DeleteFunc(r.items, func(existing RecentSearch) bool {
		return strings.ToLower(strings.TrimSpace(existing.Destination)) == key
	})
	r.items = slices.Insert(r.items, 0, item)
	if len(r.items) > r.limit {
		r.items = r.items[:r.limit]
	}
}

func (r *Recent) Items() []RecentSearch { return slices.Clone(r.items) }

// Selector is the destination picker: free text plus derived suggestions.
type Selector struct {
	text     string
	catalog  []Suggestion
	filtered []Suggestion
	recent   *Recent
}

func NewSelector(catalog []Suggestion, recent *Recent) *Selector {
	if recent == nil {
		recent = NewRecent(defaultRecentLimit)
	}
	s := &Selector{catalog: slices.Clone(catalog), recent: recent}
	s.SetText("")
	return s
}

func (s *Selector) Text() string { return s.text }

// SetText stores the raw text and recomputes the suggestions.
func (s *Selector) SetText(text string) {
	s.text = text
	s.filtered = Filter(s.catalog, text)
}

func (s *Selector) Suggestions() []Suggestion { return slices.Clone(s.filtered) }

// ShowRecent reports whether the recent list replaces the results header.
func (s *Selector) ShowRecent() bool {
	return strings.TrimSpace(s.text) == "" && len(s.recent.items) > 0
}

func (s *Selector) Recent() []RecentSearch { return s.recent.Items() }

// Select takes a suggestion or a recent search name as the text. Only the
// name is restored, never the dates or guests of a recent search.
func (s *Selector) Select(name string) {
	s.SetText(name)
}

func (s *Selector) Clear() {
	s.SetText("")
}

// Remember records a submitted search in the recent list.
func (s *Selector) Remember(item RecentSearch) {
	s.recent.Add(item)
}
