package listings

import (
	"fmt"
	"sort"
	"strings"
)

// ListingID is the identifier assigned by the listing API ("_id").
type ListingID string

// Listing is a property as returned by the catalog and search endpoints.
type Listing struct {
	ID              ListingID `json:"_id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Location        string    `json:"location"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	HotelName       string    `json:"hotelName"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	Duration        string    `json:"duration"`
	Rating          float64   `json:"rating"`
	ReviewsCount    int       `json:"reviewsCount"`
	ImageURL        string    `json:"imageUrl"`
	Images          []string  `json:"images"`
	IsGuestFavorite bool      `json:"isGuestFavorite"`
	Category        string    `json:"category"`
	MaxGuests       int       `json:"maxGuests"`
	Bedrooms        int       `json:"bedrooms"`
	Bathrooms       int       `json:"bathrooms"`
}

const (
	PlaceholderImage = "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop"
	OtherCategory    = "Other"
	MaxCategories    = 5
)

// Image is the listing's cover image with the gallery and placeholder as
// fallbacks.
func (l Listing) Image() string {
	if l.ImageURL != "" {
		return l.ImageURL
	}
	if len(l.Images) > 0 && l.Images[0] != "" {
		return l.Images[0]
	}
	return PlaceholderImage
}

// Name prefers the title, then the hotel name.
func (l Listing) Name() string {
	switch {
	case l.Title != "":
		return l.Title
	case l.HotelName != "":
		return l.HotelName
	default:
		return "Property"
	}
}

// Card is the homepage carousel tile.
type Card struct {
	ID              ListingID `json:"id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	PriceLabel      string    `json:"price"`
	Rating          float64   `json:"rating"`
	Image           string    `json:"image"`
	IsGuestFavorite bool      `json:"isGuestFavorite"`
	Category        string    `json:"category"`
	City            string    `json:"city"`
	HotelName       string    `json:"hotelName"`
}

func (l Listing) Card() Card {
	hotel := l.HotelName
	if hotel == "" {
		hotel = l.Title
	}
	category := l.Category
	if category == "" {
		category = OtherCategory
	}
	return Card{
		ID:              l.ID,
		Title:           l.Title,
		Type:            l.Type,
		PriceLabel:      fmt.Sprintf("%s%s for %s", l.Currency, formatAmount(l.Price), l.Duration),
		Rating:          l.Rating,
		Image:           l.Image(),
		IsGuestFavorite: l.IsGuestFavorite,
		Category:        category,
		City:            l.City,
		HotelName:       hotel,
	}
}

// Heading is the card caption, "Apartment in Sunset Suites".
func (c Card) Heading() string {
	if c.Type == "" {
		return c.HotelName
	}
	return c.Type + " in " + c.HotelName
}

// Group is one homepage carousel.
type Group struct {
	Category string `json:"category"`
	Cards    []Card `json:"cards"`
}

// GroupByCategory buckets the listings by category and keeps the largest
// groups. Ties keep the order of first appearance.
func GroupByCategory(items []Listing, limit int) []Group {
	if limit <= 0 {
		limit = MaxCategories
	}
	index := map[string]int{}
	var groups []Group
	for _, l := range items {
		card := l.Card()
		i, ok := index[card.Category]
		if !ok {
			i = len(groups)
			index[card.Category] = i
			groups = append(groups, Group{Category: card.Category})
		}
		groups[i].Cards = append(groups[i].Cards, card)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return len(groups[a].Cards) > len(groups[b].Cards)
	})
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}
