package listings

import (
	"encoding/json"
	"testing"
)

func TestCardMapping(t *testing.T) {
	l := Listing{ID: "a1", Title: "Loft", Type: "Apartment", Price: 120, Currency: "$", Duration: "2 nights"}
	card := l.Card()
	if card.PriceLabel != "$120 for 2 nights" {
		t.Fatalf("price=%q", card.PriceLabel)
	}
	if card.Image != PlaceholderImage {
		t.Fatalf("image=%q", card.Image)
	}
	if card.Category != OtherCategory {
		t.Fatalf("category=%q", card.Category)
	}
	if card.HotelName != "Loft" || card.Heading() != "Apartment in Loft" {
		t.Fatalf("hotel=%q heading=%q", card.HotelName, card.Heading())
	}

	l.Images = []string{"https://img/1.jpg", "https://img/2.jpg"}
	if l.Card().Image != "https://img/1.jpg" {
		t.Fatal("first gallery image is the fallback")
	}
	l.ImageURL = "https://img/cover.jpg"
	if l.Card().Image != "https://img/cover.jpg" {
		t.Fatal("cover image wins")
	}
	l.Price = 99.5
	if got := l.Card().PriceLabel; got != "$99.5 for 2 nights" {
		t.Fatalf("price=%q", got)
	}
}

func TestGroupByCategoryKeepsLargestFive(t *testing.T) {
	var items []Listing
	add := func(category string, n int) {
		for i := 0; i < n; i++ {
			items = append(items, Listing{Category: category})
		}
	}
	add("Beach", 1)
	add("City", 3)
	add("", 2)
	add("Lake", 2)
	add("Mountain", 4)
	add("Desert", 1)
	add("Forest", 1)

	groups := GroupByCategory(items, 0)
	if len(groups) != MaxCategories {
		t.Fatalf("groups=%d", len(groups))
	}
	want := []string{"Mountain", "City", OtherCategory, "Lake", "Beach"}
	for i, g := range groups {
		if g.Category != want[i] {
			t.Fatalf("group %d=%q want %q", i, g.Category, want[i])
		}
	}
	for i := 1; i < len(groups); i++ {
		if len(groups[i].Cards) > len(groups[i-1].Cards) {
			t.Fatal("groups must be ordered by size")
		}
	}
}

func TestRoomDefaults(t *testing.T) {
	var d Detail
	if err := json.Unmarshal([]byte(`{"_id":"r1","title":"","images":[]}`), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	r := d.Room()
	if r.MaxGuests != 2 || r.Bedrooms != 1 || r.Bathrooms != 1 {
		t.Fatalf("counts=%d/%d/%d", r.MaxGuests, r.Bedrooms, r.Bathrooms)
	}
	if r.CheckInTime != "4:00 PM" || r.CheckOutTime != "11:00 AM" {
		t.Fatalf("times=%q %q", r.CheckInTime, r.CheckOutTime)
	}
	if r.CancellationPolicy != "Free cancellation for 48 hours" {
		t.Fatalf("policy=%q", r.CancellationPolicy)
	}
	if r.Title != "Room" || r.Host.Name != "Host" {
		t.Fatalf("title=%q host=%q", r.Title, r.Host.Name)
	}
	if len(r.Gallery) != 1 || r.Gallery[0] != PlaceholderImage {
		t.Fatalf("gallery=%v", r.Gallery)
	}
}

func TestRoomKeepsProvidedValues(t *testing.T) {
	raw := `{"_id":"r2","title":"Villa","maxGuests":6,"bedrooms":3,"bathrooms":2,
		"checkInTime":"3:00 PM","host":{"name":"Ana","isSuperhost":true},
		"priceDetails":{"basePrice":300,"cleaningFee":40,"serviceFee":20,"taxes":10,"discount":30}}`
	var d Detail
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	r := d.Room()
	if r.MaxGuests != 6 || r.Bedrooms != 3 || r.Bathrooms != 2 || r.CheckInTime != "3:00 PM" {
		t.Fatalf("room=%+v", r)
	}
	if !r.Host.IsSuperhost || r.Host.Name != "Ana" {
		t.Fatalf("host=%+v", r.Host)
	}
	if r.PriceDetails.Total() != 340 {
		t.Fatalf("total=%v", r.PriceDetails.Total())
	}
}
