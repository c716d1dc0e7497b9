package dto

import (
	"stayfront/internal/domain/guests"
	"stayfront/internal/domain/listings"
)

// Homepage lists the category carousels.
type Homepage struct {
	Groups []listings.Group `json:"groups"`
	Failed bool             `json:"failed"`
}

// ResultsState enumerates what the results view shows.
type ResultsState string

const (
	ResultsMissing ResultsState = "missing"
	ResultsError   ResultsState = "error"
	ResultsEmpty   ResultsState = "empty"
	ResultsLoaded  ResultsState = "loaded"
)

// Results is the search results view model.
type Results struct {
	State       ResultsState       `json:"state"`
	MessageKey  string             `json:"-"`
	Message     string             `json:"message,omitempty"`
	Where       string             `json:"where"`
	DatesLabel  string             `json:"datesLabel"`
	GuestsLabel string             `json:"guestsLabel"`
	Listings    []listings.Listing `json:"listings"`
}

// Room is the room page view model.
type Room struct {
	Room       listings.Room `json:"room"`
	Booking    Booking       `json:"booking"`
	Failed     bool          `json:"failed"`
	MessageKey string        `json:"-"`
	Message    string        `json:"message,omitempty"`
}

// Booking is the reservation widget beside the room details.
type Booking struct {
	CheckIn     string        `json:"checkIn,omitempty"`
	CheckOut    string        `json:"checkOut,omitempty"`
	Nights      int           `json:"nights"`
	Guests      guests.Counts `json:"guests"`
	GuestsLabel string        `json:"guestsLabel"`
	Total       float64       `json:"total"`
}
