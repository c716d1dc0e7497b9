package search

import (
	"time"

	"stayfront/internal/domain/guests"
)

// Submitted is raised for every search that passed validation.
type Submitted struct {
	VisitorID string        `json:"visitorId"`
	Where     string        `json:"where"`
	CheckIn   string        `json:"checkIn,omitempty"`
	CheckOut  string        `json:"checkOut,omitempty"`
	Guests    guests.Counts `json:"guests"`
	Query     string        `json:"query"`
	At        time.Time     `json:"at"`
}

func (r Request) Submitted(visitorID string, at time.Time) Submitted {
	return Submitted{
		VisitorID: visitorID,
		Where:     r.Where,
		CheckIn:   r.Dates.CheckIn.String(),
		CheckOut:  r.Dates.CheckOut.String(),
		Guests:    r.Guests,
		Query:     r.Encode(),
		At:        at,
	}
}

func (e Submitted) EventName() string     { return "search.submitted" }
func (e Submitted) AggregateID() string   { return e.VisitorID }
func (e Submitted) OccurredAt() time.Time { return e.At }
