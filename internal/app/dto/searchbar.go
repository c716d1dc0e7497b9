package dto

import (
	"stayfront/internal/domain/dates"
	"stayfront/internal/domain/destinations"
	"stayfront/internal/domain/guests"
)

// SearchBar is the JSON snapshot of a visitor's search bar.
type SearchBar struct {
	ActiveField string        `json:"activeField"`
	Anchor      string        `json:"anchor"`
	Destination DestinationUI `json:"destination"`
	Dates       DatesUI       `json:"dates"`
	Guests      GuestsUI      `json:"guests"`
}

type DestinationUI struct {
	Text        string                      `json:"text"`
	Label       string                      `json:"label"`
	ShowRecent  bool                        `json:"showRecent"`
	Recent      []destinations.RecentSearch `json:"recent"`
	Suggestions []destinations.Suggestion   `json:"suggestions"`
}

type DatesUI struct {
	Mode           string          `json:"mode"`
	Focus          string          `json:"focus"`
	CheckIn        string          `json:"checkIn,omitempty"`
	CheckOut       string          `json:"checkOut,omitempty"`
	CheckInLabel   string          `json:"checkInLabel"`
	CheckOutLabel  string          `json:"checkOutLabel"`
	Label          string          `json:"label"`
	MonthDuration  int             `json:"monthDuration"`
	Flexible       dates.Flexible  `json:"flexible"`
	FlexibleMonths []string        `json:"flexibleMonths"`
	Months         []CalendarMonth `json:"months"`
	Weekdays       []string        `json:"weekdays"`
}

type CalendarMonth struct {
	Title   string         `json:"title"`
	CanPrev bool           `json:"canPrev"`
	CanNext bool           `json:"canNext"`
	Cells   []CalendarCell `json:"cells"`
}

type CalendarCell struct {
	Day      string `json:"day,omitempty"`
	Number   int    `json:"number,omitempty"`
	Blank    bool   `json:"blank,omitempty"`
	Today    bool   `json:"today,omitempty"`
	Selected bool   `json:"selected,omitempty"`
	InRange  bool   `json:"inRange,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

type GuestsUI struct {
	Counts guests.Counts `json:"counts"`
	Total  int           `json:"total"`
	Label  string        `json:"label"`
}

// CalendarMonthFrom flattens a month grid for rendering.
func CalendarMonthFrom(m dates.Month) CalendarMonth {
	out := CalendarMonth{Title: m.Title, CanPrev: m.CanPrev, CanNext: m.CanNext, Cells: make([]CalendarCell, 0, len(m.Cells))}
	for _, c := range m.Cells {
		if c.Blank {
			out.Cells = append(out.Cells, CalendarCell{Blank: true})
			continue
		}
		out.Cells = append(out.Cells, CalendarCell{
			Day:      c.Day.String(),
			Number:   c.Day.DayOfMonth(),
			Today:    c.Today,
			Selected: c.Selected,
			InRange:  c.InRange,
			Disabled: c.Disabled,
		})
	}
	return out
}
