package search

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"stayfront/internal/domain/guests"
	"stayfront/internal/domain/shared/daterange"
)

func TestEncodeFullRequest(t *testing.T) {
	dates := daterange.DateRange{
		CheckIn:  daterange.NewDay(2025, time.October, 31),
		CheckOut: daterange.NewDay(2025, time.November, 2),
	}
	req, err := Build("Paris", dates, guests.Counts{Adults: 2, Children: 1})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := "where=Paris&checkIn=2025-10-31&checkOut=2025-11-02&guests=3&adults=2&children=1&infants=0&pets=0"
	if got := req.Encode(); got != want {
		t.Fatalf("encode=%q\nwant   %q", got, want)
	}
}

func TestEncodeOmitsMissingDates(t *testing.T) {
	req, err := Build("Tokyo", daterange.DateRange{}, guests.Counts{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := "where=Tokyo&guests=0&adults=0&children=0&infants=0&pets=0"
	if got := req.Encode(); got != want {
		t.Fatalf("encode=%q", got)
	}

	req, _ = Build("Tokyo", daterange.DateRange{CheckIn: daterange.NewDay(2025, time.December, 1)}, guests.Counts{Adults: 1})
	want = "where=Tokyo&checkIn=2025-12-01&guests=1&adults=1&children=0&infants=0&pets=0"
	if got := req.Encode(); got != want {
		t.Fatalf("encode=%q", got)
	}
}

func TestBuildRejectsBlankDestination(t *testing.T) {
	for _, where := range []string{"", "   ", "\t\n"} {
		if _, err := Build(where, daterange.DateRange{}, guests.Counts{Adults: 1}); !errors.Is(err, ErrMissingDestination) {
			t.Errorf("Build(%q) err=%v", where, err)
		}
	}
}

func TestBuildKeepsRawDestinationText(t *testing.T) {
	req, err := Build("  New York ", daterange.DateRange{}, guests.Counts{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	values, err := url.ParseQuery(req.Encode())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if values.Get("where") != "  New York " {
		t.Fatalf("where=%q", values.Get("where"))
	}
}

func TestGuestsParamIsSumOfCounters(t *testing.T) {
	counts := guests.Counts{Adults: 3, Children: 2, Infants: 1, Pets: 4}
	req, _ := Build("Oslo", daterange.DateRange{}, counts)
	if q := req.Query(); q.Guests != "10" {
		t.Fatalf("guests=%q", q.Guests)
	}
}

func TestQueryRoundTripPreservesPresentParams(t *testing.T) {
	raw := "where=Lima&guests=2&adults=2&children=0&infants=0&pets=0&utm=x"
	values, _ := url.ParseQuery(raw)
	q := ParseQuery(values)
	if !q.HasDestination() {
		t.Fatal("destination expected")
	}
	want := "where=Lima&guests=2&adults=2&children=0&infants=0&pets=0"
	if got := q.Encode(); got != want {
		t.Fatalf("encode=%q", got)
	}
	if q.Counts() != (guests.Counts{Adults: 2}) {
		t.Fatalf("counts=%+v", q.Counts())
	}
	if !q.Dates().IsEmpty() {
		t.Fatalf("dates=%+v", q.Dates())
	}
}

func TestQueryWithoutWhere(t *testing.T) {
	values, _ := url.ParseQuery("checkIn=2025-10-31&adults=1")
	q := ParseQuery(values)
	if q.HasDestination() {
		t.Fatal("where is missing")
	}
	if got := q.Values().Get(ParamCheckIn); got != "2025-10-31" {
		t.Fatalf("checkIn=%q", got)
	}
}
