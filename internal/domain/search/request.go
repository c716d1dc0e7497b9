package search

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"stayfront/internal/domain/guests"
	"stayfront/internal/domain/shared/daterange"
)

var ErrMissingDestination = errors.New("search: destination is required")

// Query-string parameter names shared by the builder and the results view.
const (
	ParamWhere    = "where"
	ParamCheckIn  = "checkIn"
	ParamCheckOut = "checkOut"
	ParamGuests   = "guests"
	ParamAdults   = "adults"
	ParamChildren = "children"
	ParamInfants  = "infants"
	ParamPets     = "pets"
)

// ParamOrder is the order parameters are written in.
var ParamOrder = []string{
	ParamWhere, ParamCheckIn, ParamCheckOut, ParamGuests,
	ParamAdults, ParamChildren, ParamInfants, ParamPets,
}

// Request is the search composed at submit time. It is never stored.
type Request struct {
	Where  string
	Dates  daterange.DateRange
	Guests guests.Counts
}

// Build validates the destination and snapshots the three pickers.
func Build(where string, dates daterange.DateRange, counts guests.Counts) (Request, error) {
	if strings.TrimSpace(where) == "" {
		return Request{}, ErrMissingDestination
	}
	if err := dates.Validate(); err != nil {
		return Request{}, err
	}
	return Request{Where: where, Dates: dates, Guests: counts}, nil
}

// Query converts the request to the query-string contract. Dates appear only
// when present; the four counters always do.
func (r Request) Query() Query {
	return Query{
		Where:    r.Where,
		CheckIn:  r.Dates.CheckIn.String(),
		CheckOut: r.Dates.CheckOut.String(),
		Guests:   strconv.Itoa(r.Guests.Total()),
		Adults:   strconv.Itoa(r.Guests.Adults),
		Children: strconv.Itoa(r.Guests.Children),
		Infants:  strconv.Itoa(r.Guests.Infants),
		Pets:     strconv.Itoa(r.Guests.Pets),
	}
}

// Encode is shorthand for r.Query().Encode().
func (r Request) Encode() string {
	return r.Query().Encode()
}

// Query is the raw query-string view of a search as the results page reads
// it back. Values are kept as strings and passed through untouched.
type Query struct {
	Where    string `form:"where" json:"where"`
	CheckIn  string `form:"checkIn" json:"checkIn,omitempty"`
	CheckOut string `form:"checkOut" json:"checkOut,omitempty"`
	Guests   string `form:"guests" json:"guests,omitempty"`
	Adults   string `form:"adults" json:"adults,omitempty"`
	Children string `form:"children" json:"children,omitempty"`
	Infants  string `form:"infants" json:"infants,omitempty"`
	Pets     string `form:"pets" json:"pets,omitempty"`
}

// ParseQuery reads the contract parameters from values.
func ParseQuery(values url.Values) Query {
	return Query{
		Where:    values.Get(ParamWhere),
		CheckIn:  values.Get(ParamCheckIn),
		CheckOut: values.Get(ParamCheckOut),
		Guests:   values.Get(ParamGuests),
		Adults:   values.Get(ParamAdults),
		Children: values.Get(ParamChildren),
		Infants:  values.Get(ParamInfants),
		Pets:     values.Get(ParamPets),
	}
}

// HasDestination reports whether the required parameter is present.
func (q Query) HasDestination() bool {
	return q.Where != ""
}

func (q Query) pairs() [][2]string {
	return [][2]string{
		{ParamWhere, q.Where},
		{ParamCheckIn, q.CheckIn},
		{ParamCheckOut, q.CheckOut},
		{ParamGuests, q.Guests},
		{ParamAdults, q.Adults},
		{ParamChildren, q.Children},
		{ParamInfants, q.Infants},
		{ParamPets, q.Pets},
	}
}

// Values returns only the non-empty parameters.
func (q Query) Values() url.Values {
	values := url.Values{}
	for _, p := range q.pairs() {
		if p[1] != "" {
			values.Set(p[0], p[1])
		}
	}
	return values
}

// Encode writes the non-empty parameters in ParamOrder.
func (q Query) Encode() string {
	var b strings.Builder
	for _, p := range q.pairs() {
		if p[1] == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

// Counts reads the guest counters back; missing or malformed values count
// as zero.
func (q Query) Counts() guests.Counts {
	return guests.Counts{
		Adults:   atoi(q.Adults),
		Children: atoi(q.Children),
		Infants:  atoi(q.Infants),
		Pets:     atoi(q.Pets),
	}
}

// Dates reads the stay back; malformed days are dropped.
func (q Query) Dates() daterange.DateRange {
	in, _ := daterange.ParseDay(q.CheckIn)
	out, _ := daterange.ParseDay(q.CheckOut)
	return daterange.DateRange{CheckIn: in, CheckOut: out}
}

func atoi(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
