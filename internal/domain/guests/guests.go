package guests

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownField = errors.New("guests: unknown field")

// Field names one of the four counters.
type Field string

const (
	Adults   Field = "adults"
	Children Field = "children"
	Infants  Field = "infants"
	Pets     Field = "pets"
)

// Fields lists the counters in display order.
var Fields = []Field{Adults, Children, Infants, Pets}

func ParseField(raw string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case Adults, Children, Infants, Pets:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
}

// Counts is an immutable snapshot of the guest counters.
type Counts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Pets     int `json:"pets"`
}

func (c Counts) Total() int {
	return c.Adults + c.Children + c.Infants + c.Pets
}

func (c Counts) Get(f Field) int {
	switch f {
	case Adults:
		return c.Adults
	case Children:
		return c.Children
	case Infants:
		return c.Infants
	case Pets:
		return c.Pets
	}
	return 0
}

func (c Counts) with(f Field, v int) Counts {
	if v < 0 {
		v = 0
	}
	switch f {
	case Adults:
		c.Adults = v
	case Children:
		c.Children = v
	case Infants:
		c.Infants = v
	case Pets:
		c.Pets = v
	}
	return c
}

func (c Counts) clamped() Counts {
	for _, f := range Fields {
		c = c.with(f, c.Get(f))
	}
	return c
}

// Summary is the search bar label: adults and children count as guests,
// infants and pets are listed separately. Empty counts give "".
func (c Counts) Summary() string {
	parts := make([]string, 0, 3)
	if n := c.Adults + c.Children; n > 0 {
		parts = append(parts, plural(n, "guest", "guests"))
	}
	if c.Infants > 0 {
		parts = append(parts, plural(c.Infants, "infant", "infants"))
	}
	if c.Pets > 0 {
		parts = append(parts, plural(c.Pets, "pet", "pets"))
	}
	return strings.Join(parts, ", ")
}

// Breakdown is the results page label, one part per non-zero counter.
func (c Counts) Breakdown() string {
	parts := make([]string, 0, 4)
	if c.Adults > 0 {
		parts = append(parts, plural(c.Adults, "guest", "guests"))
	}
	if c.Children > 0 {
		parts = append(parts, plural(c.Children, "child", "children"))
	}
	if c.Infants > 0 {
		parts = append(parts, plural(c.Infants, "infant", "infants"))
	}
	if c.Pets > 0 {
		parts = append(parts, plural(c.Pets, "pet", "pets"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// Observer receives the counters after every mutation.
type Observer func(Counts)

// Store holds the four counters. It is owned by a single view and is not
// safe for concurrent use.
type Store struct {
	counts    Counts
	observers []Observer
}

// NewStore starts from the caller supplied values; negatives are clamped.
func NewStore(initial Counts) *Store {
	return &Store{counts: initial.clamped()}
}

func (s *Store) Counts() Counts { return s.counts }

func (s *Store) Observe(fn Observer) {
	if fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}

func (s *Store) Increment(f Field) error {
	f, err := ParseField(string(f))
	if err != nil {
		return err
	}
	s.set(s.counts.with(f, s.counts.Get(f)+1))
	return nil
}

// Decrement is a no-op at zero.
func (s *Store) Decrement(f Field) error {
	f, err := ParseField(string(f))
	if err != nil {
		return err
	}
	s.set(s.counts.with(f, s.counts.Get(f)-1))
	return nil
}

// Clear sets every counter to zero.
func (s *Store) Clear() {
	s.set(Counts{})
}

// ResetWithAdult sets one adult and zeroes everything else, the starting
// point of the booking widget.
func (s *Store) ResetWithAdult() {
	s.set(Counts{Adults: 1})
}

func (s *Store) set(next Counts) {
	s.counts = next
	for _, fn := range s.observers {
		fn(next)
	}
}
