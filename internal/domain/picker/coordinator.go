package picker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField   = errors.New("picker: unknown field")
	ErrUnknownOverlay = errors.New("picker: unknown overlay")
)

// Exclusive holds at most one active value; the zero value of T means none.
// Activating a value replaces whatever was active before.
type Exclusive[T comparable] struct {
	active T
}

func (e *Exclusive[T]) Active() T { return e.active }

func (e *Exclusive[T]) IsActive(v T) bool {
	var none T
	return v != none && e.active == v
}

func (e *Exclusive[T]) Any() bool {
	var none T
	return e.active != none
}

// Set activates v and returns the previously active value.
func (e *Exclusive[T]) Set(v T) T {
	prev := e.active
	e.active = v
	return prev
}

func (e *Exclusive[T]) Reset() T {
	var none T
	return e.Set(none)
}

// Field identifies the search bar panel that is mounted.
type Field string

const (
	FieldNone        Field = ""
	FieldDestination Field = "destination"
	FieldCheckIn     Field = "checkIn"
	FieldCheckOut    Field = "checkOut"
	FieldGuests      Field = "guests"
)

// ParseField accepts the canonical names plus the labels shown in the bar.
func ParseField(raw string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "destination", "where":
		return FieldDestination, nil
	case "checkin", "check-in":
		return FieldCheckIn, nil
	case "checkout", "check-out":
		return FieldCheckOut, nil
	case "guests", "who":
		return FieldGuests, nil
	case "", "none":
		return FieldNone, nil
	default:
		return FieldNone, fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
}

// IsDate reports whether the field belongs to the date-range panel.
func (f Field) IsDate() bool {
	return f == FieldCheckIn || f == FieldCheckOut
}

// Anchor says where the mounted panel is placed relative to the bar.
type Anchor string

const (
	AnchorNone  Anchor = ""
	AnchorLeft  Anchor = "left"
	AnchorFull  Anchor = "full"
	AnchorRight Anchor = "right"
)

func (f Field) Anchor() Anchor {
	switch f {
	case FieldDestination:
		return AnchorLeft
	case FieldCheckIn, FieldCheckOut:
		return AnchorFull
	case FieldGuests:
		return AnchorRight
	default:
		return AnchorNone
	}
}

// DismissReason records why a panel was closed.
type DismissReason string

const (
	DismissExplicit DismissReason = "explicit"
	DismissOutside  DismissReason = "outside"
	DismissEscape   DismissReason = "escape"
	DismissSelected DismissReason = "selected"
)

// Transition is delivered to listeners whenever the active field changes.
type Transition struct {
	From   Field
	To     Field
	Reason DismissReason
}

// Coordinator decides which single search bar panel is visible. It knows
// nothing about the selectors behind the panels.
type Coordinator struct {
	panel     Exclusive[Field]
	listeners []func(Transition)
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

func (c *Coordinator) Active() Field { return c.panel.Active() }

func (c *Coordinator) IsOpen(f Field) bool { return c.panel.IsActive(f) }

func (c *Coordinator) Anchor() Anchor { return c.panel.Active().Anchor() }

func (c *Coordinator) OnChange(fn func(Transition)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// Open mounts the panel for f and implicitly closes any other.
func (c *Coordinator) Open(f Field) error {
	if _, err := ParseField(string(f)); err != nil {
		return err
	}
	if f == FieldNone {
		c.Close(DismissExplicit)
		return nil
	}
	prev := c.panel.Set(f)
	c.emit(Transition{From: prev, To: f})
	return nil
}

// Close unmounts the current panel; it reports whether anything was open.
func (c *Coordinator) Close(reason DismissReason) bool {
	if !c.panel.Any() {
		return false
	}
	prev := c.panel.Reset()
	c.emit(Transition{From: prev, To: FieldNone, Reason: reason})
	return true
}

// PointerDown handles a pointer press; presses outside the mounted panel
// dismiss it.
func (c *Coordinator) PointerDown(insidePanel bool) bool {
	if insidePanel {
		return false
	}
	return c.Close(DismissOutside)
}

// KeyDown dismisses the panel on Escape and ignores every other key.
func (c *Coordinator) KeyDown(key string) bool {
	if key != "Escape" {
		return false
	}
	return c.Close(DismissEscape)
}

func (c *Coordinator) emit(t Transition) {
	if t.From == t.To {
		return
	}
	for _, fn := range c.listeners {
		fn(t)
	}
}
