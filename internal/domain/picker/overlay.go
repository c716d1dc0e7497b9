package picker

import (
	"fmt"
	"strings"
)

// Overlay is a full-page dialog that lives outside the search bar.
type Overlay string

const (
	OverlayNone         Overlay = ""
	OverlayLocalization Overlay = "localization"
	OverlayBecomeHost   Overlay = "becomeHost"
)

func ParseOverlay(raw string) (Overlay, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "localization", "language", "currency":
		return OverlayLocalization, nil
	case "becomehost", "become-host", "host":
		return OverlayBecomeHost, nil
	default:
		return OverlayNone, fmt.Errorf("%w: %q", ErrUnknownOverlay, raw)
	}
}

// Overlays keeps at most one dialog open, independently of the search bar
// coordinator.
type Overlays struct {
	open Exclusive[Overlay]
}

func (o *Overlays) Active() Overlay { return o.open.Active() }

func (o *Overlays) Open(v Overlay) {
	o.open.Set(v)
}

func (o *Overlays) Close() bool {
	if !o.open.Any() {
		return false
	}
	o.open.Reset()
	return true
}

func (o *Overlays) KeyDown(key string) bool {
	if key != "Escape" {
		return false
	}
	return o.Close()
}
