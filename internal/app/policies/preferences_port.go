package policies

import (
	"context"

	"stayfront/internal/domain/locale"
)

// PreferenceStore persists the language and currency of a visitor. Load
// reports found=false for unknown visitors.
type PreferenceStore interface {
	Load(ctx context.Context, visitorID string) (settings locale.Settings, found bool, err error)
	Save(ctx context.Context, settings locale.Settings) error
}
