package memory

import (
	"context"
	"sync"

	"stayfront/internal/app/policies"
	"stayfront/internal/domain/locale"
)

// PreferenceStore keeps visitor preferences for the life of the process.
type PreferenceStore struct {
	mu    sync.RWMutex
	items map[string]locale.Settings
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{items: make(map[string]locale.Settings)}
}

func (s *PreferenceStore) Load(ctx context.Context, visitorID string) (locale.Settings, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings, ok := s.items[visitorID]
	return settings, ok, nil
}

func (s *PreferenceStore) Save(ctx context.Context, settings locale.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[settings.VisitorID] = settings
	return nil
}

var _ policies.PreferenceStore = (*PreferenceStore)(nil)
