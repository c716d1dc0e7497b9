package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"stayfront/internal/app/policies"
	"stayfront/internal/app/visitor"
	"stayfront/internal/domain/dates"
	"stayfront/internal/domain/locale"
)

// Registry keeps visitors in memory for TTL after their last request, at
// most capacity of them; the least recently used visitor is dropped first.
// A visitor missing from the cache is rebuilt with the preferences saved in
// Store; search bar state starts over.
type Registry struct {
	Store  policies.PreferenceStore
	Clock  dates.Clock
	Logger *slog.Logger

	mu    sync.Mutex
	cache *ttlcache.Cache[string, *visitor.Visitor]
}

func NewRegistry(store policies.PreferenceStore, ttl time.Duration, capacity uint64, logger *slog.Logger) *Registry {
	r := &Registry{
		Store:  store,
		Clock:  time.Now,
		Logger: logger,
		cache: ttlcache.New(
			ttlcache.WithTTL[string, *visitor.Visitor](ttl),
			ttlcache.WithCapacity[string, *visitor.Visitor](capacity),
		),
	}
	r.cache.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *visitor.Visitor]) {
		if r.Logger == nil {
			return
		}
		switch reason {
		case ttlcache.EvictionReasonExpired:
			r.Logger.Debug("visitor session expired", "visitor_id", item.Key())
		case ttlcache.EvictionReasonCapacityReached:
			r.Logger.Info("visitor session evicted at capacity", "visitor_id", item.Key())
		}
	})
	return r
}

// Start runs the expiry loop until Stop is called.
func (r *Registry) Start() { r.cache.Start() }

func (r *Registry) Stop() { r.cache.Stop() }

func (r *Registry) Len() int { return r.cache.Len() }

func (r *Registry) Get(ctx context.Context, id string) (*visitor.Visitor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, visitor.ErrUnknownVisitor
	}
	if item := r.cache.Get(id); item != nil {
		return item.Value(), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if item := r.cache.Get(id); item != nil {
		return item.Value(), nil
	}

	settings := locale.DefaultSettings(id)
	if r.Store != nil {
		saved, found, err := r.Store.Load(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("session: load preferences: %w", err)
		}
		if found {
			settings = saved
		}
	}
	clock := r.Clock
	if clock == nil {
		clock = time.Now
	}
	v := visitor.New(id, settings, clock)
	r.cache.Set(id, v, ttlcache.DefaultTTL)
	return v, nil
}

var _ visitor.Registry = (*Registry)(nil)
