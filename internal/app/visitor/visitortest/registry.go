// Package visitortest provides an in-memory visitor registry for tests.
package visitortest

import (
	"context"
	"sync"
	"time"

	"stayfront/internal/app/visitor"
	"stayfront/internal/domain/locale"
)

// Clock is the fixed instant test visitors live at.
func Clock() time.Time {
	return time.Date(2025, time.October, 17, 9, 0, 0, 0, time.UTC)
}

type Registry struct {
	mu       sync.Mutex
	visitors map[string]*visitor.Visitor
}

func NewRegistry() *Registry {
	return &Registry{visitors: map[string]*visitor.Visitor{}}
}

func (r *Registry) Get(_ context.Context, id string) (*visitor.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.visitors[id]; ok {
		return v, nil
	}
	v := visitor.New(id, locale.DefaultSettings(id), Clock)
	r.visitors[id] = v
	return v, nil
}
