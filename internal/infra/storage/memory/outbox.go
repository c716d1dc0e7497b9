package memory

import (
	"context"
	"log/slog"
	"sync"

	appoutbox "stayfront/internal/app/outbox"
)

// Outbox keeps events in memory until flushed. Flush logs every record
// instead of publishing it.
type Outbox struct {
	Logger *slog.Logger

	mu      sync.Mutex
	records []appoutbox.EventRecord
}

func NewOutbox(logger *slog.Logger) *Outbox {
	return &Outbox{Logger: logger}
}

func (o *Outbox) Add(ctx context.Context, record appoutbox.EventRecord) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = append(o.records, record)
	return nil
}

func (o *Outbox) Flush(ctx context.Context) error {
	o.mu.Lock()
	flushed := o.records
	o.records = nil
	o.mu.Unlock()

	if o.Logger == nil {
		return nil
	}
	for _, rec := range flushed {
		o.Logger.InfoContext(ctx, "event",
			"id", rec.ID,
			"name", rec.Name,
			"aggregate", rec.Aggregate,
			"payload", string(rec.Payload),
		)
	}
	return nil
}

// Pending returns the records added since the last flush.
func (o *Outbox) Pending() []appoutbox.EventRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]appoutbox.EventRecord(nil), o.records...)
}

var _ appoutbox.Outbox = (*Outbox)(nil)
