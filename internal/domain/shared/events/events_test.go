package events

import (
	"testing"
	"time"
)

type pinged struct{ at time.Time }

func (p pinged) EventName() string     { return "test.pinged" }
func (p pinged) AggregateID() string   { return "agg" }
func (p pinged) OccurredAt() time.Time { return p.at }

func TestRecorderDrain(t *testing.T) {
	var r Recorder
	r.Record(nil)
	r.Record(pinged{})
	r.Record(pinged{})
	if len(r.Pending()) != 2 {
		t.Fatalf("pending=%d", len(r.Pending()))
	}
	if got := r.Drain(); len(got) != 2 {
		t.Fatalf("drain=%d", len(got))
	}
	if len(r.Pending()) != 0 || len(r.Drain()) != 0 {
		t.Fatal("drain must empty the recorder")
	}
}
