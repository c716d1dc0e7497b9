package results

import (
	"context"
	"errors"
	"testing"
)

func TestNewerFetchCancelsOlder(t *testing.T) {
	tr := NewTracker()
	first, t1 := tr.Begin(context.Background())
	second, t2 := tr.Begin(context.Background())

	if !errors.Is(first.Err(), context.Canceled) {
		t.Fatal("first fetch context must be cancelled")
	}
	if second.Err() != nil {
		t.Fatal("second fetch context must be live")
	}
	if err := tr.Finish(t1); !errors.Is(err, ErrSuperseded) {
		t.Fatalf("stale finish err=%v", err)
	}
	if err := tr.Finish(t2); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !errors.Is(second.Err(), context.Canceled) {
		t.Fatal("finish releases the context")
	}
}

func TestFinishOutOfOrder(t *testing.T) {
	tr := NewTracker()
	_, t1 := tr.Begin(context.Background())
	_, t2 := tr.Begin(context.Background())
	if err := tr.Finish(t2); err != nil {
		t.Fatalf("latest: %v", err)
	}
	// The older response arriving late is still dropped.
	if err := tr.Finish(t1); !errors.Is(err, ErrSuperseded) {
		t.Fatalf("err=%v", err)
	}
}
