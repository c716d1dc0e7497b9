package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu      sync.Mutex
	pending []*Message
	sent    []string
	failed  map[string]string
}

func (f *fakeSource) Claim(_ context.Context, _ string) (*Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pending) == 0 {
		return nil, nil
	}
	msg := f.pending[0]
	f.pending = f.pending[1:]
	return msg, nil
}

func (f *fakeSource) MarkSent(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeSource) MarkFailed(_ context.Context, id string, _ time.Time, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = errMsg
	return nil
}

type published struct {
	topic   string
	key     string
	payload []byte
	headers map[string]string
}

type fakeProducer struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (p *fakeProducer) Publish(_ context.Context, topic, key string, payload []byte, headers map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, published{topic, key, payload, headers})
	return nil
}

func TestDrainPublishesCloudEvents(t *testing.T) {
	src := &fakeSource{pending: []*Message{{
		ID:         "e1",
		Name:       "search.submitted",
		Payload:    []byte(`{"where":"Paris"}`),
		Aggregate:  "visitor-1",
		OccurredAt: time.Date(2025, 10, 17, 9, 0, 0, 0, time.UTC),
		Headers:    map[string]string{"request_id": "r1"},
	}}}
	prod := &fakeProducer{}
	w := &Worker{Store: src, Producer: prod, TopicPrefix: "stayfront.", ID: "w1"}

	n, err := w.drain(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if len(src.sent) != 1 || src.sent[0] != "e1" {
		t.Fatalf("sent=%v", src.sent)
	}
	msg := prod.msgs[0]
	if msg.topic != "stayfront.search.events.v1" || msg.key != "visitor-1" {
		t.Fatalf("topic=%q key=%q", msg.topic, msg.key)
	}
	if msg.headers["content-type"] != "application/cloudevents+json" || msg.headers["request_id"] != "r1" {
		t.Fatalf("headers=%v", msg.headers)
	}
	var evt struct {
		SpecVersion string          `json:"specversion"`
		ID          string          `json:"id"`
		Type        string          `json:"type"`
		Source      string          `json:"source"`
		Data        json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(msg.payload, &evt); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if evt.SpecVersion != "1.0" || evt.ID != "e1" || evt.Type != "search.submitted.v1" || evt.Source != "app://stayfront" {
		t.Fatalf("evt=%+v", evt)
	}
	if string(evt.Data) != `{"where":"Paris"}` {
		t.Fatalf("data=%s", evt.Data)
	}
}

func TestPublishFailureMarksFailed(t *testing.T) {
	src := &fakeSource{pending: []*Message{{ID: "e1", Name: "locale.language_changed", Payload: []byte(`{}`)}}}
	w := &Worker{Store: src, Producer: &fakeProducer{err: errors.New("broker down")}}
	if _, err := w.drain(context.Background()); err != nil {
		t.Fatalf("drain: %v", err)
	}
	if src.failed["e1"] != "broker down" || len(src.sent) != 0 {
		t.Fatalf("failed=%v sent=%v", src.failed, src.sent)
	}
}

func TestInvalidPayloadMarksFailed(t *testing.T) {
	src := &fakeSource{pending: []*Message{{ID: "e2", Name: "hosting.intent_submitted", Payload: []byte(`not json`)}}}
	prod := &fakeProducer{}
	w := &Worker{Store: src, Producer: prod}
	_, _ = w.drain(context.Background())
	if _, ok := src.failed["e2"]; !ok || len(prod.msgs) != 0 {
		t.Fatalf("failed=%v msgs=%d", src.failed, len(prod.msgs))
	}
}

func TestNextRetryUsesBackoff(t *testing.T) {
	w := &Worker{Backoff: []time.Duration{time.Second, time.Minute}}
	if d := time.Until(w.nextRetry(0)); d > time.Second || d < 900*time.Millisecond {
		t.Fatalf("first=%s", d)
	}
	if d := time.Until(w.nextRetry(5)); d < 59*time.Second {
		t.Fatalf("capped=%s", d)
	}
}

func TestRunRequiresDependencies(t *testing.T) {
	if err := (&Worker{}).Run(context.Background()); !errors.Is(err, ErrWorkerNotConfigured) {
		t.Fatalf("err=%v", err)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	src := &fakeSource{}
	w := &Worker{Store: src, Producer: &fakeProducer{}, Interval: time.Millisecond}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := w.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v", err)
	}
}
