package listingapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, h http.HandlerFunc, ttl time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/api/", Timeout: time.Second, CacheTTL: ttl})
}

func TestCatalogIsCached(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/api/hotelrooms" {
			t.Errorf("path=%q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"1","title":"Loft","price":120}]}`))
	}, time.Minute)

	for i := 0; i < 2; i++ {
		items, err := c.Catalog(context.Background())
		if err != nil {
			t.Fatalf("catalog: %v", err)
		}
		if len(items) != 1 || items[0].ID != "1" || items[0].Price != 120 {
			t.Fatalf("items=%+v", items)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("calls=%d", calls.Load())
	}
}

func TestRoomUnsuccessful(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hotelrooms/abc" {
			t.Errorf("path=%q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":false,"message":"not found"}`))
	}, 0)
	if _, err := c.Room(context.Background(), "abc"); !errors.Is(err, ErrUnsuccessful) {
		t.Fatalf("err=%v", err)
	}
}

func TestRoomDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"abc","title":"Cabin","amenities":["Wifi"],"host":{"name":"Rita"}}}`))
	}, 0)
	d, err := c.Room(context.Background(), "abc")
	if err != nil {
		t.Fatalf("room: %v", err)
	}
	if d.Title != "Cabin" || len(d.Amenities) != 1 || d.Host == nil || d.Host.Name != "Rita" {
		t.Fatalf("detail=%+v", d)
	}
}

func TestSearchForwardsParams(t *testing.T) {
	var got url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hotelrooms/search" {
			t.Errorf("path=%q", r.URL.Path)
		}
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{}`))
	}, time.Minute)

	items, err := c.Search(context.Background(), url.Values{"where": {"Paris"}, "adults": {"2"}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("items=%+v", items)
	}
	if got.Get("where") != "Paris" || got.Get("adults") != "2" {
		t.Fatalf("params=%v", got)
	}
}

func TestStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}, 0)
	if _, err := c.Search(context.Background(), nil); !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("err=%v", err)
	}
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	c := New(Options{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	if _, err := c.Catalog(context.Background()); !errors.Is(err, ErrTimeout) {
		t.Fatalf("err=%v", err)
	}
}

func TestCanceledIsNotWrapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Search(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}

func TestNotConfigured(t *testing.T) {
	c := New(Options{})
	if _, err := c.Catalog(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err=%v", err)
	}
}
