package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"airtable-proxy-go/internal/config"
)

func newTestClient() *AirtableClient {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.Default(), logger)
}

func TestDo_InjectsCredentialHeaders(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok")
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want %q", got, "application/json")
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer upstream.Close()

	c := newTestClient()

	resp, err := c.Do(context.Background(), http.MethodGet, upstream.URL, "tok", nil)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Errorf("body = %q, want %q", resp.Body, `{"ok":true}`)
	}
}

func TestDo_NilBodySendsNothing(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if len(b) != 0 {
			t.Errorf("upstream body = %q, want empty", b)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	c := newTestClient()

	if _, err := c.Do(context.Background(), http.MethodGet, upstream.URL, "tok", nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_ForwardsBodyBytes(t *testing.T) {
	want := `{"fields":{"x":1}}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if string(b) != want {
			t.Errorf("upstream body = %q, want %q", b, want)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	c := newTestClient()

	if _, err := c.Do(context.Background(), http.MethodPatch, upstream.URL, "tok", []byte(want)); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_DialFailure(t *testing.T) {
	c := newTestClient()

	if _, err := c.Do(context.Background(), http.MethodGet, "http://127.0.0.1:1/nope", "tok", nil); err == nil {
		t.Fatal("Do() error = nil, want dial failure")
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer upstream.Close()

	c := newTestClient()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.Do(ctx, http.MethodGet, upstream.URL, "tok", nil); err == nil {
		t.Fatal("Do() error = nil, want context deadline")
	}
}

func TestNew_AppliesTimeout(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Default()
	cfg.Upstream.TimeoutSeconds = 7

	c := New(cfg, logger)

	if got := c.httpClient.Timeout; got != 7*time.Second {
		t.Errorf("timeout = %v, want %v", got, 7*time.Second)
	}
}
