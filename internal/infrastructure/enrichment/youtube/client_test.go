package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/nsflhq/nsfl-api/internal/platform/logging"
	"github.com/nsflhq/nsfl-api/internal/platform/resilience"
	"github.com/nsflhq/nsfl-api/internal/usecase"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
		Logger:         logging.NewNop(),
	})
}

func TestFetchStats_ParsesVideoMetadata(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("id") != "dQw4w9WgXcQ" {
			t.Fatalf("unexpected id: %s", q.Get("id"))
		}
		if q.Get("key") != "test-key" {
			t.Fatalf("unexpected key: %s", q.Get("key"))
		}
		if q.Get("part") != "statistics,contentDetails,snippet" {
			t.Fatalf("unexpected part: %s", q.Get("part"))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{{
				"snippet":        map[string]any{"publishedAt": "2026-09-06T18:00:00Z"},
				"contentDetails": map[string]any{"duration": "PT1H2M3S"},
				"statistics":     map[string]any{"viewCount": "15230"},
			}},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv)

	stats, err := client.FetchStats(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("fetch stats failed: %v", err)
	}

	if stats.Views != 15230 {
		t.Fatalf("unexpected views: %d", stats.Views)
	}
	if stats.Duration != "1:02:03" {
		t.Fatalf("unexpected duration: %s", stats.Duration)
	}
	want := time.Date(2026, 9, 6, 18, 0, 0, 0, time.UTC)
	if stats.PublishedDate == nil || !stats.PublishedDate.Equal(want) {
		t.Fatalf("unexpected published date: %v", stats.PublishedDate)
	}
}

func TestFetchStats_UnknownVideoNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{}})
	}))
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.FetchStats(context.Background(), "missing-video")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchStats_QuotaErrorMappedToDependencyUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"reason":"quotaExceeded"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.FetchStats(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestFormatISODuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"PT2M3S", "2:03"},
		{"PT45S", "0:45"},
		{"PT10M", "10:00"},
		{"PT1H2M3S", "1:02:03"},
		{"PT2H", "2:00:00"},
	}
	for _, tc := range cases {
		got, err := formatISODuration(tc.raw)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.raw, tc.want, got)
		}
	}

	if _, err := formatISODuration("P1DT2H"); err == nil {
		t.Fatal("expected error for calendar components")
	}
	if _, err := formatISODuration("1:02:03"); err == nil {
		t.Fatal("expected error for non-ISO input")
	}
}
