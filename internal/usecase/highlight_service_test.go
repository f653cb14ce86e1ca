package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/highlight"
)

func newHighlightServiceForTest(items []highlight.Highlight, fetcher VideoStatsFetcher) (*HighlightService, *stubHighlightRepository) {
	repo := &stubHighlightRepository{byID: map[string]highlight.Highlight{}}
	for _, h := range items {
		repo.byID[h.ID] = h
	}

	service := NewHighlightService(repo, fetcher, &stubIDGenerator{}, nil, 2)
	service.now = fixedNow
	return service, repo
}

func TestHighlightService_Create_DerivesVideoIDAndStats(t *testing.T) {
	t.Parallel()

	published := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &stubStatsFetcher{
		stats: map[string]VideoStats{
			"dQw4w9WgXcQ": {Views: 1200, Duration: "4:05", PublishedDate: &published},
		},
	}
	service, repo := newHighlightServiceForTest(nil, fetcher)

	created, err := service.Create(context.Background(), highlight.Highlight{
		Title:    "Week 4 highlights",
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if created.VideoID != "dQw4w9WgXcQ" {
		t.Fatalf("VideoID = %q", created.VideoID)
	}
	if created.Views != 1200 || created.Duration != "4:05" {
		t.Fatalf("unexpected stats: views=%d duration=%q", created.Views, created.Duration)
	}
	if created.PublishedDate == nil || !created.PublishedDate.Equal(published) {
		t.Fatalf("unexpected published date: %v", created.PublishedDate)
	}
	if created.LastUpdated.IsZero() {
		t.Fatal("expected LastUpdated set")
	}
	if _, ok := repo.byID[created.ID]; !ok {
		t.Fatal("expected highlight persisted")
	}
}

func TestHighlightService_Create_RejectsInvalidVideoURL(t *testing.T) {
	t.Parallel()

	service, repo := newHighlightServiceForTest(nil, &stubStatsFetcher{})

	_, err := service.Create(context.Background(), highlight.Highlight{
		Title:    "Broken",
		VideoURL: "https://example.com/video/123",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("expected nothing persisted")
	}
}

func TestHighlightService_Create_SurvivesStatsFetchFailure(t *testing.T) {
	t.Parallel()

	fetcher := &stubStatsFetcher{err: errors.New("quota exceeded")}
	service, repo := newHighlightServiceForTest(nil, fetcher)

	created, err := service.Create(context.Background(), highlight.Highlight{
		Title:    "Week 5 highlights",
		VideoURL: "https://youtu.be/dQw4w9WgXcQ",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if created.VideoID != "dQw4w9WgXcQ" {
		t.Fatalf("VideoID = %q", created.VideoID)
	}
	if created.Views != 0 || created.Duration != "" || created.PublishedDate != nil {
		t.Fatalf("expected empty stats, got %+v", created)
	}
	if _, ok := repo.byID[created.ID]; !ok {
		t.Fatal("expected highlight persisted despite fetch failure")
	}
}

func TestHighlightService_RefreshStats_CountsOutcomes(t *testing.T) {
	t.Parallel()

	fetcher := &stubStatsFetcher{
		stats: map[string]VideoStats{
			"aaaaaaaaaaa": {Views: 10, Duration: "1:00"},
		},
	}
	service, repo := newHighlightServiceForTest([]highlight.Highlight{
		{ID: "h1", Title: "ok", VideoURL: "https://youtu.be/aaaaaaaaaaa", VideoID: "aaaaaaaaaaa"},
		{ID: "h2", Title: "missing", VideoURL: "https://youtu.be/bbbbbbbbbbb", VideoID: "bbbbbbbbbbb"},
	}, fetcher)

	report, err := service.RefreshStats(context.Background())
	if err != nil {
		t.Fatalf("RefreshStats error: %v", err)
	}

	if report.Total != 2 || report.Refreshed != 1 || report.Failed != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if h1, _ := repo.get("h1"); h1.Views != 10 {
		t.Fatalf("expected h1 refreshed, got %+v", h1)
	}
}

type stubStatsFetcher struct {
	stats map[string]VideoStats
	err   error
}

func (s *stubStatsFetcher) FetchStats(_ context.Context, videoID string) (VideoStats, error) {
	if s.err != nil {
		return VideoStats{}, s.err
	}
	stats, ok := s.stats[videoID]
	if !ok {
		return VideoStats{}, errors.New("video not found")
	}
	return stats, nil
}

// stubHighlightRepository is mutex-guarded because RefreshStats updates
// rows from pool workers.
type stubHighlightRepository struct {
	mu   sync.Mutex
	byID map[string]highlight.Highlight
}

func (s *stubHighlightRepository) List(_ context.Context) ([]highlight.Highlight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]highlight.Highlight, 0, len(s.byID))
	for _, h := range s.byID {
		out = append(out, h)
	}
	return out, nil
}

func (s *stubHighlightRepository) GetByID(_ context.Context, id string) (highlight.Highlight, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.byID[id]
	return h, ok, nil
}

func (s *stubHighlightRepository) Create(_ context.Context, h highlight.Highlight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[h.ID] = h
	return nil
}

func (s *stubHighlightRepository) Update(_ context.Context, h highlight.Highlight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[h.ID] = h
	return nil
}

func (s *stubHighlightRepository) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}

func (s *stubHighlightRepository) get(id string) (highlight.Highlight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.byID[id]
	return h, ok
}
