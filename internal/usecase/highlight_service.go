package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/nsflhq/nsfl-api/internal/domain/highlight"
	"github.com/nsflhq/nsfl-api/internal/domain/video"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
	"github.com/nsflhq/nsfl-api/internal/platform/logging"
)

type HighlightService struct {
	highlightRepo  highlight.Repository
	statsFetcher   VideoStatsFetcher
	idGen          id.Generator
	logger         *logging.Logger
	refreshWorkers int
	now            func() time.Time
}

func NewHighlightService(highlightRepo highlight.Repository, statsFetcher VideoStatsFetcher, idGen id.Generator, logger *logging.Logger, refreshWorkers int) *HighlightService {
	if logger == nil {
		logger = logging.Default()
	}
	if refreshWorkers < 1 {
		refreshWorkers = 4
	}
	return &HighlightService{
		highlightRepo:  highlightRepo,
		statsFetcher:   statsFetcher,
		idGen:          idGen,
		logger:         logger,
		refreshWorkers: refreshWorkers,
		now:            time.Now,
	}
}

func (s *HighlightService) List(ctx context.Context) ([]highlight.Highlight, error) {
	items, err := s.highlightRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}
	return items, nil
}

func (s *HighlightService) GetByID(ctx context.Context, highlightID string) (highlight.Highlight, error) {
	highlightID = strings.TrimSpace(highlightID)
	if highlightID == "" {
		return highlight.Highlight{}, fmt.Errorf("%w: highlight id is required", ErrInvalidInput)
	}

	h, exists, err := s.highlightRepo.GetByID(ctx, highlightID)
	if err != nil {
		return highlight.Highlight{}, fmt.Errorf("get highlight: %w", err)
	}
	if !exists {
		return highlight.Highlight{}, fmt.Errorf("%w: highlight=%s", ErrNotFound, highlightID)
	}

	return h, nil
}

// Create derives the video ID from the submitted URL and enriches the
// record with fetched stats. An unrecognizable URL rejects the write; a
// failed stats fetch only logs and the highlight is stored without stats.
func (s *HighlightService) Create(ctx context.Context, h highlight.Highlight) (highlight.Highlight, error) {
	newID, err := s.idGen.NewID()
	if err != nil {
		return highlight.Highlight{}, fmt.Errorf("generate highlight id: %w", err)
	}

	now := s.now()
	h.ID = newID
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := s.enrich(ctx, &h); err != nil {
		return highlight.Highlight{}, err
	}

	if err := h.Validate(); err != nil {
		return highlight.Highlight{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.highlightRepo.Create(ctx, h); err != nil {
		return highlight.Highlight{}, fmt.Errorf("create highlight: %w", err)
	}

	return h, nil
}

func (s *HighlightService) Update(ctx context.Context, h highlight.Highlight) (highlight.Highlight, error) {
	existing, err := s.GetByID(ctx, h.ID)
	if err != nil {
		return highlight.Highlight{}, err
	}

	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = s.now()

	if err := s.enrich(ctx, &h); err != nil {
		return highlight.Highlight{}, err
	}

	if err := h.Validate(); err != nil {
		return highlight.Highlight{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.highlightRepo.Update(ctx, h); err != nil {
		return highlight.Highlight{}, fmt.Errorf("update highlight: %w", err)
	}

	return h, nil
}

func (s *HighlightService) Delete(ctx context.Context, highlightID string) error {
	highlightID = strings.TrimSpace(highlightID)
	if highlightID == "" {
		return fmt.Errorf("%w: highlight id is required", ErrInvalidInput)
	}

	deleted, err := s.highlightRepo.Delete(ctx, highlightID)
	if err != nil {
		return fmt.Errorf("delete highlight: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: highlight=%s", ErrNotFound, highlightID)
	}

	return nil
}

// RefreshStatsReport summarizes one bulk stats refresh.
type RefreshStatsReport struct {
	Total     int
	Refreshed int
	Failed    int
}

// RefreshStats re-fetches video stats for every stored highlight on a
// bounded worker pool.
func (s *HighlightService) RefreshStats(ctx context.Context) (RefreshStatsReport, error) {
	ctx, span := startUsecaseSpan(ctx, "HighlightService.RefreshStats")
	defer span.End()

	items, err := s.highlightRepo.List(ctx)
	if err != nil {
		return RefreshStatsReport{}, fmt.Errorf("list highlights: %w", err)
	}

	pool, err := ants.NewPool(s.refreshWorkers)
	if err != nil {
		return RefreshStatsReport{}, fmt.Errorf("create refresh pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var refreshed, failed atomic.Int32

	for i := range items {
		h := items[i]
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := s.refreshOne(ctx, h); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "highlight stats refresh failed",
					"highlight_id", h.ID,
					"error", err,
				)
				return
			}
			refreshed.Add(1)
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
		}
	}

	wg.Wait()

	return RefreshStatsReport{
		Total:     len(items),
		Refreshed: int(refreshed.Load()),
		Failed:    int(failed.Load()),
	}, nil
}

func (s *HighlightService) refreshOne(ctx context.Context, h highlight.Highlight) error {
	videoID := h.VideoID
	if videoID == "" {
		extracted, err := video.ExtractID(h.VideoURL)
		if err != nil {
			return err
		}
		videoID = extracted
	}

	stats, err := s.statsFetcher.FetchStats(ctx, videoID)
	if err != nil {
		return err
	}

	h.VideoID = videoID
	h.Views = stats.Views
	h.Duration = stats.Duration
	h.PublishedDate = stats.PublishedDate
	h.LastUpdated = s.now()
	h.UpdatedAt = s.now()

	if err := s.highlightRepo.Update(ctx, h); err != nil {
		return fmt.Errorf("update highlight: %w", err)
	}
	return nil
}

func (s *HighlightService) enrich(ctx context.Context, h *highlight.Highlight) error {
	videoID, err := video.ExtractID(h.VideoURL)
	if err != nil {
		return fmt.Errorf("%w: videoUrl %q is not a recognizable video link", ErrInvalidInput, h.VideoURL)
	}
	h.VideoID = videoID

	stats, err := s.statsFetcher.FetchStats(ctx, videoID)
	if err != nil {
		s.logger.WarnContext(ctx, "video stats fetch failed, storing highlight without stats",
			"video_id", videoID,
			"error", err,
		)
		h.LastUpdated = s.now()
		return nil
	}

	h.Views = stats.Views
	h.Duration = stats.Duration
	h.PublishedDate = stats.PublishedDate
	h.LastUpdated = s.now()

	return nil
}
