package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/video"
	"github.com/nsflhq/nsfl-api/internal/domain/watchlive"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
)

type WatchliveService struct {
	streamRepo watchlive.Repository
	idGen      id.Generator
	now        func() time.Time
}

func NewWatchliveService(streamRepo watchlive.Repository, idGen id.Generator) *WatchliveService {
	return &WatchliveService{
		streamRepo: streamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *WatchliveService) List(ctx context.Context) ([]watchlive.Stream, error) {
	streams, err := s.streamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list streams: %w", err)
	}
	return streams, nil
}

// Active returns the stream currently marked live, if any. When staff leave
// several streams flagged at once, the most recently updated one wins.
func (s *WatchliveService) Active(ctx context.Context) (watchlive.Stream, bool, error) {
	streams, err := s.streamRepo.List(ctx)
	if err != nil {
		return watchlive.Stream{}, false, fmt.Errorf("list streams: %w", err)
	}

	var active watchlive.Stream
	found := false
	for _, stream := range streams {
		if !stream.IsActive {
			continue
		}
		if !found || stream.UpdatedAt.After(active.UpdatedAt) {
			active = stream
			found = true
		}
	}
	return active, found, nil
}

func (s *WatchliveService) GetByID(ctx context.Context, streamID string) (watchlive.Stream, error) {
	streamID = strings.TrimSpace(streamID)
	if streamID == "" {
		return watchlive.Stream{}, fmt.Errorf("%w: stream id is required", ErrInvalidInput)
	}

	stream, exists, err := s.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return watchlive.Stream{}, fmt.Errorf("get stream: %w", err)
	}
	if !exists {
		return watchlive.Stream{}, fmt.Errorf("%w: stream=%s", ErrNotFound, streamID)
	}

	return stream, nil
}

// Create derives the video ID from the stream URL. Streams carry no view
// or duration stats.
func (s *WatchliveService) Create(ctx context.Context, stream watchlive.Stream) (watchlive.Stream, error) {
	newID, err := s.idGen.NewID()
	if err != nil {
		return watchlive.Stream{}, fmt.Errorf("generate stream id: %w", err)
	}

	now := s.now()
	stream.ID = newID
	stream.CreatedAt = now
	stream.UpdatedAt = now

	videoID, err := video.ExtractID(stream.VideoURL)
	if err != nil {
		return watchlive.Stream{}, fmt.Errorf("%w: videoUrl %q is not a recognizable video link", ErrInvalidInput, stream.VideoURL)
	}
	stream.VideoID = videoID

	if err := stream.Validate(); err != nil {
		return watchlive.Stream{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.streamRepo.Create(ctx, stream); err != nil {
		return watchlive.Stream{}, fmt.Errorf("create stream: %w", err)
	}

	return stream, nil
}

func (s *WatchliveService) Update(ctx context.Context, stream watchlive.Stream) (watchlive.Stream, error) {
	existing, err := s.GetByID(ctx, stream.ID)
	if err != nil {
		return watchlive.Stream{}, err
	}

	stream.CreatedAt = existing.CreatedAt
	stream.UpdatedAt = s.now()

	videoID, err := video.ExtractID(stream.VideoURL)
	if err != nil {
		return watchlive.Stream{}, fmt.Errorf("%w: videoUrl %q is not a recognizable video link", ErrInvalidInput, stream.VideoURL)
	}
	stream.VideoID = videoID

	if err := stream.Validate(); err != nil {
		return watchlive.Stream{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.streamRepo.Update(ctx, stream); err != nil {
		return watchlive.Stream{}, fmt.Errorf("update stream: %w", err)
	}

	return stream, nil
}

func (s *WatchliveService) Delete(ctx context.Context, streamID string) error {
	streamID = strings.TrimSpace(streamID)
	if streamID == "" {
		return fmt.Errorf("%w: stream id is required", ErrInvalidInput)
	}

	deleted, err := s.streamRepo.Delete(ctx, streamID)
	if err != nil {
		return fmt.Errorf("delete stream: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: stream=%s", ErrNotFound, streamID)
	}

	return nil
}
