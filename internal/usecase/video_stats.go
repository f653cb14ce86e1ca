package usecase

import (
	"context"
	"time"
)

// VideoStats is the public metadata for one hosted video.
type VideoStats struct {
	Views         int64
	Duration      string
	PublishedDate *time.Time
}

// VideoStatsFetcher resolves stats for a video ID. Implementations are
// expected to be safe for concurrent use.
type VideoStatsFetcher interface {
	FetchStats(ctx context.Context, videoID string) (VideoStats, error)
}
