package memory

import (
	"context"
	"sync"

	"github.com/nsflhq/nsfl-api/internal/domain/watchlive"
)

type WatchliveRepository struct {
	mu      sync.RWMutex
	streams []watchlive.Stream
}

func NewWatchliveRepository(streams []watchlive.Stream) *WatchliveRepository {
	return &WatchliveRepository{streams: append([]watchlive.Stream(nil), streams...)}
}

func (r *WatchliveRepository) List(_ context.Context) ([]watchlive.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]watchlive.Stream, 0, len(r.streams))
	out = append(out, r.streams...)
	return out, nil
}

func (r *WatchliveRepository) GetByID(_ context.Context, id string) (watchlive.Stream, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.streams {
		if item.ID == id {
			return item, true, nil
		}
	}
	return watchlive.Stream{}, false, nil
}

func (r *WatchliveRepository) Create(_ context.Context, s watchlive.Stream) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.streams = append(r.streams, s)
	return nil
}

func (r *WatchliveRepository) Update(_ context.Context, s watchlive.Stream) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.streams {
		if r.streams[idx].ID == s.ID {
			r.streams[idx] = s
			return nil
		}
	}
	return nil
}

func (r *WatchliveRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.streams {
		if r.streams[idx].ID == id {
			r.streams = append(r.streams[:idx], r.streams[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}
