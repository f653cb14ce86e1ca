package memory

import (
	"context"
	"sync"

	"github.com/nsflhq/nsfl-api/internal/domain/highlight"
)

type HighlightRepository struct {
	mu         sync.RWMutex
	highlights []highlight.Highlight
}

func NewHighlightRepository(highlights []highlight.Highlight) *HighlightRepository {
	return &HighlightRepository{highlights: append([]highlight.Highlight(nil), highlights...)}
}

func (r *HighlightRepository) List(_ context.Context) ([]highlight.Highlight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]highlight.Highlight, 0, len(r.highlights))
	out = append(out, r.highlights...)
	return out, nil
}

func (r *HighlightRepository) GetByID(_ context.Context, id string) (highlight.Highlight, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.highlights {
		if item.ID == id {
			return item, true, nil
		}
	}
	return highlight.Highlight{}, false, nil
}

func (r *HighlightRepository) Create(_ context.Context, h highlight.Highlight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.highlights = append(r.highlights, h)
	return nil
}

func (r *HighlightRepository) Update(_ context.Context, h highlight.Highlight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.highlights {
		if r.highlights[idx].ID == h.ID {
			r.highlights[idx] = h
			return nil
		}
	}
	return nil
}

func (r *HighlightRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.highlights {
		if r.highlights[idx].ID == id {
			r.highlights = append(r.highlights[:idx], r.highlights[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}
