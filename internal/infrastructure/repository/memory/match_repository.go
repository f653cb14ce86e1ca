package memory

import (
	"context"
	"sync"

	"github.com/nsflhq/nsfl-api/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{matches: append([]match.Match(nil), matches...)}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	out = append(out, r.matches...)
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.matches {
		if item.ID == id {
			return item, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches = append(r.matches, m)
	return nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.matches {
		if r.matches[idx].ID == m.ID {
			r.matches[idx] = m
			return nil
		}
	}
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.matches {
		if r.matches[idx].ID == id {
			r.matches = append(r.matches[:idx], r.matches[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}
