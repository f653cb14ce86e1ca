package memory

import (
	"context"
	"sync"

	"github.com/nsflhq/nsfl-api/internal/domain/sponsor"
)

type SponsorRepository struct {
	mu       sync.RWMutex
	sponsors []sponsor.Sponsor
}

func NewSponsorRepository(sponsors []sponsor.Sponsor) *SponsorRepository {
	return &SponsorRepository{sponsors: append([]sponsor.Sponsor(nil), sponsors...)}
}

func (r *SponsorRepository) List(_ context.Context) ([]sponsor.Sponsor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sponsor.Sponsor, 0, len(r.sponsors))
	out = append(out, r.sponsors...)
	return out, nil
}

func (r *SponsorRepository) GetByID(_ context.Context, id string) (sponsor.Sponsor, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.sponsors {
		if item.ID == id {
			return item, true, nil
		}
	}
	return sponsor.Sponsor{}, false, nil
}

func (r *SponsorRepository) Create(_ context.Context, s sponsor.Sponsor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sponsors = append(r.sponsors, s)
	return nil
}

func (r *SponsorRepository) Update(_ context.Context, s sponsor.Sponsor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.sponsors {
		if r.sponsors[idx].ID == s.ID {
			r.sponsors[idx] = s
			return nil
		}
	}
	return nil
}

func (r *SponsorRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.sponsors {
		if r.sponsors[idx].ID == id {
			r.sponsors = append(r.sponsors[:idx], r.sponsors[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}
