package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/sponsor"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
)

type SponsorService struct {
	sponsorRepo sponsor.Repository
	idGen       id.Generator
	now         func() time.Time
}

func NewSponsorService(sponsorRepo sponsor.Repository, idGen id.Generator) *SponsorService {
	return &SponsorService{
		sponsorRepo: sponsorRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *SponsorService) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	sponsors, err := s.sponsorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	return sponsors, nil
}

func (s *SponsorService) GetByID(ctx context.Context, sponsorID string) (sponsor.Sponsor, error) {
	sponsorID = strings.TrimSpace(sponsorID)
	if sponsorID == "" {
		return sponsor.Sponsor{}, fmt.Errorf("%w: sponsor id is required", ErrInvalidInput)
	}

	item, exists, err := s.sponsorRepo.GetByID(ctx, sponsorID)
	if err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("get sponsor: %w", err)
	}
	if !exists {
		return sponsor.Sponsor{}, fmt.Errorf("%w: sponsor=%s", ErrNotFound, sponsorID)
	}

	return item, nil
}

func (s *SponsorService) Create(ctx context.Context, item sponsor.Sponsor) (sponsor.Sponsor, error) {
	newID, err := s.idGen.NewID()
	if err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("generate sponsor id: %w", err)
	}

	now := s.now()
	item.ID = newID
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := item.Validate(); err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.sponsorRepo.Create(ctx, item); err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("create sponsor: %w", err)
	}

	return item, nil
}

func (s *SponsorService) Update(ctx context.Context, item sponsor.Sponsor) (sponsor.Sponsor, error) {
	existing, err := s.GetByID(ctx, item.ID)
	if err != nil {
		return sponsor.Sponsor{}, err
	}

	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = s.now()

	if err := item.Validate(); err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.sponsorRepo.Update(ctx, item); err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("update sponsor: %w", err)
	}

	return item, nil
}

func (s *SponsorService) Delete(ctx context.Context, sponsorID string) error {
	sponsorID = strings.TrimSpace(sponsorID)
	if sponsorID == "" {
		return fmt.Errorf("%w: sponsor id is required", ErrInvalidInput)
	}

	deleted, err := s.sponsorRepo.Delete(ctx, sponsorID)
	if err != nil {
		return fmt.Errorf("delete sponsor: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: sponsor=%s", ErrNotFound, sponsorID)
	}

	return nil
}
