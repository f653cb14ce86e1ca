package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/team"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
)

type TeamService struct {
	teamRepo team.Repository
	idGen    id.Generator
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository, idGen id.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return t, nil
}

func (s *TeamService) Create(ctx context.Context, t team.Team) (team.Team, error) {
	newID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now()
	t.ID = newID
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return t, nil
}

func (s *TeamService) Update(ctx context.Context, t team.Team) (team.Team, error) {
	existing, err := s.GetByID(ctx, t.ID)
	if err != nil {
		return team.Team{}, err
	}

	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = s.now()

	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Update(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return t, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	deleted, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}
