package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/player"
	"github.com/nsflhq/nsfl-api/internal/domain/team"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
)

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      id.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, idGen id.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// List returns all players, optionally narrowed to one team.
func (s *PlayerService) List(ctx context.Context, teamID string) ([]player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		players, err := s.playerRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return players, nil
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetByID(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *PlayerService) Create(ctx context.Context, p player.Player) (player.Player, error) {
	newID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now()
	p.ID = newID
	p.Position = strings.ToLower(strings.TrimSpace(p.Position))
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.validatePlayer(ctx, p); err != nil {
		return player.Player{}, err
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) Update(ctx context.Context, p player.Player) (player.Player, error) {
	existing, err := s.GetByID(ctx, p.ID)
	if err != nil {
		return player.Player{}, err
	}

	p.Position = strings.ToLower(strings.TrimSpace(p.Position))
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now()

	if err := s.validatePlayer(ctx, p); err != nil {
		return player.Player{}, err
	}

	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	deleted, err := s.playerRepo.Delete(ctx, playerID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return nil
}

func (s *PlayerService) validatePlayer(ctx context.Context, p player.Player) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if p.TeamID != "" {
		_, exists, err := s.teamRepo.GetByID(ctx, p.TeamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team %s does not exist", ErrInvalidInput, p.TeamID)
		}
	}

	return nil
}
