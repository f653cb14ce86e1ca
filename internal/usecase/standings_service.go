package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/standings"
	"github.com/nsflhq/nsfl-api/internal/domain/team"
	"github.com/nsflhq/nsfl-api/internal/platform/cache"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
)

const standingsCachePrefix = "tables:"

// TableRow is one presentation-ready league-table line.
type TableRow struct {
	Row      standings.Row
	Position int
	Tier     string
	Form     []string
}

type StandingsService struct {
	standingsRepo standings.Repository
	teamRepo      team.Repository
	idGen         id.Generator
	cache         *cache.Store
	now           func() time.Time
}

func NewStandingsService(standingsRepo standings.Repository, teamRepo team.Repository, idGen id.Generator, store *cache.Store) *StandingsService {
	return &StandingsService{
		standingsRepo: standingsRepo,
		teamRepo:      teamRepo,
		idGen:         idGen,
		cache:         store,
		now:           time.Now,
	}
}

// Table returns the ranked league table. Points and goal difference are
// already derived on write; ranking and tiers are computed per read.
func (s *StandingsService) Table(ctx context.Context) ([]TableRow, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.Table")
	defer span.End()

	load := func(ctx context.Context) (any, error) {
		rows, err := s.standingsRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list standings: %w", err)
		}
		return buildTable(rows), nil
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]TableRow), nil
	}

	value, err := s.cache.GetOrLoad(ctx, standingsCachePrefix+"list", load)
	if err != nil {
		return nil, err
	}

	return value.([]TableRow), nil
}

func buildTable(rows []standings.Row) []TableRow {
	ranked := standings.Rank(rows)
	out := make([]TableRow, len(ranked))
	for i, r := range ranked {
		out[i] = TableRow{
			Row:      r.Row,
			Position: r.Position,
			Tier:     standings.Tier(r.Position),
			Form:     standings.ParseForm(r.Row.Form),
		}
	}
	return out
}

func (s *StandingsService) GetByID(ctx context.Context, rowID string) (standings.Row, error) {
	rowID = strings.TrimSpace(rowID)
	if rowID == "" {
		return standings.Row{}, fmt.Errorf("%w: standings row id is required", ErrInvalidInput)
	}

	row, exists, err := s.standingsRepo.GetByID(ctx, rowID)
	if err != nil {
		return standings.Row{}, fmt.Errorf("get standings row: %w", err)
	}
	if !exists {
		return standings.Row{}, fmt.Errorf("%w: standings=%s", ErrNotFound, rowID)
	}

	return row, nil
}

func (s *StandingsService) Create(ctx context.Context, row standings.Row) (standings.Row, error) {
	newID, err := s.idGen.NewID()
	if err != nil {
		return standings.Row{}, fmt.Errorf("generate standings id: %w", err)
	}

	now := s.now()
	row.ID = newID
	row.CreatedAt = now
	row.UpdatedAt = now
	row.Derive()

	if err := s.validateRow(ctx, row); err != nil {
		return standings.Row{}, err
	}

	_, exists, err := s.standingsRepo.GetByTeamID(ctx, row.TeamID)
	if err != nil {
		return standings.Row{}, fmt.Errorf("get standings by team: %w", err)
	}
	if exists {
		return standings.Row{}, fmt.Errorf("%w: team %s already has a table row", ErrConflict, row.TeamID)
	}

	if err := s.standingsRepo.Create(ctx, row); err != nil {
		return standings.Row{}, fmt.Errorf("create standings row: %w", err)
	}
	s.invalidate(ctx)

	return row, nil
}

func (s *StandingsService) Update(ctx context.Context, row standings.Row) (standings.Row, error) {
	existing, err := s.GetByID(ctx, row.ID)
	if err != nil {
		return standings.Row{}, err
	}

	row.CreatedAt = existing.CreatedAt
	row.UpdatedAt = s.now()
	row.Derive()

	if err := s.validateRow(ctx, row); err != nil {
		return standings.Row{}, err
	}

	if row.TeamID != existing.TeamID {
		_, taken, err := s.standingsRepo.GetByTeamID(ctx, row.TeamID)
		if err != nil {
			return standings.Row{}, fmt.Errorf("get standings by team: %w", err)
		}
		if taken {
			return standings.Row{}, fmt.Errorf("%w: team %s already has a table row", ErrConflict, row.TeamID)
		}
	}

	if err := s.standingsRepo.Update(ctx, row); err != nil {
		return standings.Row{}, fmt.Errorf("update standings row: %w", err)
	}
	s.invalidate(ctx)

	return row, nil
}

func (s *StandingsService) Delete(ctx context.Context, rowID string) error {
	rowID = strings.TrimSpace(rowID)
	if rowID == "" {
		return fmt.Errorf("%w: standings row id is required", ErrInvalidInput)
	}

	deleted, err := s.standingsRepo.Delete(ctx, rowID)
	if err != nil {
		return fmt.Errorf("delete standings row: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: standings=%s", ErrNotFound, rowID)
	}
	s.invalidate(ctx)

	return nil
}

func (s *StandingsService) validateRow(ctx context.Context, row standings.Row) error {
	if err := row.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, row.TeamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team %s does not exist", ErrInvalidInput, row.TeamID)
	}

	return nil
}

func (s *StandingsService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.DeletePrefix(ctx, standingsCachePrefix)
	}
}
