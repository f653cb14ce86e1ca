package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/match"
	"github.com/nsflhq/nsfl-api/internal/domain/team"
	"github.com/nsflhq/nsfl-api/internal/platform/cache"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
	"github.com/nsflhq/nsfl-api/internal/platform/logging"
)

const (
	FixturesFilterAll      = "all"
	FixturesFilterToday    = "today"
	FixturesFilterUpcoming = "upcoming"
)

const matchCachePrefix = "matches:"

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	idGen     id.Generator
	cache     *cache.Store
	logger    *logging.Logger
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, idGen id.Generator, store *cache.Store, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		idGen:     idGen,
		cache:     store,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	return s.cachedMatches(ctx)
}

func (s *MatchService) GetByID(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return m, nil
}

// Fixtures returns the non-completed schedule grouped by week ascending.
// The filter narrows it to today's or strictly future matches.
func (s *MatchService) Fixtures(ctx context.Context, filter string) ([]match.WeekGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Fixtures")
	defer span.End()

	schedule, err := s.schedule(ctx)
	if err != nil {
		return nil, err
	}

	var entries []match.Entry
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "", FixturesFilterAll:
		entries = schedule.NonCompleted()
	case FixturesFilterToday:
		entries = schedule.TodayOnly(s.now())
	case FixturesFilterUpcoming:
		entries = schedule.StrictlyFuture(s.now())
	default:
		return nil, fmt.Errorf("%w: unknown fixtures filter %q", ErrInvalidInput, filter)
	}

	return match.GroupByWeek(entries, false), nil
}

// Results returns completed matches grouped by week descending.
func (s *MatchService) Results(ctx context.Context) ([]match.WeekGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Results")
	defer span.End()

	schedule, err := s.schedule(ctx)
	if err != nil {
		return nil, err
	}

	return match.GroupByWeek(schedule.Completed(), true), nil
}

// Spotlight is the homepage pair: the match to show now plus the one after
// it, with a countdown to the spotlighted kickoff.
type Spotlight struct {
	Current   *match.Entry
	Next      *match.Entry
	Countdown match.Countdown
}

func (s *MatchService) Spotlight(ctx context.Context) (Spotlight, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Spotlight")
	defer span.End()

	schedule, err := s.schedule(ctx)
	if err != nil {
		return Spotlight{}, err
	}

	now := s.now()
	current, next := schedule.CurrentAndNext(now)

	out := Spotlight{Current: current, Next: next}
	if current != nil {
		out.Countdown = match.CountdownTo(current.Kickoff, now)
	} else if next != nil {
		out.Countdown = match.CountdownTo(next.Kickoff, now)
	}

	return out, nil
}

func (s *MatchService) Create(ctx context.Context, m match.Match) (match.Match, error) {
	newID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now()
	m.ID = newID
	m.Status = match.NormalizeStatus(m.Status)
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := s.validateMatch(ctx, m); err != nil {
		return match.Match{}, err
	}

	if err := s.matchRepo.Create(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	s.invalidate(ctx)

	return m, nil
}

func (s *MatchService) Update(ctx context.Context, m match.Match) (match.Match, error) {
	existing, err := s.GetByID(ctx, m.ID)
	if err != nil {
		return match.Match{}, err
	}

	m.Status = match.NormalizeStatus(m.Status)
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = s.now()

	if err := s.validateMatch(ctx, m); err != nil {
		return match.Match{}, err
	}

	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	s.invalidate(ctx)

	return m, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	deleted, err := s.matchRepo.Delete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	s.invalidate(ctx)

	return nil
}

// validateMatch enforces the write-time invariants: a well-formed kickoff
// clock, valid status, existing and distinct teams, and scores only on
// started matches.
func (s *MatchService) validateMatch(ctx context.Context, m match.Match) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if _, _, err := match.ParseClock(m.Time); err != nil {
		return fmt.Errorf("%w: time %q is not a valid kickoff clock", ErrInvalidInput, m.Time)
	}

	for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team %s does not exist", ErrInvalidInput, teamID)
		}
	}

	return nil
}

func (s *MatchService) schedule(ctx context.Context) (match.Schedule, error) {
	matches, err := s.cachedMatches(ctx)
	if err != nil {
		return match.Schedule{}, err
	}

	schedule, unresolved := match.BuildSchedule(matches)
	for _, m := range unresolved {
		s.logger.WarnContext(ctx, "match time could not be resolved, excluded from schedule",
			"match_id", m.ID,
			"time", m.Time,
		)
	}

	return schedule, nil
}

func (s *MatchService) cachedMatches(ctx context.Context) ([]match.Match, error) {
	load := func(ctx context.Context) (any, error) {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return matches, nil
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]match.Match), nil
	}

	value, err := s.cache.GetOrLoad(ctx, matchCachePrefix+"list", load)
	if err != nil {
		return nil, err
	}

	return value.([]match.Match), nil
}

func (s *MatchService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.DeletePrefix(ctx, matchCachePrefix)
	}
}
