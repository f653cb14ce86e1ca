package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/match"
	"github.com/nsflhq/nsfl-api/internal/domain/team"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
}

func newMatchServiceForTest(matches []match.Match, teams ...string) (*MatchService, *stubMatchRepository) {
	matchRepo := &stubMatchRepository{byID: map[string]match.Match{}}
	for _, m := range matches {
		matchRepo.byID[m.ID] = m
	}

	teamRepo := &stubTeamRepository{byID: map[string]team.Team{}}
	for _, id := range teams {
		teamRepo.byID[id] = team.Team{ID: id, Name: id}
	}

	service := NewMatchService(matchRepo, teamRepo, &stubIDGenerator{}, nil, nil)
	service.now = fixedNow
	return service, matchRepo
}

func matchOn(id string, day int, clock, status string, week int) match.Match {
	return match.Match{
		ID:         id,
		MatchDate:  time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC),
		Time:       clock,
		Status:     status,
		Week:       week,
		HomeTeamID: "home",
		AwayTeamID: "away",
	}
}

func TestMatchService_Fixtures_Filters(t *testing.T) {
	t.Parallel()

	service, _ := newMatchServiceForTest([]match.Match{
		matchOn("done", 7, "3:00 PM", match.StatusCompleted, 1),
		matchOn("today", 14, "5:00 PM", match.StatusUpcoming, 2),
		matchOn("future", 21, "3:00 PM", match.StatusUpcoming, 3),
	})

	all, err := service.Fixtures(context.Background(), "all")
	if err != nil {
		t.Fatalf("Fixtures(all) error: %v", err)
	}
	if len(all) != 2 || all[0].Week != 2 || all[1].Week != 3 {
		t.Fatalf("unexpected all groups: %+v", all)
	}

	today, err := service.Fixtures(context.Background(), "today")
	if err != nil {
		t.Fatalf("Fixtures(today) error: %v", err)
	}
	if len(today) != 1 || len(today[0].Entries) != 1 || today[0].Entries[0].Match.ID != "today" {
		t.Fatalf("unexpected today groups: %+v", today)
	}

	upcoming, err := service.Fixtures(context.Background(), "upcoming")
	if err != nil {
		t.Fatalf("Fixtures(upcoming) error: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Entries[0].Match.ID != "future" {
		t.Fatalf("unexpected upcoming groups: %+v", upcoming)
	}

	if _, err := service.Fixtures(context.Background(), "bogus"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bogus filter, got %v", err)
	}
}

func TestMatchService_Fixtures_SkipsUnresolvableTimes(t *testing.T) {
	t.Parallel()

	service, _ := newMatchServiceForTest([]match.Match{
		matchOn("good", 21, "3:00 PM", match.StatusUpcoming, 1),
		matchOn("bad", 21, "sometime", match.StatusUpcoming, 1),
	})

	groups, err := service.Fixtures(context.Background(), "all")
	if err != nil {
		t.Fatalf("Fixtures error: %v", err)
	}
	if len(groups) != 1 || len(groups[0].Entries) != 1 || groups[0].Entries[0].Match.ID != "good" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestMatchService_Results_GroupsDescending(t *testing.T) {
	t.Parallel()

	service, _ := newMatchServiceForTest([]match.Match{
		matchOn("w1", 1, "3:00 PM", match.StatusCompleted, 1),
		matchOn("w2", 7, "3:00 PM", match.StatusCompleted, 2),
		matchOn("open", 21, "3:00 PM", match.StatusUpcoming, 3),
	})

	groups, err := service.Results(context.Background())
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}
	if len(groups) != 2 || groups[0].Week != 2 || groups[1].Week != 1 {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestMatchService_Spotlight(t *testing.T) {
	t.Parallel()

	service, _ := newMatchServiceForTest([]match.Match{
		matchOn("soon", 14, "5:00 PM", match.StatusUpcoming, 2),
		matchOn("later", 21, "3:00 PM", match.StatusUpcoming, 3),
	})

	spotlight, err := service.Spotlight(context.Background())
	if err != nil {
		t.Fatalf("Spotlight error: %v", err)
	}
	if spotlight.Current == nil || spotlight.Current.Match.ID != "soon" {
		t.Fatalf("unexpected current: %+v", spotlight.Current)
	}
	if spotlight.Next == nil || spotlight.Next.Match.ID != "later" {
		t.Fatalf("unexpected next: %+v", spotlight.Next)
	}
	want := match.Countdown{Hours: 7}
	if spotlight.Countdown != want {
		t.Fatalf("unexpected countdown: %+v", spotlight.Countdown)
	}
}

func TestMatchService_Create_RejectsBadClock(t *testing.T) {
	t.Parallel()

	service, repo := newMatchServiceForTest(nil, "home", "away")

	_, err := service.Create(context.Background(), match.Match{
		MatchDate:  time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC),
		Time:       "around noon",
		Status:     match.StatusUpcoming,
		HomeTeamID: "home",
		AwayTeamID: "away",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("expected nothing persisted")
	}
}

func TestMatchService_Create_RejectsUnknownTeam(t *testing.T) {
	t.Parallel()

	service, _ := newMatchServiceForTest(nil, "home")

	_, err := service.Create(context.Background(), match.Match{
		MatchDate:  time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC),
		Time:       "3:00 PM",
		Status:     match.StatusUpcoming,
		HomeTeamID: "home",
		AwayTeamID: "ghost",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Create_RejectsScoresOnUpcoming(t *testing.T) {
	t.Parallel()

	service, _ := newMatchServiceForTest(nil, "home", "away")

	score := 1
	_, err := service.Create(context.Background(), match.Match{
		MatchDate:  time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC),
		Time:       "3:00 PM",
		Status:     match.StatusUpcoming,
		HomeTeamID: "home",
		AwayTeamID: "away",
		ScoreHome:  &score,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Create_PersistsValidMatch(t *testing.T) {
	t.Parallel()

	service, repo := newMatchServiceForTest(nil, "home", "away")

	created, err := service.Create(context.Background(), match.Match{
		MatchDate:  time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC),
		Time:       "3:00 PM",
		Status:     "",
		HomeTeamID: "home",
		AwayTeamID: "away",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Status != match.StatusUpcoming {
		t.Fatalf("expected defaulted status, got %q", created.Status)
	}
	if _, ok := repo.byID[created.ID]; !ok {
		t.Fatal("expected match persisted")
	}
}

type stubMatchRepository struct {
	byID map[string]match.Match
}

func (s *stubMatchRepository) List(_ context.Context) ([]match.Match, error) {
	out := make([]match.Match, 0, len(s.byID))
	for _, m := range s.byID {
		out = append(out, m)
	}
	return out, nil
}

func (s *stubMatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	m, ok := s.byID[id]
	return m, ok, nil
}

func (s *stubMatchRepository) Create(_ context.Context, m match.Match) error {
	s.byID[m.ID] = m
	return nil
}

func (s *stubMatchRepository) Update(_ context.Context, m match.Match) error {
	s.byID[m.ID] = m
	return nil
}

func (s *stubMatchRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}

type stubTeamRepository struct {
	byID map[string]team.Team
}

func (s *stubTeamRepository) List(_ context.Context) ([]team.Team, error) {
	out := make([]team.Team, 0, len(s.byID))
	for _, t := range s.byID {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubTeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	t, ok := s.byID[id]
	return t, ok, nil
}

func (s *stubTeamRepository) Create(_ context.Context, t team.Team) error {
	s.byID[t.ID] = t
	return nil
}

func (s *stubTeamRepository) Update(_ context.Context, t team.Team) error {
	s.byID[t.ID] = t
	return nil
}

func (s *stubTeamRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}

type stubIDGenerator struct {
	n int
}

func (s *stubIDGenerator) NewID() (string, error) {
	s.n++
	return "generated-" + string(rune('a'+s.n-1)), nil
}
