package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nsflhq/nsfl-api/internal/domain/standings"
	"github.com/nsflhq/nsfl-api/internal/domain/team"
)

func newStandingsServiceForTest(rows []standings.Row, teams ...string) (*StandingsService, *stubStandingsRepository) {
	standingsRepo := &stubStandingsRepository{byID: map[string]standings.Row{}}
	for _, r := range rows {
		standingsRepo.byID[r.ID] = r
	}

	teamRepo := &stubTeamRepository{byID: map[string]team.Team{}}
	for _, id := range teams {
		teamRepo.byID[id] = team.Team{ID: id, Name: id}
	}

	service := NewStandingsService(standingsRepo, teamRepo, &stubIDGenerator{}, nil)
	service.now = fixedNow
	return service, standingsRepo
}

func TestStandingsService_Table_RanksAndDecorates(t *testing.T) {
	t.Parallel()

	service, _ := newStandingsServiceForTest([]standings.Row{
		{ID: "r1", TeamID: "mid", Points: 8, Form: `"W,L"`},
		{ID: "r2", TeamID: "top", Points: 15, Form: "w,w,d"},
		{ID: "r3", TeamID: "low", Points: 2},
	}, "mid", "top", "low")

	table, err := service.Table(context.Background())
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table))
	}

	if table[0].Row.TeamID != "top" || table[0].Position != 1 || table[0].Tier != standings.TierChampion {
		t.Fatalf("unexpected first row: %+v", table[0])
	}
	if len(table[0].Form) != 3 || table[0].Form[0] != "W" || table[0].Form[2] != "D" {
		t.Fatalf("unexpected form: %+v", table[0].Form)
	}
	if table[1].Row.TeamID != "mid" || table[1].Tier != standings.TierQualifying {
		t.Fatalf("unexpected second row: %+v", table[1])
	}
}

func TestStandingsService_Create_DerivesPointsAndGoalDifference(t *testing.T) {
	t.Parallel()

	service, repo := newStandingsServiceForTest(nil, "t1")

	created, err := service.Create(context.Background(), standings.Row{
		TeamID:       "t1",
		Played:       7,
		Won:          4,
		Drawn:        2,
		Lost:         1,
		GoalsFor:     12,
		GoalsAgainst: 5,
		// client-supplied derived values are overwritten
		Points:         99,
		GoalDifference: -42,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if created.Points != 14 || created.GoalDifference != 7 {
		t.Fatalf("unexpected derived values: points=%d gd=%d", created.Points, created.GoalDifference)
	}
	stored := repo.byID[created.ID]
	if stored.Points != 14 {
		t.Fatalf("stored points = %d, want 14", stored.Points)
	}
}

func TestStandingsService_Create_RejectsDuplicateTeam(t *testing.T) {
	t.Parallel()

	service, _ := newStandingsServiceForTest([]standings.Row{
		{ID: "r1", TeamID: "t1"},
	}, "t1")

	_, err := service.Create(context.Background(), standings.Row{TeamID: "t1", Played: 1, Won: 1})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestStandingsService_Create_RejectsUnknownTeam(t *testing.T) {
	t.Parallel()

	service, _ := newStandingsServiceForTest(nil)

	_, err := service.Create(context.Background(), standings.Row{TeamID: "ghost"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type stubStandingsRepository struct {
	byID map[string]standings.Row
}

func (s *stubStandingsRepository) List(_ context.Context) ([]standings.Row, error) {
	out := make([]standings.Row, 0, len(s.byID))
	for _, r := range s.byID {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubStandingsRepository) GetByID(_ context.Context, id string) (standings.Row, bool, error) {
	r, ok := s.byID[id]
	return r, ok, nil
}

func (s *stubStandingsRepository) GetByTeamID(_ context.Context, teamID string) (standings.Row, bool, error) {
	for _, r := range s.byID {
		if r.TeamID == teamID {
			return r, true, nil
		}
	}
	return standings.Row{}, false, nil
}

func (s *stubStandingsRepository) Create(_ context.Context, r standings.Row) error {
	s.byID[r.ID] = r
	return nil
}

func (s *stubStandingsRepository) Update(_ context.Context, r standings.Row) error {
	s.byID[r.ID] = r
	return nil
}

func (s *stubStandingsRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}
