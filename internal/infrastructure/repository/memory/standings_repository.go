package memory

import (
	"context"
	"sync"

	"github.com/nsflhq/nsfl-api/internal/domain/standings"
)

type StandingsRepository struct {
	mu   sync.RWMutex
	rows []standings.Row
}

func NewStandingsRepository(rows []standings.Row) *StandingsRepository {
	return &StandingsRepository{rows: append([]standings.Row(nil), rows...)}
}

func (r *StandingsRepository) List(_ context.Context) ([]standings.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standings.Row, 0, len(r.rows))
	out = append(out, r.rows...)
	return out, nil
}

func (r *StandingsRepository) GetByID(_ context.Context, id string) (standings.Row, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.rows {
		if item.ID == id {
			return item, true, nil
		}
	}
	return standings.Row{}, false, nil
}

func (r *StandingsRepository) GetByTeamID(_ context.Context, teamID string) (standings.Row, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.rows {
		if item.TeamID == teamID {
			return item, true, nil
		}
	}
	return standings.Row{}, false, nil
}

func (r *StandingsRepository) Create(_ context.Context, row standings.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, row)
	return nil
}

func (r *StandingsRepository) Update(_ context.Context, row standings.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.rows {
		if r.rows[idx].ID == row.ID {
			r.rows[idx] = row
			return nil
		}
	}
	return nil
}

func (r *StandingsRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.rows {
		if r.rows[idx].ID == id {
			r.rows = append(r.rows[:idx], r.rows[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}
