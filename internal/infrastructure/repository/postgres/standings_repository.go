package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/standings"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

func (r *StandingsRepository) List(ctx context.Context) ([]standings.Row, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(qb.IsNull("deleted_at")).
		OrderBy("points DESC", "goal_difference DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	out := make([]standings.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingsFromRow(row))
	}
	return out, nil
}

func (r *StandingsRepository) GetByID(ctx context.Context, id string) (standings.Row, bool, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return standings.Row{}, false, fmt.Errorf("build get standings row by id query: %w", err)
	}

	var row standingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return standings.Row{}, false, nil
		}
		return standings.Row{}, false, fmt.Errorf("get standings row by id: %w", err)
	}
	return standingsFromRow(row), true, nil
}

func (r *StandingsRepository) GetByTeamID(ctx context.Context, teamID string) (standings.Row, bool, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return standings.Row{}, false, fmt.Errorf("build get standings row by team query: %w", err)
	}

	var row standingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return standings.Row{}, false, nil
		}
		return standings.Row{}, false, fmt.Errorf("get standings row by team: %w", err)
	}
	return standingsFromRow(row), true, nil
}

func (r *StandingsRepository) Create(ctx context.Context, row standings.Row) error {
	insertModel := standingsInsertModel{
		PublicID:       row.ID,
		TeamID:         row.TeamID,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		Form:           row.Form,
	}
	query, args, err := qb.InsertModel("standings", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create standings row query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create standings row: %w", err)
	}
	return nil
}

func (r *StandingsRepository) Update(ctx context.Context, row standings.Row) error {
	query, args, err := qb.Update("standings").
		Set("team_public_id", row.TeamID).
		Set("played", row.Played).
		Set("won", row.Won).
		Set("drawn", row.Drawn).
		Set("lost", row.Lost).
		Set("goals_for", row.GoalsFor).
		Set("goals_against", row.GoalsAgainst).
		Set("goal_difference", row.GoalDifference).
		Set("points", row.Points).
		Set("form", row.Form).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", row.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update standings row query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update standings row: %w", err)
	}
	return nil
}

func (r *StandingsRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("standings").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete standings row query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete standings row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete standings row: %w", err)
	}
	return affected > 0, nil
}

func standingsFromRow(row standingsTableModel) standings.Row {
	return standings.Row{
		ID:             row.PublicID,
		TeamID:         row.TeamID,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		Form:           row.Form,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
