package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/player"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	insertModel := playerInsertModel{
		PublicID:     p.ID,
		Name:         p.Name,
		Position:     p.Position,
		ImagePath:    p.ImagePath,
		Appearances:  p.Appearances,
		CleanSheets:  p.CleanSheets,
		Goals:        p.Goals,
		YellowCards:  p.YellowCards,
		RedCards:     p.RedCards,
		Nationality:  p.Nationality,
		DateOfBirth:  nullableTime(p.DateOfBirth),
		HeightFeet:   p.HeightFeet,
		HeightInches: p.HeightInches,
		WeightLbs:    p.WeightLbs,
		TeamID:       p.TeamID,
	}
	query, args, err := qb.InsertModel("players", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("position", p.Position).
		Set("image_path", p.ImagePath).
		Set("appearances", p.Appearances).
		Set("clean_sheets", p.CleanSheets).
		Set("goals", p.Goals).
		Set("yellow_cards", p.YellowCards).
		Set("red_cards", p.RedCards).
		Set("nationality", p.Nationality).
		Set("date_of_birth", nullableTime(p.DateOfBirth)).
		Set("height_feet", p.HeightFeet).
		Set("height_inches", p.HeightInches).
		Set("weight_lbs", p.WeightLbs).
		Set("team_public_id", p.TeamID).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", p.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete player: %w", err)
	}
	return affected > 0, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.PublicID,
		Name:         row.Name,
		Position:     row.Position,
		ImagePath:    row.ImagePath,
		Appearances:  row.Appearances,
		CleanSheets:  row.CleanSheets,
		Goals:        row.Goals,
		YellowCards:  row.YellowCards,
		RedCards:     row.RedCards,
		Nationality:  row.Nationality,
		DateOfBirth:  timePtrOrZero(row.DateOfBirth),
		HeightFeet:   row.HeightFeet,
		HeightInches: row.HeightInches,
		WeightLbs:    row.WeightLbs,
		TeamID:       row.TeamID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
