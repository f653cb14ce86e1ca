package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/match"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.IsNull("deleted_at")).
		OrderBy("match_date", "kickoff_time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	insertModel := matchInsertModel{
		PublicID:          m.ID,
		MatchDate:         m.MatchDate,
		KickoffTime:       m.Time,
		Venue:             m.Venue,
		Week:              m.Week,
		Status:            match.NormalizeStatus(m.Status),
		HomeTeamID:        m.HomeTeamID,
		AwayTeamID:        m.AwayTeamID,
		ScoreHome:         intPtrToNullable(m.ScoreHome),
		ScoreAway:         intPtrToNullable(m.ScoreAway),
		Referee:           m.Referee,
		AssistantReferee1: m.AssistantReferee1,
		AssistantReferee2: m.AssistantReferee2,
		FourthOfficial:    m.FourthOfficial,
		HomePlayerIDs:     pqStringArray(m.HomePlayerIDs),
		AwayPlayerIDs:     pqStringArray(m.AwayPlayerIDs),
	}
	query, args, err := qb.InsertModel("matches", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.Update("matches").
		Set("match_date", m.MatchDate).
		Set("kickoff_time", m.Time).
		Set("venue", m.Venue).
		Set("week", m.Week).
		Set("status", match.NormalizeStatus(m.Status)).
		Set("home_team_public_id", m.HomeTeamID).
		Set("away_team_public_id", m.AwayTeamID).
		Set("score_home", intPtrToNullable(m.ScoreHome)).
		Set("score_away", intPtrToNullable(m.ScoreAway)).
		Set("referee", m.Referee).
		Set("assistant_referee_1", m.AssistantReferee1).
		Set("assistant_referee_2", m.AssistantReferee2).
		Set("fourth_official", m.FourthOfficial).
		Set("home_player_ids", pqStringArray(m.HomePlayerIDs)).
		Set("away_player_ids", pqStringArray(m.AwayPlayerIDs)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", m.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete match: %w", err)
	}
	return affected > 0, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:                row.PublicID,
		MatchDate:         row.MatchDate,
		Time:              row.KickoffTime,
		Venue:             row.Venue,
		Week:              row.Week,
		Status:            row.Status,
		HomeTeamID:        row.HomeTeamID,
		AwayTeamID:        row.AwayTeamID,
		ScoreHome:         nullInt64ToIntPtr(row.ScoreHome),
		ScoreAway:         nullInt64ToIntPtr(row.ScoreAway),
		Referee:           row.Referee,
		AssistantReferee1: row.AssistantReferee1,
		AssistantReferee2: row.AssistantReferee2,
		FourthOfficial:    row.FourthOfficial,
		HomePlayerIDs:     []string(row.HomePlayerIDs),
		AwayPlayerIDs:     []string(row.AwayPlayerIDs),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
