package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/match"
	"github.com/nsflhq/nsfl-api/internal/infrastructure/repository/memory"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

const onConflictSkip = "ON CONFLICT (public_id) DO NOTHING"

// BootstrapSeed loads the sample league into an empty database so a fresh
// deployment serves content immediately. A database with any team rows is
// left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		insertModel := teamInsertModel{
			PublicID:  t.ID,
			Name:      t.Name,
			LogoPath:  t.LogoPath,
			Details:   t.Details,
			Manager:   t.Manager,
			Founded:   nullableTime(t.Founded),
			Stadium:   t.Stadium,
			PlayerIDs: pqStringArray(t.PlayerIDs),
		}
		if err := seedExec(ctx, tx, "teams", insertModel, t.ID); err != nil {
			return err
		}
	}

	for _, p := range memory.SeedPlayers() {
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
		if err := seedExec(ctx, tx, "players", insertModel, p.ID); err != nil {
			return err
		}
	}

	for _, m := range memory.SeedMatches() {
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
		if err := seedExec(ctx, tx, "matches", insertModel, m.ID); err != nil {
			return err
		}
	}

	for _, row := range memory.SeedStandings() {
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
		if err := seedExec(ctx, tx, "standings", insertModel, row.ID); err != nil {
			return err
		}
	}

	for _, p := range memory.SeedBlogs() {
		insertModel := blogInsertModel{
			PublicID:  p.ID,
			Title:     p.Title,
			Preview:   p.Preview,
			Content:   p.Content,
			ReadTime:  p.ReadTime,
			Category:  p.Category,
			Date:      nullableTime(p.Date),
			ImagePath: p.ImagePath,
		}
		if err := seedExec(ctx, tx, "blogs", insertModel, p.ID); err != nil {
			return err
		}
	}

	for _, h := range memory.SeedHighlights() {
		insertModel := highlightInsertModel{
			PublicID:      h.ID,
			Title:         h.Title,
			Description:   h.Description,
			ImagePath:     h.ImagePath,
			VideoURL:      h.VideoURL,
			VideoID:       h.VideoID,
			Views:         h.Views,
			Duration:      h.Duration,
			PublishedDate: h.PublishedDate,
			LastUpdated:   nullableTime(h.LastUpdated),
		}
		if err := seedExec(ctx, tx, "highlights", insertModel, h.ID); err != nil {
			return err
		}
	}

	for _, s := range memory.SeedSponsors() {
		insertModel := sponsorInsertModel{
			PublicID: s.ID,
			Name:     s.Name,
			Website:  s.Website,
			LogoPath: s.LogoPath,
		}
		if err := seedExec(ctx, tx, "sponsors", insertModel, s.ID); err != nil {
			return err
		}
	}

	for _, s := range memory.SeedWatchlive() {
		insertModel := watchliveInsertModel{
			PublicID: s.ID,
			VideoURL: s.VideoURL,
			VideoID:  s.VideoID,
			IsActive: s.IsActive,
		}
		if err := seedExec(ctx, tx, "watchlive_streams", insertModel, s.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func seedExec(ctx context.Context, tx *sqlx.Tx, table string, insertModel any, publicID string) error {
	query, args, err := qb.InsertModel(table, insertModel, onConflictSkip)
	if err != nil {
		return fmt.Errorf("build seed %s %s query: %w", table, publicID, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed %s %s: %w", table, publicID, err)
	}
	return nil
}
