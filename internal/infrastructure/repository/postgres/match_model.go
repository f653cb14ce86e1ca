package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type matchTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	MatchDate         time.Time      `db:"match_date"`
	KickoffTime       string         `db:"kickoff_time"`
	Venue             string         `db:"venue"`
	Week              int            `db:"week"`
	Status            string         `db:"status"`
	HomeTeamID        string         `db:"home_team_public_id"`
	AwayTeamID        string         `db:"away_team_public_id"`
	ScoreHome         sql.NullInt64  `db:"score_home"`
	ScoreAway         sql.NullInt64  `db:"score_away"`
	Referee           string         `db:"referee"`
	AssistantReferee1 string         `db:"assistant_referee_1"`
	AssistantReferee2 string         `db:"assistant_referee_2"`
	FourthOfficial    string         `db:"fourth_official"`
	HomePlayerIDs     pq.StringArray `db:"home_player_ids"`
	AwayPlayerIDs     pq.StringArray `db:"away_player_ids"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         *time.Time     `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID          string         `db:"public_id"`
	MatchDate         time.Time      `db:"match_date"`
	KickoffTime       string         `db:"kickoff_time"`
	Venue             string         `db:"venue"`
	Week              int            `db:"week"`
	Status            string         `db:"status"`
	HomeTeamID        string         `db:"home_team_public_id"`
	AwayTeamID        string         `db:"away_team_public_id"`
	ScoreHome         *int64         `db:"score_home"`
	ScoreAway         *int64         `db:"score_away"`
	Referee           string         `db:"referee"`
	AssistantReferee1 string         `db:"assistant_referee_1"`
	AssistantReferee2 string         `db:"assistant_referee_2"`
	FourthOfficial    string         `db:"fourth_official"`
	HomePlayerIDs     pq.StringArray `db:"home_player_ids"`
	AwayPlayerIDs     pq.StringArray `db:"away_player_ids"`
}
