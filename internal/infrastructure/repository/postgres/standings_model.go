package postgres

import "time"

type standingsTableModel struct {
	ID             int64      `db:"id"`
	PublicID       string     `db:"public_id"`
	TeamID         string     `db:"team_public_id"`
	Played         int        `db:"played"`
	Won            int        `db:"won"`
	Drawn          int        `db:"drawn"`
	Lost           int        `db:"lost"`
	GoalsFor       int        `db:"goals_for"`
	GoalsAgainst   int        `db:"goals_against"`
	GoalDifference int        `db:"goal_difference"`
	Points         int        `db:"points"`
	Form           string     `db:"form"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type standingsInsertModel struct {
	PublicID       string `db:"public_id"`
	TeamID         string `db:"team_public_id"`
	Played         int    `db:"played"`
	Won            int    `db:"won"`
	Drawn          int    `db:"drawn"`
	Lost           int    `db:"lost"`
	GoalsFor       int    `db:"goals_for"`
	GoalsAgainst   int    `db:"goals_against"`
	GoalDifference int    `db:"goal_difference"`
	Points         int    `db:"points"`
	Form           string `db:"form"`
}
