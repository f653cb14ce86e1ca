package postgres

import "time"

type playerTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	Name         string     `db:"name"`
	Position     string     `db:"position"`
	ImagePath    string     `db:"image_path"`
	Appearances  int        `db:"appearances"`
	CleanSheets  int        `db:"clean_sheets"`
	Goals        int        `db:"goals"`
	YellowCards  int        `db:"yellow_cards"`
	RedCards     int        `db:"red_cards"`
	Nationality  string     `db:"nationality"`
	DateOfBirth  *time.Time `db:"date_of_birth"`
	HeightFeet   int        `db:"height_feet"`
	HeightInches int        `db:"height_inches"`
	WeightLbs    int        `db:"weight_lbs"`
	TeamID       string     `db:"team_public_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID     string     `db:"public_id"`
	Name         string     `db:"name"`
	Position     string     `db:"position"`
	ImagePath    string     `db:"image_path"`
	Appearances  int        `db:"appearances"`
	CleanSheets  int        `db:"clean_sheets"`
	Goals        int        `db:"goals"`
	YellowCards  int        `db:"yellow_cards"`
	RedCards     int        `db:"red_cards"`
	Nationality  string     `db:"nationality"`
	DateOfBirth  *time.Time `db:"date_of_birth"`
	HeightFeet   int        `db:"height_feet"`
	HeightInches int        `db:"height_inches"`
	WeightLbs    int        `db:"weight_lbs"`
	TeamID       string     `db:"team_public_id"`
}
