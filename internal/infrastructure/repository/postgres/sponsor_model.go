package postgres

import "time"

type sponsorTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	Website   string     `db:"website"`
	LogoPath  string     `db:"logo_path"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type sponsorInsertModel struct {
	PublicID string `db:"public_id"`
	Name     string `db:"name"`
	Website  string `db:"website"`
	LogoPath string `db:"logo_path"`
}
