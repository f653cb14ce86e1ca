package postgres

import (
	"time"

	"github.com/lib/pq"
)

type teamTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	LogoPath  string         `db:"logo_path"`
	Details   string         `db:"details"`
	Manager   string         `db:"manager"`
	Founded   *time.Time     `db:"founded"`
	Stadium   string         `db:"stadium"`
	PlayerIDs pq.StringArray `db:"player_ids"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	LogoPath  string         `db:"logo_path"`
	Details   string         `db:"details"`
	Manager   string         `db:"manager"`
	Founded   *time.Time     `db:"founded"`
	Stadium   string         `db:"stadium"`
	PlayerIDs pq.StringArray `db:"player_ids"`
}
