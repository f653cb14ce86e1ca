package postgres

import "time"

type watchliveTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	VideoURL  string     `db:"video_url"`
	VideoID   string     `db:"video_id"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type watchliveInsertModel struct {
	PublicID string `db:"public_id"`
	VideoURL string `db:"video_url"`
	VideoID  string `db:"video_id"`
	IsActive bool   `db:"is_active"`
}
