package postgres

import "time"

type highlightTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	ImagePath     string     `db:"image_path"`
	VideoURL      string     `db:"video_url"`
	VideoID       string     `db:"video_id"`
	Views         int64      `db:"views"`
	Duration      string     `db:"duration"`
	PublishedDate *time.Time `db:"published_date"`
	LastUpdated   *time.Time `db:"last_updated"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type highlightInsertModel struct {
	PublicID      string     `db:"public_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	ImagePath     string     `db:"image_path"`
	VideoURL      string     `db:"video_url"`
	VideoID       string     `db:"video_id"`
	Views         int64      `db:"views"`
	Duration      string     `db:"duration"`
	PublishedDate *time.Time `db:"published_date"`
	LastUpdated   *time.Time `db:"last_updated"`
}
