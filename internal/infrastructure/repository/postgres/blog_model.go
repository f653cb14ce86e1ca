package postgres

import "time"

type blogTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Title     string     `db:"title"`
	Preview   string     `db:"preview"`
	Content   string     `db:"content"`
	ReadTime  int        `db:"read_time"`
	Category  string     `db:"category"`
	Date      *time.Time `db:"published_on"`
	ImagePath string     `db:"image_path"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type blogInsertModel struct {
	PublicID  string     `db:"public_id"`
	Title     string     `db:"title"`
	Preview   string     `db:"preview"`
	Content   string     `db:"content"`
	ReadTime  int        `db:"read_time"`
	Category  string     `db:"category"`
	Date      *time.Time `db:"published_on"`
	ImagePath string     `db:"image_path"`
}
