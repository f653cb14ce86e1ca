package postgres

import "time"

type subscriberTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Email     string     `db:"email"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type subscriberInsertModel struct {
	PublicID string `db:"public_id"`
	Email    string `db:"email"`
}
