package postgres

import "time"

type contactTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Phone     string     `db:"phone"`
	Message   string     `db:"message"`
	Agreement bool       `db:"agreement"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type contactInsertModel struct {
	PublicID  string `db:"public_id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Message   string `db:"message"`
	Agreement bool   `db:"agreement"`
}
