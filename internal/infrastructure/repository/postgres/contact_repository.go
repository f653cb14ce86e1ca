package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/contact"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) List(ctx context.Context) ([]contact.Message, error) {
	query, args, err := qb.Select("*").From("contacts").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list contacts query: %w", err)
	}

	var rows []contactTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	out := make([]contact.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, contactFromRow(row))
	}
	return out, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id string) (contact.Message, bool, error) {
	query, args, err := qb.Select("*").From("contacts").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return contact.Message{}, false, fmt.Errorf("build get contact by id query: %w", err)
	}

	var row contactTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contact.Message{}, false, nil
		}
		return contact.Message{}, false, fmt.Errorf("get contact by id: %w", err)
	}
	return contactFromRow(row), true, nil
}

func (r *ContactRepository) Create(ctx context.Context, m contact.Message) error {
	insertModel := contactInsertModel{
		PublicID:  m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Agreement: m.Agreement,
	}
	query, args, err := qb.InsertModel("contacts", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create contact query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("contacts").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete contact query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete contact: %w", err)
	}
	return affected > 0, nil
}

func contactFromRow(row contactTableModel) contact.Message {
	return contact.Message{
		ID:        row.PublicID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Message:   row.Message,
		Agreement: row.Agreement,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
