package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/subscriber"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

type SubscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) List(ctx context.Context) ([]subscriber.Subscriber, error) {
	query, args, err := qb.Select("*").From("subscribers").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list subscribers query: %w", err)
	}

	var rows []subscriberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	out := make([]subscriber.Subscriber, 0, len(rows))
	for _, row := range rows {
		out = append(out, subscriberFromRow(row))
	}
	return out, nil
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (subscriber.Subscriber, bool, error) {
	query, args, err := qb.Select("*").From("subscribers").
		Where(
			qb.Expr("LOWER(email) = ?", strings.ToLower(email)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return subscriber.Subscriber{}, false, fmt.Errorf("build get subscriber by email query: %w", err)
	}

	var row subscriberTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return subscriber.Subscriber{}, false, nil
		}
		return subscriber.Subscriber{}, false, fmt.Errorf("get subscriber by email: %w", err)
	}
	return subscriberFromRow(row), true, nil
}

func (r *SubscriberRepository) Create(ctx context.Context, s subscriber.Subscriber) error {
	insertModel := subscriberInsertModel{
		PublicID: s.ID,
		Email:    s.Email,
	}
	query, args, err := qb.InsertModel("subscribers", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create subscriber query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("subscribers").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete subscriber query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete subscriber: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete subscriber: %w", err)
	}
	return affected > 0, nil
}

func subscriberFromRow(row subscriberTableModel) subscriber.Subscriber {
	return subscriber.Subscriber{
		ID:        row.PublicID,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
