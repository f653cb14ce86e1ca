package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/watchlive"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

type WatchliveRepository struct {
	db *sqlx.DB
}

func NewWatchliveRepository(db *sqlx.DB) *WatchliveRepository {
	return &WatchliveRepository{db: db}
}

func (r *WatchliveRepository) List(ctx context.Context) ([]watchlive.Stream, error) {
	query, args, err := qb.Select("*").From("watchlive_streams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list streams query: %w", err)
	}

	var rows []watchliveTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list streams: %w", err)
	}

	out := make([]watchlive.Stream, 0, len(rows))
	for _, row := range rows {
		out = append(out, watchliveFromRow(row))
	}
	return out, nil
}

func (r *WatchliveRepository) GetByID(ctx context.Context, id string) (watchlive.Stream, bool, error) {
	query, args, err := qb.Select("*").From("watchlive_streams").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return watchlive.Stream{}, false, fmt.Errorf("build get stream by id query: %w", err)
	}

	var row watchliveTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return watchlive.Stream{}, false, nil
		}
		return watchlive.Stream{}, false, fmt.Errorf("get stream by id: %w", err)
	}
	return watchliveFromRow(row), true, nil
}

func (r *WatchliveRepository) Create(ctx context.Context, s watchlive.Stream) error {
	insertModel := watchliveInsertModel{
		PublicID: s.ID,
		VideoURL: s.VideoURL,
		VideoID:  s.VideoID,
		IsActive: s.IsActive,
	}
	query, args, err := qb.InsertModel("watchlive_streams", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create stream query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create stream: %w", err)
	}
	return nil
}

func (r *WatchliveRepository) Update(ctx context.Context, s watchlive.Stream) error {
	query, args, err := qb.Update("watchlive_streams").
		Set("video_url", s.VideoURL).
		Set("video_id", s.VideoID).
		Set("is_active", s.IsActive).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", s.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update stream query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update stream: %w", err)
	}
	return nil
}

func (r *WatchliveRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("watchlive_streams").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete stream query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete stream: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete stream: %w", err)
	}
	return affected > 0, nil
}

func watchliveFromRow(row watchliveTableModel) watchlive.Stream {
	return watchlive.Stream{
		ID:        row.PublicID,
		VideoURL:  row.VideoURL,
		VideoID:   row.VideoID,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
