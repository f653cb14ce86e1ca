package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/highlight"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

type HighlightRepository struct {
	db *sqlx.DB
}

func NewHighlightRepository(db *sqlx.DB) *HighlightRepository {
	return &HighlightRepository{db: db}
}

func (r *HighlightRepository) List(ctx context.Context) ([]highlight.Highlight, error) {
	query, args, err := qb.Select("*").From("highlights").
		Where(qb.IsNull("deleted_at")).
		OrderBy("published_date DESC NULLS LAST", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list highlights query: %w", err)
	}

	var rows []highlightTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}

	out := make([]highlight.Highlight, 0, len(rows))
	for _, row := range rows {
		out = append(out, highlightFromRow(row))
	}
	return out, nil
}

func (r *HighlightRepository) GetByID(ctx context.Context, id string) (highlight.Highlight, bool, error) {
	query, args, err := qb.Select("*").From("highlights").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return highlight.Highlight{}, false, fmt.Errorf("build get highlight by id query: %w", err)
	}

	var row highlightTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return highlight.Highlight{}, false, nil
		}
		return highlight.Highlight{}, false, fmt.Errorf("get highlight by id: %w", err)
	}
	return highlightFromRow(row), true, nil
}

func (r *HighlightRepository) Create(ctx context.Context, h highlight.Highlight) error {
	insertModel := highlightInsertModel{
		PublicID:      h.ID,
		Title:         h.Title,
		Description:   h.Description,
		ImagePath:     h.ImagePath,
		VideoURL:      h.VideoURL,
		VideoID:       h.VideoID,
		Views:         h.Views,
		Duration:      h.Duration,
		PublishedDate: h.PublishedDate,
		LastUpdated:   nullableTime(h.LastUpdated),
	}
	query, args, err := qb.InsertModel("highlights", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create highlight query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create highlight: %w", err)
	}
	return nil
}

func (r *HighlightRepository) Update(ctx context.Context, h highlight.Highlight) error {
	query, args, err := qb.Update("highlights").
		Set("title", h.Title).
		Set("description", h.Description).
		Set("image_path", h.ImagePath).
		Set("video_url", h.VideoURL).
		Set("video_id", h.VideoID).
		Set("views", h.Views).
		Set("duration", h.Duration).
		Set("published_date", h.PublishedDate).
		Set("last_updated", nullableTime(h.LastUpdated)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", h.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update highlight query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update highlight: %w", err)
	}
	return nil
}

func (r *HighlightRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("highlights").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete highlight query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete highlight: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete highlight: %w", err)
	}
	return affected > 0, nil
}

func highlightFromRow(row highlightTableModel) highlight.Highlight {
	return highlight.Highlight{
		ID:            row.PublicID,
		Title:         row.Title,
		Description:   row.Description,
		ImagePath:     row.ImagePath,
		VideoURL:      row.VideoURL,
		VideoID:       row.VideoID,
		Views:         row.Views,
		Duration:      row.Duration,
		PublishedDate: row.PublishedDate,
		LastUpdated:   timePtrOrZero(row.LastUpdated),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
