package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/blog"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

type BlogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) List(ctx context.Context) ([]blog.Post, error) {
	query, args, err := qb.Select("*").From("blogs").
		Where(qb.IsNull("deleted_at")).
		OrderBy("published_on DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list blogs query: %w", err)
	}

	var rows []blogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	out := make([]blog.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, blogFromRow(row))
	}
	return out, nil
}

func (r *BlogRepository) ListByCategory(ctx context.Context, category string) ([]blog.Post, error) {
	query, args, err := qb.Select("*").From("blogs").
		Where(
			qb.Eq("category", category),
			qb.IsNull("deleted_at"),
		).
		OrderBy("published_on DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list blogs by category query: %w", err)
	}

	var rows []blogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list blogs by category: %w", err)
	}

	out := make([]blog.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, blogFromRow(row))
	}
	return out, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (blog.Post, bool, error) {
	query, args, err := qb.Select("*").From("blogs").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return blog.Post{}, false, fmt.Errorf("build get blog by id query: %w", err)
	}

	var row blogTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return blog.Post{}, false, nil
		}
		return blog.Post{}, false, fmt.Errorf("get blog by id: %w", err)
	}
	return blogFromRow(row), true, nil
}

func (r *BlogRepository) Create(ctx context.Context, p blog.Post) error {
	insertModel := blogInsertModel{
		PublicID:  p.ID,
		Title:     p.Title,
		Preview:   p.Preview,
		Content:   p.Content,
		ReadTime:  p.ReadTime,
		Category:  p.Category,
		Date:      nullableTime(p.Date),
		ImagePath: p.ImagePath,
	}
	query, args, err := qb.InsertModel("blogs", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create blog query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, p blog.Post) error {
	query, args, err := qb.Update("blogs").
		Set("title", p.Title).
		Set("preview", p.Preview).
		Set("content", p.Content).
		Set("read_time", p.ReadTime).
		Set("category", p.Category).
		Set("published_on", nullableTime(p.Date)).
		Set("image_path", p.ImagePath).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", p.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update blog query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("blogs").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete blog query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete blog: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete blog: %w", err)
	}
	return affected > 0, nil
}

func blogFromRow(row blogTableModel) blog.Post {
	return blog.Post{
		ID:        row.PublicID,
		Title:     row.Title,
		Preview:   row.Preview,
		Content:   row.Content,
		ReadTime:  row.ReadTime,
		Category:  row.Category,
		Date:      timePtrOrZero(row.Date),
		ImagePath: row.ImagePath,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
