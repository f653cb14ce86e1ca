package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nsflhq/nsfl-api/internal/domain/sponsor"
	qb "github.com/nsflhq/nsfl-api/internal/platform/querybuilder"
)

type SponsorRepository struct {
	db *sqlx.DB
}

func NewSponsorRepository(db *sqlx.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

func (r *SponsorRepository) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	query, args, err := qb.Select("*").From("sponsors").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sponsors query: %w", err)
	}

	var rows []sponsorTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}

	out := make([]sponsor.Sponsor, 0, len(rows))
	for _, row := range rows {
		out = append(out, sponsorFromRow(row))
	}
	return out, nil
}

func (r *SponsorRepository) GetByID(ctx context.Context, id string) (sponsor.Sponsor, bool, error) {
	query, args, err := qb.Select("*").From("sponsors").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return sponsor.Sponsor{}, false, fmt.Errorf("build get sponsor by id query: %w", err)
	}

	var row sponsorTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sponsor.Sponsor{}, false, nil
		}
		return sponsor.Sponsor{}, false, fmt.Errorf("get sponsor by id: %w", err)
	}
	return sponsorFromRow(row), true, nil
}

func (r *SponsorRepository) Create(ctx context.Context, s sponsor.Sponsor) error {
	insertModel := sponsorInsertModel{
		PublicID: s.ID,
		Name:     s.Name,
		Website:  s.Website,
		LogoPath: s.LogoPath,
	}
	query, args, err := qb.InsertModel("sponsors", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create sponsor query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create sponsor: %w", err)
	}
	return nil
}

func (r *SponsorRepository) Update(ctx context.Context, s sponsor.Sponsor) error {
	query, args, err := qb.Update("sponsors").
		Set("name", s.Name).
		Set("website", s.Website).
		Set("logo_path", s.LogoPath).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", s.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update sponsor query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update sponsor: %w", err)
	}
	return nil
}

func (r *SponsorRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("sponsors").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete sponsor query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete sponsor: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete sponsor: %w", err)
	}
	return affected > 0, nil
}

func sponsorFromRow(row sponsorTableModel) sponsor.Sponsor {
	return sponsor.Sponsor{
		ID:        row.PublicID,
		Name:      row.Name,
		Website:   row.Website,
		LogoPath:  row.LogoPath,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
