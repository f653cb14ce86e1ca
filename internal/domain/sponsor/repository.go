package sponsor

import "context"

// Repository exposes sponsor persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Sponsor, error)
	GetByID(ctx context.Context, id string) (Sponsor, bool, error)
	Create(ctx context.Context, s Sponsor) error
	Update(ctx context.Context, s Sponsor) error
	Delete(ctx context.Context, id string) (bool, error)
}
