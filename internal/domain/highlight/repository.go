package highlight

import "context"

// Repository exposes highlight persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Highlight, error)
	GetByID(ctx context.Context, id string) (Highlight, bool, error)
	Create(ctx context.Context, h Highlight) error
	Update(ctx context.Context, h Highlight) error
	Delete(ctx context.Context, id string) (bool, error)
}
