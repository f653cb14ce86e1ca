package match

import "context"

// Repository exposes match persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, id string) (bool, error)
}
