package standings

import "context"

// Repository exposes league-table persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Row, error)
	GetByID(ctx context.Context, id string) (Row, bool, error)
	GetByTeamID(ctx context.Context, teamID string) (Row, bool, error)
	Create(ctx context.Context, r Row) error
	Update(ctx context.Context, r Row) error
	Delete(ctx context.Context, id string) (bool, error)
}
