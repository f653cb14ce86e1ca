package watchlive

import "context"

// Repository exposes live-stream persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Stream, error)
	GetByID(ctx context.Context, id string) (Stream, bool, error)
	Create(ctx context.Context, s Stream) error
	Update(ctx context.Context, s Stream) error
	Delete(ctx context.Context, id string) (bool, error)
}
