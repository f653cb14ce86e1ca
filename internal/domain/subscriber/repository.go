package subscriber

import "context"

// Repository exposes subscriber persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Subscriber, error)
	GetByEmail(ctx context.Context, email string) (Subscriber, bool, error)
	Create(ctx context.Context, s Subscriber) error
	Delete(ctx context.Context, id string) (bool, error)
}
