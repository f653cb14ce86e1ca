package contact

import "context"

// Repository exposes contact-message persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Message, error)
	GetByID(ctx context.Context, id string) (Message, bool, error)
	Create(ctx context.Context, m Message) error
	Delete(ctx context.Context, id string) (bool, error)
}
