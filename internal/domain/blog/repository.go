package blog

import "context"

// Repository exposes blog persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Post, error)
	ListByCategory(ctx context.Context, category string) ([]Post, error)
	GetByID(ctx context.Context, id string) (Post, bool, error)
	Create(ctx context.Context, p Post) error
	Update(ctx context.Context, p Post) error
	Delete(ctx context.Context, id string) (bool, error)
}
