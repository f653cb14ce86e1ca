package memory

import (
	"context"
	"sync"

	"github.com/nsflhq/nsfl-api/internal/domain/blog"
)

type BlogRepository struct {
	mu    sync.RWMutex
	posts []blog.Post
}

func NewBlogRepository(posts []blog.Post) *BlogRepository {
	return &BlogRepository{posts: append([]blog.Post(nil), posts...)}
}

func (r *BlogRepository) List(_ context.Context) ([]blog.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]blog.Post, 0, len(r.posts))
	out = append(out, r.posts...)
	return out, nil
}

func (r *BlogRepository) ListByCategory(_ context.Context, category string) ([]blog.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]blog.Post, 0)
	for _, item := range r.posts {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *BlogRepository) GetByID(_ context.Context, id string) (blog.Post, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.posts {
		if item.ID == id {
			return item, true, nil
		}
	}
	return blog.Post{}, false, nil
}

func (r *BlogRepository) Create(_ context.Context, p blog.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = append(r.posts, p)
	return nil
}

func (r *BlogRepository) Update(_ context.Context, p blog.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.posts {
		if r.posts[idx].ID == p.ID {
			r.posts[idx] = p
			return nil
		}
	}
	return nil
}

func (r *BlogRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.posts {
		if r.posts[idx].ID == id {
			r.posts = append(r.posts[:idx], r.posts[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}
