package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/blog"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
)

type BlogService struct {
	blogRepo blog.Repository
	idGen    id.Generator
	now      func() time.Time
}

func NewBlogService(blogRepo blog.Repository, idGen id.Generator) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

// List returns posts, optionally narrowed to one category.
func (s *BlogService) List(ctx context.Context, category string) ([]blog.Post, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		posts, err := s.blogRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list blogs: %w", err)
		}
		return posts, nil
	}

	if !blog.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown blog category %q", ErrInvalidInput, category)
	}

	posts, err := s.blogRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list blogs by category: %w", err)
	}
	return posts, nil
}

func (s *BlogService) GetByID(ctx context.Context, postID string) (blog.Post, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return blog.Post{}, fmt.Errorf("%w: blog id is required", ErrInvalidInput)
	}

	p, exists, err := s.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return blog.Post{}, fmt.Errorf("get blog: %w", err)
	}
	if !exists {
		return blog.Post{}, fmt.Errorf("%w: blog=%s", ErrNotFound, postID)
	}

	return p, nil
}

func (s *BlogService) Create(ctx context.Context, p blog.Post) (blog.Post, error) {
	newID, err := s.idGen.NewID()
	if err != nil {
		return blog.Post{}, fmt.Errorf("generate blog id: %w", err)
	}

	now := s.now()
	p.ID = newID
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Date.IsZero() {
		p.Date = now
	}

	if err := p.Validate(); err != nil {
		return blog.Post{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.blogRepo.Create(ctx, p); err != nil {
		return blog.Post{}, fmt.Errorf("create blog: %w", err)
	}

	return p, nil
}

func (s *BlogService) Update(ctx context.Context, p blog.Post) (blog.Post, error) {
	existing, err := s.GetByID(ctx, p.ID)
	if err != nil {
		return blog.Post{}, err
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now()
	if p.Date.IsZero() {
		p.Date = existing.Date
	}

	if err := p.Validate(); err != nil {
		return blog.Post{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.blogRepo.Update(ctx, p); err != nil {
		return blog.Post{}, fmt.Errorf("update blog: %w", err)
	}

	return p, nil
}

func (s *BlogService) Delete(ctx context.Context, postID string) error {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return fmt.Errorf("%w: blog id is required", ErrInvalidInput)
	}

	deleted, err := s.blogRepo.Delete(ctx, postID)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: blog=%s", ErrNotFound, postID)
	}

	return nil
}
