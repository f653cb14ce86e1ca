package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/subscriber"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
)

type SubscriberService struct {
	subscriberRepo subscriber.Repository
	idGen          id.Generator
	now            func() time.Time
}

func NewSubscriberService(subscriberRepo subscriber.Repository, idGen id.Generator) *SubscriberService {
	return &SubscriberService{
		subscriberRepo: subscriberRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

func (s *SubscriberService) List(ctx context.Context) ([]subscriber.Subscriber, error) {
	subscribers, err := s.subscriberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subscribers, nil
}

// Subscribe registers an email once; repeat signups conflict.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (subscriber.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return subscriber.Subscriber{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	_, exists, err := s.subscriberRepo.GetByEmail(ctx, email)
	if err != nil {
		return subscriber.Subscriber{}, fmt.Errorf("get subscriber: %w", err)
	}
	if exists {
		return subscriber.Subscriber{}, fmt.Errorf("%w: email %s is already subscribed", ErrConflict, email)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return subscriber.Subscriber{}, fmt.Errorf("generate subscriber id: %w", err)
	}

	now := s.now()
	sub := subscriber.Subscriber{
		ID:        newID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := sub.Validate(); err != nil {
		return subscriber.Subscriber{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.subscriberRepo.Create(ctx, sub); err != nil {
		return subscriber.Subscriber{}, fmt.Errorf("create subscriber: %w", err)
	}

	return sub, nil
}

func (s *SubscriberService) Delete(ctx context.Context, subscriberID string) error {
	subscriberID = strings.TrimSpace(subscriberID)
	if subscriberID == "" {
		return fmt.Errorf("%w: subscriber id is required", ErrInvalidInput)
	}

	deleted, err := s.subscriberRepo.Delete(ctx, subscriberID)
	if err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: subscriber=%s", ErrNotFound, subscriberID)
	}

	return nil
}
