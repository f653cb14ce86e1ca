package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/nsflhq/nsfl-api/internal/domain/subscriber"
)

type SubscriberRepository struct {
	mu          sync.RWMutex
	subscribers []subscriber.Subscriber
}

func NewSubscriberRepository(subscribers []subscriber.Subscriber) *SubscriberRepository {
	return &SubscriberRepository{subscribers: append([]subscriber.Subscriber(nil), subscribers...)}
}

func (r *SubscriberRepository) List(_ context.Context) ([]subscriber.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]subscriber.Subscriber, 0, len(r.subscribers))
	out = append(out, r.subscribers...)
	return out, nil
}

func (r *SubscriberRepository) GetByEmail(_ context.Context, email string) (subscriber.Subscriber, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.subscribers {
		if strings.EqualFold(item.Email, email) {
			return item, true, nil
		}
	}
	return subscriber.Subscriber{}, false, nil
}

func (r *SubscriberRepository) Create(_ context.Context, s subscriber.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subscribers = append(r.subscribers, s)
	return nil
}

func (r *SubscriberRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.subscribers {
		if r.subscribers[idx].ID == id {
			r.subscribers = append(r.subscribers[:idx], r.subscribers[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}
