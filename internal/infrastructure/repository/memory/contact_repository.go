package memory

import (
	"context"
	"sync"

	"github.com/nsflhq/nsfl-api/internal/domain/contact"
)

type ContactRepository struct {
	mu       sync.RWMutex
	messages []contact.Message
}

func NewContactRepository(messages []contact.Message) *ContactRepository {
	return &ContactRepository{messages: append([]contact.Message(nil), messages...)}
}

func (r *ContactRepository) List(_ context.Context) ([]contact.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contact.Message, 0, len(r.messages))
	out = append(out, r.messages...)
	return out, nil
}

func (r *ContactRepository) GetByID(_ context.Context, id string) (contact.Message, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.messages {
		if item.ID == id {
			return item, true, nil
		}
	}
	return contact.Message{}, false, nil
}

func (r *ContactRepository) Create(_ context.Context, m contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, m)
	return nil
}

func (r *ContactRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.messages {
		if r.messages[idx].ID == id {
			r.messages = append(r.messages[:idx], r.messages[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}
