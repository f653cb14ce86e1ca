package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/contact"
	"github.com/nsflhq/nsfl-api/internal/platform/id"
)

type ContactService struct {
	contactRepo contact.Repository
	idGen       id.Generator
	now         func() time.Time
}

func NewContactService(contactRepo contact.Repository, idGen id.Generator) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *ContactService) List(ctx context.Context) ([]contact.Message, error) {
	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return messages, nil
}

func (s *ContactService) GetByID(ctx context.Context, messageID string) (contact.Message, error) {
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return contact.Message{}, fmt.Errorf("%w: contact id is required", ErrInvalidInput)
	}

	m, exists, err := s.contactRepo.GetByID(ctx, messageID)
	if err != nil {
		return contact.Message{}, fmt.Errorf("get contact: %w", err)
	}
	if !exists {
		return contact.Message{}, fmt.Errorf("%w: contact=%s", ErrNotFound, messageID)
	}

	return m, nil
}

func (s *ContactService) Create(ctx context.Context, m contact.Message) (contact.Message, error) {
	newID, err := s.idGen.NewID()
	if err != nil {
		return contact.Message{}, fmt.Errorf("generate contact id: %w", err)
	}

	now := s.now()
	m.ID = newID
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := m.Validate(); err != nil {
		return contact.Message{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.contactRepo.Create(ctx, m); err != nil {
		return contact.Message{}, fmt.Errorf("create contact: %w", err)
	}

	return m, nil
}

func (s *ContactService) Delete(ctx context.Context, messageID string) error {
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return fmt.Errorf("%w: contact id is required", ErrInvalidInput)
	}

	deleted, err := s.contactRepo.Delete(ctx, messageID)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: contact=%s", ErrNotFound, messageID)
	}

	return nil
}
