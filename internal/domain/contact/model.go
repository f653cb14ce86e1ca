package contact

import (
	"fmt"
	"time"
)

// Message is one submission from the public contact form.
type Message struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	Agreement bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("contact id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("contact name is required")
	}
	if m.Email == "" {
		return fmt.Errorf("contact email is required")
	}
	if !m.Agreement {
		return fmt.Errorf("contact agreement is required")
	}

	return nil
}
