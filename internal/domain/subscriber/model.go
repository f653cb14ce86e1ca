package subscriber

import (
	"fmt"
	"time"
)

// Subscriber is one newsletter signup. Email is unique.
type Subscriber struct {
	ID        string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Subscriber) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("subscriber id is required")
	}
	if s.Email == "" {
		return fmt.Errorf("subscriber email is required")
	}

	return nil
}
