package sponsor

import (
	"fmt"
	"time"
)

// Sponsor is a league partner shown on the public site.
type Sponsor struct {
	ID        string
	Name      string
	Website   string
	LogoPath  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Sponsor) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("sponsor id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("sponsor name is required")
	}

	return nil
}
