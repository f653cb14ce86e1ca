package team

import (
	"fmt"
	"time"
)

// Team is one school club competing in the league.
type Team struct {
	ID        string
	Name      string
	LogoPath  string
	Details   string
	Manager   string
	Founded   time.Time
	Stadium   string
	PlayerIDs []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
