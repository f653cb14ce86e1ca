package player

import (
	"fmt"
	"strings"
	"time"
)

const (
	PositionGoalkeeper = "goalkeeper"
	PositionDefender   = "defender"
	PositionMidfielder = "midfielder"
	PositionForward    = "forward"
)

// Player is a registered squad member.
type Player struct {
	ID           string
	Name         string
	Position     string
	ImagePath    string
	Appearances  int
	CleanSheets  int
	Goals        int
	YellowCards  int
	RedCards     int
	Nationality  string
	DateOfBirth  time.Time
	HeightFeet   int
	HeightInches int
	WeightLbs    int
	TeamID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func IsValidPosition(position string) bool {
	switch strings.ToLower(strings.TrimSpace(position)) {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	default:
		return false
	}
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if !IsValidPosition(p.Position) {
		return fmt.Errorf("invalid player position %q", p.Position)
	}

	return nil
}
