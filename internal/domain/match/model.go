package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusRunning   = "running"
	StatusCompleted = "completed"
)

// Match is one league fixture. MatchDate carries the calendar day and Time
// the kickoff clock as entered by staff; ResolveKickoff combines them.
type Match struct {
	ID                 string
	MatchDate          time.Time
	Time               string
	Venue              string
	Week               int
	Status             string
	HomeTeamID         string
	AwayTeamID         string
	ScoreHome          *int
	ScoreAway          *int
	Referee            string
	AssistantReferee1  string
	AssistantReferee2  string
	FourthOfficial     string
	HomePlayerIDs      []string
	AwayPlayerIDs      []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return status
}

func IsValidStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusUpcoming, StatusRunning, StatusCompleted:
		return true
	default:
		return false
	}
}

func IsCompletedStatus(status string) bool {
	return NormalizeStatus(status) == StatusCompleted
}

func IsRunningStatus(status string) bool {
	return NormalizeStatus(status) == StatusRunning
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if !IsValidStatus(m.Status) {
		return fmt.Errorf("invalid match status %q", m.Status)
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match teams must differ")
	}
	if (m.ScoreHome != nil || m.ScoreAway != nil) && NormalizeStatus(m.Status) == StatusUpcoming {
		return fmt.Errorf("scores require a running or completed match")
	}

	return nil
}
