package standings

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Tier labels a table position for presentation.
const (
	TierChampion   = "champion"
	TierQualifying = "qualifying"
	TierRelegation = "relegation"
	TierNeutral    = "neutral"
)

// Row is one team's league-table line. Points and GoalDifference are
// derived from the other columns on every write, never accepted as input.
type Row struct {
	ID             string
	TeamID         string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Derive recomputes the dependent columns from the recorded results.
func (r *Row) Derive() {
	r.Points = r.Won*3 + r.Drawn
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst
}

func (r Row) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("standings row id is required")
	}
	if r.TeamID == "" {
		return fmt.Errorf("standings team id is required")
	}
	if r.Played < 0 || r.Won < 0 || r.Drawn < 0 || r.Lost < 0 {
		return fmt.Errorf("standings counts must be non-negative")
	}
	if r.Won+r.Drawn+r.Lost > r.Played {
		return fmt.Errorf("standings results exceed played count")
	}

	return nil
}

// Ranked is a row with its computed table position.
type Ranked struct {
	Row      Row
	Position int
}

// Rank orders rows by points descending and assigns 1-based positions.
// Teams on equal points keep their input order.
func Rank(rows []Row) []Ranked {
	sorted := append([]Row(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	out := make([]Ranked, len(sorted))
	for i, r := range sorted {
		out[i] = Ranked{Row: r, Position: i + 1}
	}
	return out
}

// Tier maps a table position to its presentation tier: first place is the
// champion spot, the top three qualify, sixth and below face relegation.
func Tier(position int) string {
	switch {
	case position == 1:
		return TierChampion
	case position <= 3:
		return TierQualifying
	case position >= 6:
		return TierRelegation
	default:
		return TierNeutral
	}
}

// ParseForm splits a stored form string ("W,L,D") into individual result
// letters. Quotes and surrounding whitespace are tolerated; empty tokens
// are dropped.
func ParseForm(s string) []string {
	cleaned := strings.NewReplacer(`"`, "", `'`, "").Replace(s)
	parts := strings.Split(cleaned, ",")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		token := strings.ToUpper(strings.TrimSpace(p))
		if token == "" {
			continue
		}
		out = append(out, token)
	}
	return out
}
