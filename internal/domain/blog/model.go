package blog

import (
	"fmt"
	"time"
)

const (
	CategoryMatchReports = "Match Reports"
	CategoryLeagueNews   = "League News"
	CategoryTeamNews     = "Team News"
	CategoryInterviews   = "Interviews"
)

// Post is one published article.
type Post struct {
	ID        string
	Title     string
	Preview   string
	Content   string
	ReadTime  int
	Category  string
	Date      time.Time
	ImagePath string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidCategory(category string) bool {
	switch category {
	case CategoryMatchReports, CategoryLeagueNews, CategoryTeamNews, CategoryInterviews:
		return true
	default:
		return false
	}
}

func (p Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("blog id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("blog title is required")
	}
	if !IsValidCategory(p.Category) {
		return fmt.Errorf("invalid blog category %q", p.Category)
	}

	return nil
}
