package highlight

import (
	"fmt"
	"time"
)

// Highlight is a published match video. VideoID and the stats fields are
// derived from VideoURL on write; clients never supply them.
type Highlight struct {
	ID            string
	Title         string
	Description   string
	ImagePath     string
	VideoURL      string
	VideoID       string
	Views         int64
	Duration      string
	PublishedDate *time.Time
	LastUpdated   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (h Highlight) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("highlight id is required")
	}
	if h.Title == "" {
		return fmt.Errorf("highlight title is required")
	}
	if h.VideoURL == "" {
		return fmt.Errorf("highlight video url is required")
	}

	return nil
}
