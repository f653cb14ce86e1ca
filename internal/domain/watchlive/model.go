package watchlive

import (
	"fmt"
	"time"
)

// Stream points the public site at a live broadcast. Only the video ID is
// derived from the submitted URL; stats are never fetched for streams.
type Stream struct {
	ID        string
	VideoURL  string
	VideoID   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Stream) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("stream id is required")
	}
	if s.VideoURL == "" {
		return fmt.Errorf("stream video url is required")
	}

	return nil
}
