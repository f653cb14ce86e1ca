package youtube

import (
	"context"
	"fmt"

	"github.com/nsflhq/nsfl-api/internal/usecase"
)

// Disabled stands in for the real client when no API key is configured.
// Highlights are then stored and served without live stats.
type Disabled struct{}

func (Disabled) FetchStats(ctx context.Context, videoID string) (usecase.VideoStats, error) {
	return usecase.VideoStats{}, fmt.Errorf("%w: youtube enrichment is disabled", usecase.ErrDependencyUnavailable)
}
