// Package youtube fetches public video metadata from the YouTube Data
// API so highlight entries can carry live view counts and durations.
package youtube

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/nsflhq/nsfl-api/internal/platform/logging"
	"github.com/nsflhq/nsfl-api/internal/platform/resilience"
	"github.com/nsflhq/nsfl-api/internal/usecase"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

var errYouTubeTransient = crerr.New("youtube transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchStats looks up one video. Concurrent lookups for the same video
// ID are collapsed into a single upstream request.
func (c *Client) FetchStats(ctx context.Context, videoID string) (usecase.VideoStats, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return usecase.VideoStats{}, fmt.Errorf("%w: video id is required", usecase.ErrInvalidInput)
	}

	out, err, _ := c.flight.Do("video:"+videoID, func() (any, error) {
		stats, fetchErr := c.fetchVideo(ctx, videoID)
		if c.circuitEnabled {
			if stderrors.Is(fetchErr, errYouTubeTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return stats, fetchErr
	})
	if err != nil {
		if stderrors.Is(err, errYouTubeTransient) {
			return usecase.VideoStats{}, fmt.Errorf("%w: youtube lookup: %v", usecase.ErrDependencyUnavailable, err)
		}
		return usecase.VideoStats{}, err
	}

	stats, ok := out.(usecase.VideoStats)
	if !ok {
		return usecase.VideoStats{}, fmt.Errorf("unexpected youtube result type %T", out)
	}
	return stats, nil
}

func (c *Client) fetchVideo(ctx context.Context, videoID string) (usecase.VideoStats, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			return usecase.VideoStats{}, fmt.Errorf("%w: youtube circuit open", usecase.ErrDependencyUnavailable)
		}
	}

	query := url.Values{}
	query.Set("part", "statistics,contentDetails,snippet")
	query.Set("id", videoID)
	query.Set("key", c.apiKey)
	endpoint := c.baseURL + "/videos?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return usecase.VideoStats{}, fmt.Errorf("create videos request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return usecase.VideoStats{}, fmt.Errorf("%w: send videos request: %v", errYouTubeTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return usecase.VideoStats{}, fmt.Errorf("%w: read videos response: %v", errYouTubeTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		// Quota exhaustion and key rejection both come back as 403. The
		// stored stats keep serving until the quota window resets.
		return usecase.VideoStats{}, fmt.Errorf("%w: videos request rejected status=%d", errYouTubeTransient, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= http.StatusInternalServerError:
		return usecase.VideoStats{}, fmt.Errorf("%w: youtube status=%d", errYouTubeTransient, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		c.logger.WarnContext(ctx, "youtube videos non-200", "status_code", resp.StatusCode, "video_id", videoID)
		return usecase.VideoStats{}, fmt.Errorf("youtube videos request failed with status %d", resp.StatusCode)
	}

	var decoded videoListResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return usecase.VideoStats{}, fmt.Errorf("unmarshal videos response: %w", err)
	}
	if len(decoded.Items) == 0 {
		return usecase.VideoStats{}, fmt.Errorf("%w: video %s", usecase.ErrNotFound, videoID)
	}
	item := decoded.Items[0]

	views, err := strconv.ParseInt(strings.TrimSpace(item.Statistics.ViewCount), 10, 64)
	if err != nil {
		return usecase.VideoStats{}, fmt.Errorf("parse view count %q: %w", item.Statistics.ViewCount, err)
	}

	duration, err := formatISODuration(item.ContentDetails.Duration)
	if err != nil {
		return usecase.VideoStats{}, fmt.Errorf("parse duration %q: %w", item.ContentDetails.Duration, err)
	}

	stats := usecase.VideoStats{
		Views:    views,
		Duration: duration,
	}
	if raw := strings.TrimSpace(item.Snippet.PublishedAt); raw != "" {
		published, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return usecase.VideoStats{}, fmt.Errorf("parse published date %q: %w", raw, err)
		}
		stats.PublishedDate = &published
	}
	return stats, nil
}

type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	Snippet struct {
		PublishedAt string `json:"publishedAt"`
	} `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
	} `json:"statistics"`
}

// formatISODuration converts an ISO-8601 duration such as PT1H2M3S into
// the clock form the site renders, 1:02:03 or 2:03 when under an hour.
func formatISODuration(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "PT") {
		return "", fmt.Errorf("unsupported duration format")
	}
	s = strings.TrimPrefix(s, "PT")

	var hours, minutes, seconds int
	num := 0
	sawDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num = num*10 + int(r-'0')
			sawDigit = true
		case r == 'H':
			hours, num, sawDigit = num, 0, false
		case r == 'M':
			minutes, num, sawDigit = num, 0, false
		case r == 'S':
			seconds, num, sawDigit = num, 0, false
		default:
			return "", fmt.Errorf("unsupported duration component %q", r)
		}
	}
	if sawDigit {
		return "", fmt.Errorf("trailing digits without a unit")
	}

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds), nil
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds), nil
}
