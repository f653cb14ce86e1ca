package video

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidVideoURL marks a URL that carries no recognizable YouTube
// video ID.
var ErrInvalidVideoURL = errors.New("invalid video url")

var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})(?:[&#]|$)`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/embed/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/shorts/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/live/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
}

var bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractID pulls the 11-character YouTube video ID out of any of the
// common URL shapes. A bare ID is accepted as-is.
func ExtractID(rawURL string) (string, error) {
	if bareIDPattern.MatchString(rawURL) {
		return rawURL, nil
	}

	for _, pattern := range idPatterns {
		if parts := pattern.FindStringSubmatch(rawURL); parts != nil {
			return parts[1], nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidVideoURL, rawURL)
}
