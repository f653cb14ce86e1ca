package video

import (
	"errors"
	"testing"
)

func TestExtractID(t *testing.T) {
	t.Parallel()

	const id = "dQw4w9WgXcQ"

	cases := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ&t=42",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?t=10",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"https://www.youtube.com/live/dQw4w9WgXcQ",
		"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
		"dQw4w9WgXcQ",
	}

	for _, url := range cases {
		got, err := ExtractID(url)
		if err != nil {
			t.Fatalf("ExtractID(%q): %v", url, err)
		}
		if got != id {
			t.Fatalf("ExtractID(%q) = %q, want %q", url, got, id)
		}
	}
}

func TestExtractID_Invalid(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/channel/UC123",
		"not a url",
	}

	for _, url := range cases {
		if _, err := ExtractID(url); !errors.Is(err, ErrInvalidVideoURL) {
			t.Fatalf("ExtractID(%q): expected ErrInvalidVideoURL, got %v", url, err)
		}
	}
}
