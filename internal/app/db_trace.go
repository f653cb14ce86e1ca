package app

import (
	"regexp"
	"strings"
)

// Span attribute values are capped so a bulk insert cannot blow up trace
// storage.
const tracedQueryLimit = 512

var sqlWhitespace = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace collapses a SQL statement onto one line and
// truncates it before it is attached to a span.
func formatDBQueryForTrace(query string) string {
	flat := sqlWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(flat) > tracedQueryLimit {
		return flat[:tracedQueryLimit] + "..."
	}
	return flat
}
