package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL appends disable_prepared_binary_result=yes to the
// connection URL when the flag asks for it. PgBouncer in transaction mode
// chokes on binary-result prepared statements, so deployments behind it set
// DB_DISABLE_PREPARED_BINARY_RESULT.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil || u == nil {
		return raw
	}

	q := u.Query()
	if q.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	q.Set("disable_prepared_binary_result", "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

// dbNameFromURL pulls the database name out of either a postgres:// URL or
// a key=value DSN, for the db.name span attribute. Unknown shapes yield "".
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if u, err := url.Parse(raw); err == nil && u != nil && u.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(u.Path, "/")); name != "" {
			return name
		}
	}

	for _, kv := range strings.Fields(raw) {
		name, ok := strings.CutPrefix(kv, "dbname=")
		if !ok {
			continue
		}
		name = strings.Trim(strings.TrimSpace(name), `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
