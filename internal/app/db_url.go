package app

import (
	"net/url"
	"strings"
)

// disablePreparedBinaryParam makes lib/pq skip binary result encoding for
// prepared statements, which some connection poolers cannot serve.
const disablePreparedBinaryParam = "disable_prepared_binary_result"

// normalizeDBURL appends the disable_prepared_binary_result parameter when
// the config asks for it. A URL that already carries the parameter, or that
// does not parse, comes back unchanged.
func normalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil || u == nil {
		return raw
	}

	values := u.Query()
	if values.Get(disablePreparedBinaryParam) != "" {
		return raw
	}
	values.Set(disablePreparedBinaryParam, "yes")
	u.RawQuery = values.Encode()

	return u.String()
}

// dbNameFromURL extracts the database name from either a postgres:// URL or
// a space-separated key=value DSN. Empty when no name can be determined.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if u, err := url.Parse(trimmed); err == nil && u != nil && u.Scheme != "" {
		if name := strings.Trim(u.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(trimmed) {
		key, value, found := strings.Cut(field, "=")
		if !found || key != "dbname" {
			continue
		}
		if name := strings.Trim(value, ` "'`); name != "" {
			return name
		}
	}

	return ""
}
