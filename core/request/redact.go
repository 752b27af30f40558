package request

import (
	"net/url"
	"strings"
)

const redacted = "REDACTED"

// RedactURL hides the token query parameter so URLs can be logged
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return RedactedString(u)
}

// RedactedString renders u with every non-empty token value hidden. The rest
// of the query is kept byte for byte, in wire order.
func RedactedString(u *url.URL) string {
	if u == nil {
		return ""
	}
	if u.RawQuery == "" {
		return u.String()
	}

	parts := strings.Split(u.RawQuery, "&")
	changed := false
	for i, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		if !ok || value == "" {
			continue
		}
		if name, err := url.QueryUnescape(key); err != nil || name != TokenParam {
			continue
		}
		parts[i] = key + "=" + redacted
		changed = true
	}
	if !changed {
		return u.String()
	}

	clone := *u
	clone.RawQuery = strings.Join(parts, "&")
	return clone.String()
}
