package urlutil

import (
	"net/url"
	"strings"
)

// Query parameters that only identify the click, not the page.
var trackingParams = map[string]struct{}{
	"fbclid":       {},
	"gclid":        {},
	"yclid":        {},
	"igshid":       {},
	"spm":          {},
	"share_token":  {},
	"share_source": {},
}

// Normalize canonicalizes a URL into a stable cache key: scheme and host are
// lower-cased, default ports, fragments and tracking parameters are dropped,
// the remaining query is sorted and non-root trailing slashes are trimmed.
// The result is deterministic so equivalent URLs collapse to one key.
// Returns the empty string for input it cannot parse; callers fall back to
// the raw URL.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	u.Fragment = ""
	u.RawFragment = ""

	query := u.Query()
	for key := range query {
		lower := strings.ToLower(key)
		if _, ok := trackingParams[lower]; ok || strings.HasPrefix(lower, "utm_") {
			query.Del(key)
		}
	}
	u.RawQuery = query.Encode()

	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	return u.String()
}
