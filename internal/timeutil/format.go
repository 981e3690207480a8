package timeutil

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DisplayLayout is the canonical publish-time display shape.
const DisplayLayout = "01-02 15:04"

// Timestamps above this are treated as milliseconds.
const millisThreshold = 10_000_000_000

// isoLayouts cover ISO-8601 variants: with or without offset (a trailing Z
// parses as +00:00), fractional seconds and the space separator.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// knownLayouts are tried in order after the ISO variants; the first
// structurally matching parse wins.
var knownLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01-02 15:04",
	"15:04",
}

// FormatDatetimeLike normalizes a heterogeneous time value to MM-DD HH:MM.
//
// Numbers and digit-only strings are unix timestamps (seconds, or
// milliseconds above the threshold). Strings are then tried as ISO-8601 and
// against the known layout list. A bare HH:MM is returned as-is since it has
// no date to normalize. An empty string means the value is unparseable; only
// nil, empty and non-time-shaped input produces it.
func FormatDatetimeLike(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case int:
		return formatUnix(float64(v))
	case int64:
		return formatUnix(float64(v))
	case float64:
		return formatUnix(v)
	case string:
		return formatString(v)
	default:
		return ""
	}
}

func formatString(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return ""
	}

	if isDigits(raw) {
		ts, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ""
		}
		return formatUnix(ts)
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DisplayLayout)
		}
	}

	for _, layout := range knownLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			if layout == "15:04" {
				return raw
			}
			return t.Format(DisplayLayout)
		}
	}

	// Fallback: return the trimmed input verbatim so a human-readable but
	// non-standard time is not lost.
	return raw
}

func formatUnix(ts float64) string {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return ""
	}
	if ts > millisThreshold {
		ts /= 1000
	}
	sec, frac := math.Modf(ts)
	if sec < math.MinInt64 || sec > math.MaxInt64 {
		return ""
	}
	t := time.Unix(int64(sec), int64(frac*float64(time.Second)))
	if t.Year() < 1 || t.Year() > 9999 {
		return ""
	}
	return t.Format(DisplayLayout)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
