// Package extract pulls publish-time candidates out of fetched page bodies.
//
// Strategies run in a fixed order (meta tags, JSON-LD, <time> tags, generic
// inline patterns) and the first candidate that normalizes to a full
// MM-DD HH:MM display wins. Everything here is best effort: malformed
// payloads are skipped, never surfaced as errors.
package extract

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/maximdx/TrendRadar/internal/timeutil"
)

// displayPattern gates candidates on a full date. The general normalizer may
// return bare HH:MM values or raw fallback strings; those are rejected here.
var displayPattern = regexp.MustCompile(`^\d{2}-\d{2} \d{2}:\d{2}$`)

// preferredMetaKeys are the meta property/name values known to carry a
// publish time.
var preferredMetaKeys = map[string]struct{}{
	"article:published_time":   {},
	"og:published_time":        {},
	"publishdate":              {},
	"pubdate":                  {},
	"parsely-pub-date":         {},
	"datepublished":            {},
	"dc.date":                  {},
	"article:published":        {},
	"weibo: article:create_at": {},
}

// preferredJSONKeys are probed in priority order at every level of a parsed
// JSON document.
var preferredJSONKeys = []string{
	"datePublished",
	"dateCreated",
	"publishTime",
	"publishedAt",
	"published_at",
	"pubDate",
	"uploadDate",
	"dateModified",
}

// genericDatePatterns fish inline JSON-ish date fields out of raw text.
// "ctime" is accepted for recall even though some sites use it for
// non-publish timestamps.
var genericDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)"datePublished"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?i)"dateCreated"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?i)"publish(?:Time|_time|At|_at)"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?i)"pubDate"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?i)"(?:created_at|createdAt)"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?i)"ctime"\s*:\s*"?(\d{10,13})"?`),
}

// NormalizeDisplay normalizes a candidate and keeps it only if it carries a
// full date in the canonical MM-DD HH:MM shape.
func NormalizeDisplay(value any) string {
	formatted := timeutil.FormatDatetimeLike(value)
	if displayPattern.MatchString(formatted) {
		return formatted
	}
	return ""
}

// FromHTML extracts a publish time from page HTML, or "" when none of the
// strategies produce a normalizable candidate.
func FromHTML(html string) string {
	if html == "" {
		return ""
	}

	var candidates []any
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		candidates = append(candidates, metaCandidates(doc)...)
		candidates = append(candidates, jsonLDCandidates(doc)...)
		candidates = append(candidates, timeTagCandidates(doc)...)
	}
	for _, pattern := range genericDatePatterns {
		for _, match := range pattern.FindAllStringSubmatch(html, -1) {
			candidates = append(candidates, match[1])
		}
	}

	return firstDisplayable(candidates)
}

// FromJSON extracts a publish time from a JSON body by walking the parsed
// document for preferred keys.
func FromJSON(body []byte) string {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	var candidates []any
	collectJSONDates(data, &candidates)
	return firstDisplayable(candidates)
}

func firstDisplayable(candidates []any) string {
	for _, candidate := range candidates {
		if normalized := NormalizeDisplay(candidate); normalized != "" {
			return normalized
		}
	}
	return ""
}

func metaCandidates(doc *goquery.Document) []any {
	var out []any
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		key, _ := sel.Attr("property")
		if key == "" {
			key, _ = sel.Attr("name")
		}
		content, _ := sel.Attr("content")
		if key == "" || content == "" {
			return
		}
		if _, ok := preferredMetaKeys[strings.ToLower(key)]; ok {
			out = append(out, content)
		}
	})
	return out
}

func jsonLDCandidates(doc *goquery.Document) []any {
	var out []any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		payload := strings.TrimSpace(sel.Text())
		if payload == "" {
			return
		}
		// Some sites wrap the payload in an HTML comment.
		if strings.HasPrefix(payload, "<!--") && strings.HasSuffix(payload, "-->") {
			payload = strings.TrimSpace(payload[4 : len(payload)-3])
		}
		var data any
		if err := json.Unmarshal([]byte(payload), &data); err != nil {
			return
		}
		collectJSONDates(data, &out)
	})
	return out
}

func timeTagCandidates(doc *goquery.Document) []any {
	var out []any
	doc.Find("time[datetime]").Each(func(_ int, sel *goquery.Selection) {
		if value, _ := sel.Attr("datetime"); value != "" {
			out = append(out, value)
		}
	})
	return out
}

// collectJSONDates walks a parsed JSON document. Preferred keys are probed
// in priority order at each level before recursing; recursion visits map
// keys sorted so candidate order stays deterministic.
func collectJSONDates(value any, out *[]any) {
	switch v := value.(type) {
	case map[string]any:
		for _, key := range preferredJSONKeys {
			if candidate, ok := v[key]; ok && !emptyCandidate(candidate) {
				*out = append(*out, candidate)
			}
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			collectJSONDates(v[key], out)
		}
	case []any:
		for _, item := range v {
			collectJSONDates(item, out)
		}
	}
}

func emptyCandidate(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	}
	return false
}
