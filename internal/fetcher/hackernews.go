package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/maximdx/TrendRadar/internal/extract"
)

const (
	hackerNewsHost     = "news.ycombinator.com"
	defaultItemAPIBase = "https://hacker-news.firebaseio.com/v0/item"
)

// HackerNewsHook resolves discussion links through the official item API.
// The rendered pages carry no machine-readable publish metadata, while the
// API returns a unix timestamp.
type HackerNewsHook struct {
	apiBase string
}

// NewHackerNewsHook creates the hook. An empty apiBase selects the official
// Firebase endpoint.
func NewHackerNewsHook(apiBase string) *HackerNewsHook {
	if apiBase == "" {
		apiBase = defaultItemAPIBase
	}
	return &HackerNewsHook{apiBase: strings.TrimSuffix(apiBase, "/")}
}

// Name identifies the hook in logs.
func (h *HackerNewsHook) Name() string {
	return "hackernews"
}

// Match reports whether the URL is an item link with a numeric id.
func (h *HackerNewsHook) Match(u *url.URL) bool {
	if !strings.Contains(strings.ToLower(u.Host), hackerNewsHost) {
		return false
	}
	return isDigits(u.Query().Get("id"))
}

// Resolve fetches the item and normalizes its unix "time" field.
func (h *HackerNewsHook) Resolve(ctx context.Context, client *http.Client, u *url.URL) string {
	apiURL := fmt.Sprintf("%s/%s.json", h.apiBase, u.Query().Get("id"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return ""
	}

	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload struct {
		Time int64 `json:"time"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Time == 0 {
		return ""
	}
	return extract.NormalizeDisplay(payload.Time)
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
