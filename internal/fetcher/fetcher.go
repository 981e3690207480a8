package fetcher

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maximdx/TrendRadar/internal/extract"
)

const (
	// Some sites serve stripped-down pages to unknown agents.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

	// Body cap bounds memory and scan time on pathological pages.
	defaultMaxBodyBytes = 800_000

	defaultTimeout = 8 * time.Second
)

// SiteHook resolves publish times for URLs whose pages lack machine-readable
// metadata but that expose a stable API. Hooks run before the generic page
// fetch; a matching hook that resolves nothing falls through to the page.
type SiteHook interface {
	Name() string
	Match(u *url.URL) bool
	Resolve(ctx context.Context, client *http.Client, u *url.URL) string
}

// Config holds fetcher settings.
type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

// Fetcher resolves publish times for single URLs.
type Fetcher struct {
	client       *http.Client
	maxBodyBytes int64
	userAgent    string
	hooks        []SiteHook
	logger       *slog.Logger
}

// New creates a fetcher. Hooks are tried in the given order.
func New(cfg Config, logger *slog.Logger, hooks ...SiteHook) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Fetcher{
		client:       &http.Client{Timeout: cfg.Timeout},
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    cfg.UserAgent,
		hooks:        hooks,
		logger:       logger.With("component", "fetcher"),
	}
}

// FetchPublishTime resolves a publish time (MM-DD HH:MM) for one URL. Every
// failure mode is reported as an empty result; the caller records it as a
// cache miss rather than an error.
func (f *Fetcher) FetchPublishTime(ctx context.Context, rawURL string) string {
	if rawURL == "" {
		return ""
	}

	if u, err := url.Parse(rawURL); err == nil {
		for _, hook := range f.hooks {
			if !hook.Match(u) {
				continue
			}
			if resolved := hook.Resolve(ctx, f.client, u); resolved != "" {
				f.logger.Debug("resolved via site hook", "hook", hook.Name(), "url", rawURL)
				return resolved
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}
	f.setHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("fetch failed", "url", rawURL, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.logger.Debug("fetch rejected", "url", rawURL, "status", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return ""
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(contentType, "application/json") {
		return extract.FromJSON(body)
	}
	return extract.FromHTML(string(body))
}

func (f *Fetcher) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")
}
