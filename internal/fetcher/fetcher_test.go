package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetchPublishTime_HTMLMetaTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><head>
			<meta property="article:published_time" content="2024-03-05T10:00:00Z">
		</head><body></body></html>`)
	}))
	defer server.Close()

	f := New(Config{}, testLogger())
	assert.Equal(t, "03-05 10:00", f.FetchPublishTime(context.Background(), server.URL))
}

func TestFetchPublishTime_JSONContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": {"publishedAt": "2024-03-05T10:00:00Z"}}`)
	}))
	defer server.Close()

	f := New(Config{}, testLogger())
	assert.Equal(t, "03-05 10:00", f.FetchPublishTime(context.Background(), server.URL))
}

func TestFetchPublishTime_SetsRequestHeaders(t *testing.T) {
	var gotUA, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html></html>`)
	}))
	defer server.Close()

	f := New(Config{UserAgent: "custom-agent/1.0"}, testLogger())
	f.FetchPublishTime(context.Background(), server.URL)

	assert.Equal(t, "custom-agent/1.0", gotUA)
	assert.Contains(t, gotLang, "zh-CN")
}

func TestFetchPublishTime_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	f := New(Config{}, testLogger())
	assert.Equal(t, "", f.FetchPublishTime(context.Background(), server.URL))
}

func TestFetchPublishTime_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	f := New(Config{Timeout: time.Second}, testLogger())
	assert.Equal(t, "", f.FetchPublishTime(context.Background(), server.URL))
}

func TestFetchPublishTime_EmptyURL(t *testing.T) {
	f := New(Config{}, testLogger())
	assert.Equal(t, "", f.FetchPublishTime(context.Background(), ""))
}

func TestFetchPublishTime_BodyCap(t *testing.T) {
	// The publish time sits past the cap, so the truncated body has no
	// usable candidate.
	page := `<html><body>` + strings.Repeat("x", 4096) +
		`<time datetime="2024-03-05T10:00:00Z"></time></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	capped := New(Config{MaxBodyBytes: 1024}, testLogger())
	assert.Equal(t, "", capped.FetchPublishTime(context.Background(), server.URL))

	full := New(Config{}, testLogger())
	assert.Equal(t, "03-05 10:00", full.FetchPublishTime(context.Background(), server.URL))
}

type staticHook struct {
	name    string
	matches bool
	result  string
	called  int
}

func (h *staticHook) Name() string          { return h.name }
func (h *staticHook) Match(u *url.URL) bool { return h.matches }
func (h *staticHook) Resolve(ctx context.Context, client *http.Client, u *url.URL) string {
	h.called++
	return h.result
}

func TestFetchPublishTime_HookShortCircuits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("page must not be fetched when a hook resolves")
	}))
	defer server.Close()

	hook := &staticHook{name: "static", matches: true, result: "03-05 10:00"}
	f := New(Config{}, testLogger(), hook)

	assert.Equal(t, "03-05 10:00", f.FetchPublishTime(context.Background(), server.URL))
	assert.Equal(t, 1, hook.called)
}

func TestFetchPublishTime_HookFallsThroughOnEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<meta property="article:published_time" content="2024-03-05T10:00:00Z">`)
	}))
	defer server.Close()

	hook := &staticHook{name: "static", matches: true, result: ""}
	f := New(Config{}, testLogger(), hook)

	assert.Equal(t, "03-05 10:00", f.FetchPublishTime(context.Background(), server.URL))
	assert.Equal(t, 1, hook.called)
}

func TestHackerNewsHook_Match(t *testing.T) {
	hook := NewHackerNewsHook("")

	cases := []struct {
		rawURL string
		want   bool
	}{
		{"https://news.ycombinator.com/item?id=123456", true},
		{"https://news.ycombinator.com/item?id=abc", false},
		{"https://news.ycombinator.com/newest", false},
		{"https://example.com/item?id=123456", false},
	}
	for _, tc := range cases {
		u, err := url.Parse(tc.rawURL)
		require.NoError(t, err)
		assert.Equal(t, tc.want, hook.Match(u), tc.rawURL)
	}
}

func TestHackerNewsHook_Resolve(t *testing.T) {
	ts := int64(1709633400)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/123456.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": 123456, "time": %d, "type": "story"}`, ts)
	}))
	defer server.Close()

	hook := NewHackerNewsHook(server.URL)
	u, err := url.Parse("https://news.ycombinator.com/item?id=123456")
	require.NoError(t, err)

	expected := time.Unix(ts, 0).Format("01-02 15:04")
	assert.Equal(t, expected, hook.Resolve(context.Background(), http.DefaultClient, u))
}

func TestHackerNewsHook_ResolveFailures(t *testing.T) {
	u, err := url.Parse("https://news.ycombinator.com/item?id=123456")
	require.NoError(t, err)
	ctx := context.Background()

	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer notFound.Close()
	assert.Equal(t, "", NewHackerNewsHook(notFound.URL).Resolve(ctx, http.DefaultClient, u))

	zeroTime := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 123456}`)
	}))
	defer zeroTime.Close()
	assert.Equal(t, "", NewHackerNewsHook(zeroTime.URL).Resolve(ctx, http.DefaultClient, u))
}

func TestFetchPublishTime_HackerNewsEndToEnd(t *testing.T) {
	ts := int64(1709633400)
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"time": %d}`, ts)
	}))
	defer api.Close()

	f := New(Config{}, testLogger(), NewHackerNewsHook(api.URL))

	expected := time.Unix(ts, 0).Format("01-02 15:04")
	got := f.FetchPublishTime(context.Background(), "https://news.ycombinator.com/item?id=123456")
	assert.Equal(t, expected, got)
}
