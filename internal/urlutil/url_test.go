package urlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CaseAndPorts(t *testing.T) {
	assert.Equal(t, "https://example.com/a", Normalize("HTTPS://Example.COM:443/a"))
	assert.Equal(t, "http://example.com/a", Normalize("http://example.com:80/a"))
}

func TestNormalize_StripsFragmentAndTracking(t *testing.T) {
	got := Normalize("https://example.com/a?utm_source=x&utm_medium=y&id=7&fbclid=abc#comments")
	assert.Equal(t, "https://example.com/a?id=7", got)
}

func TestNormalize_SortsQuery(t *testing.T) {
	assert.Equal(t,
		Normalize("https://example.com/a?b=2&a=1"),
		Normalize("https://example.com/a?a=1&b=2"),
	)
}

func TestNormalize_TrailingSlash(t *testing.T) {
	assert.Equal(t, Normalize("https://example.com/a"), Normalize("https://example.com/a/"))
	assert.Equal(t, "https://example.com/", Normalize("https://example.com/"))
}

func TestNormalize_EquivalentURLsCollapse(t *testing.T) {
	variants := []string{
		"https://Example.com/news/1?utm_campaign=daily",
		"https://example.com/news/1/",
		"https://example.com:443/news/1#top",
	}
	first := Normalize(variants[0])
	assert.NotEmpty(t, first)
	for _, v := range variants[1:] {
		assert.Equal(t, first, Normalize(v), "variant %q", v)
	}
}

func TestNormalize_Invalid(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("not-a-url"))
}
