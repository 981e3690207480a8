package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublishTimeDisplay_DirectField(t *testing.T) {
	record := map[string]any{
		"title":   "x",
		"pubDate": "2023-12-01",
	}
	assert.Equal(t, "12-01 00:00", ExtractPublishTimeDisplay(record))
}

func TestExtractPublishTimeDisplay_KeyPriority(t *testing.T) {
	record := map[string]any{
		"published_at": "2024-03-05 10:00",
		"created_at":   "2024-01-01 08:00",
	}
	assert.Equal(t, "03-05 10:00", ExtractPublishTimeDisplay(record))
}

func TestExtractPublishTimeDisplay_ExtraMap(t *testing.T) {
	record := map[string]any{
		"title": "x",
		"extra": map[string]any{
			"publish_time": "2024-03-05T10:00:00Z",
		},
	}
	assert.Equal(t, "03-05 10:00", ExtractPublishTimeDisplay(record))
}

func TestExtractPublishTimeDisplay_RecordBeatsExtra(t *testing.T) {
	record := map[string]any{
		"date": "2024-02-02",
		"extra": map[string]any{
			"published_at": "2024-03-05T10:00:00Z",
		},
	}
	assert.Equal(t, "02-02 00:00", ExtractPublishTimeDisplay(record))
}

func TestExtractPublishTimeDisplay_SkipsUnparseableValues(t *testing.T) {
	record := map[string]any{
		"published_at": nil,
		"pubDate":      "2023-12-01",
	}
	assert.Equal(t, "12-01 00:00", ExtractPublishTimeDisplay(record))
}

func TestExtractPublishTimeDisplay_NothingFound(t *testing.T) {
	assert.Equal(t, "", ExtractPublishTimeDisplay(nil))
	assert.Equal(t, "", ExtractPublishTimeDisplay(map[string]any{"title": "x"}))
}
