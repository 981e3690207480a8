package domain

import "time"

// EnrichmentSummary counts what one enrichment pass did. URL counters are
// per distinct cache key; title counters are per record, so one fetched URL
// may account for several titles.
type EnrichmentSummary struct {
	TitlesTotal          int
	AlreadyHasPublish    int
	CacheHit             int
	CacheRecentMiss      int
	NoURL                int
	PendingURLs          int
	FetchedURLsSuccess   int
	FetchedURLsFail      int
	FetchedTitlesSuccess int
	FetchedTitlesFail    int
	SkippedByLimit       int
	Duration             time.Duration
}
