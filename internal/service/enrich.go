package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/maximdx/TrendRadar/internal/config"
	"github.com/maximdx/TrendRadar/internal/domain"
	"github.com/maximdx/TrendRadar/internal/timeutil"
)

// CacheOpener acquires a cache handle for one enrichment pass. The pass
// closes the handle on every exit path.
type CacheOpener func(ctx context.Context) (PublishTimeCache, error)

// EnrichService fills in the published_at field on hot-topic title records:
// pre-supplied fields are reused, cached resolutions are replayed and only
// genuine cache misses trigger a bounded concurrent fetch.
type EnrichService struct {
	openCache    CacheOpener
	fetcher      Fetcher
	publisher    Publisher
	normalizeURL func(string) string
	logger       *slog.Logger
	config       config.EnrichConfig
}

// NewEnrichService wires the orchestrator. publisher may be nil; normalizeURL
// must be deterministic so equivalent URLs collapse to one cache key.
func NewEnrichService(
	openCache CacheOpener,
	fetcher Fetcher,
	publisher Publisher,
	normalizeURL func(string) string,
	logger *slog.Logger,
	cfg config.EnrichConfig,
) *EnrichService {
	return &EnrichService{
		openCache:    openCache,
		fetcher:      fetcher,
		publisher:    publisher,
		normalizeURL: normalizeURL,
		logger:       logger.With("component", "enrich"),
		config:       cfg,
	}
}

// fetchResult carries one completed fetch back to the orchestrating
// goroutine.
type fetchResult struct {
	key      string
	resolved string
}

// Enrich mutates the records in groups in place, setting published_at where
// a publish time is resolvable, and returns counters for the pass. Records
// that cannot be resolved are left untouched. The only hard failure is an
// unopenable cache; per-item fetch and cache errors become counters.
func (s *EnrichService) Enrich(ctx context.Context, groups []domain.StatGroup) (*domain.EnrichmentSummary, error) {
	startTime := time.Now()
	summary := &domain.EnrichmentSummary{}

	if len(groups) == 0 {
		return summary, nil
	}

	cache, err := s.openCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("open publish time cache: %w", err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			s.logger.Debug("cache close failed", "error", err)
		}
	}()

	// pending groups records by cache key so one fetch satisfies every
	// record sharing a URL; pendingKeys keeps encounter order.
	pending := make(map[string][]domain.TitleRecord)
	urlByKey := make(map[string]string)
	var pendingKeys []string

	for _, group := range groups {
		for _, record := range group.Titles {
			if record == nil {
				continue
			}
			summary.TitlesTotal++

			if existing := timeutil.ExtractPublishTimeDisplay(record); existing != "" {
				record["published_at"] = existing
				summary.AlreadyHasPublish++
				continue
			}

			rawURL := strings.TrimSpace(domain.BestURL(record))
			if rawURL == "" {
				summary.NoURL++
				continue
			}

			key := s.normalizeURL(rawURL)
			if key == "" {
				key = rawURL
			}

			value, state, err := cache.Get(ctx, key)
			if err != nil {
				s.logger.Warn("cache lookup failed", "key", key, "error", err)
				state = domain.LookupAbsent
			}
			switch state {
			case domain.LookupHit:
				record["published_at"] = value
				summary.CacheHit++
			case domain.LookupRecentMiss:
				summary.CacheRecentMiss++
			default:
				if _, seen := pending[key]; !seen {
					pendingKeys = append(pendingKeys, key)
					urlByKey[key] = rawURL
				}
				pending[key] = append(pending[key], record)
			}
		}
	}

	summary.PendingURLs = len(pendingKeys)

	if s.config.MaxFetchPerRun > 0 && len(pendingKeys) > s.config.MaxFetchPerRun {
		summary.SkippedByLimit = len(pendingKeys) - s.config.MaxFetchPerRun
		pendingKeys = pendingKeys[:s.config.MaxFetchPerRun]
	}

	if len(pendingKeys) > 0 {
		s.fetchPending(ctx, cache, pendingKeys, urlByKey, pending, summary)
	}

	summary.Duration = time.Since(startTime)

	s.logger.Info("enrichment pass completed",
		"titles_total", summary.TitlesTotal,
		"already_has_publish", summary.AlreadyHasPublish,
		"cache_hit", summary.CacheHit,
		"cache_recent_miss", summary.CacheRecentMiss,
		"no_url", summary.NoURL,
		"pending_urls", summary.PendingURLs,
		"fetched_urls_success", summary.FetchedURLsSuccess,
		"fetched_urls_fail", summary.FetchedURLsFail,
		"skipped_by_limit", summary.SkippedByLimit,
		"duration", summary.Duration,
	)

	return summary, nil
}

// fetchPending resolves the deduplicated keys with a bounded worker pool and
// drains every result before returning. Workers only fetch; cache writes,
// record mutation and event publishing stay on this goroutine so the store
// never sees concurrent writers.
func (s *EnrichService) fetchPending(
	ctx context.Context,
	cache PublishTimeCache,
	keys []string,
	urlByKey map[string]string,
	pending map[string][]domain.TitleRecord,
	summary *domain.EnrichmentSummary,
) {
	workers := s.config.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(keys) {
		workers = len(keys)
	}

	jobs := make(chan string)
	results := make(chan fetchResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range jobs {
				results <- fetchResult{
					key:      key,
					resolved: s.fetcher.FetchPublishTime(ctx, urlByKey[key]),
				}
			}
		}()
	}

	go func() {
		for _, key := range keys {
			jobs <- key
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	for result := range results {
		// Negative results are cached too, so known-unknown URLs are not
		// re-fetched until the miss TTL expires.
		if err := cache.Set(ctx, result.key, result.resolved); err != nil {
			s.logger.Warn("cache write failed", "key", result.key, "error", err)
		}

		records := pending[result.key]
		if result.resolved == "" {
			summary.FetchedURLsFail++
			summary.FetchedTitlesFail += len(records)
			continue
		}

		summary.FetchedURLsSuccess++
		for _, record := range records {
			record["published_at"] = result.resolved
			summary.FetchedTitlesSuccess++
		}

		if s.publisher != nil {
			if err := s.publisher.PublishResolved(ctx, result.key, result.resolved); err != nil {
				s.logger.Warn("publish resolved entry failed", "key", result.key, "error", err)
			}
		}
	}
}
