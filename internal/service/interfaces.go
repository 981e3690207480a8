package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/maximdx/TrendRadar/internal/domain"
)

// PublishTimeCache is the persistent normalized-URL -> publish-time store.
type PublishTimeCache interface {
	Get(ctx context.Context, key string) (string, domain.LookupState, error)
	Set(ctx context.Context, key, publishedAt string) error
	Close() error
}

// Fetcher resolves a publish time for one URL. Failures are reported as an
// empty result, never as an error.
type Fetcher interface {
	FetchPublishTime(ctx context.Context, rawURL string) string
}

// Publisher streams freshly resolved entries to downstream consumers.
type Publisher interface {
	PublishResolved(ctx context.Context, key, publishedAt string) error
	Close() error
}
