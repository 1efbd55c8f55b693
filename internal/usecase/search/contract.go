package search

import (
	"context"
	"time"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/analytics"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/cache"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/request"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/transport/algolia"
)

// QuerySource answers a search request. Two implementations exist:
// RemoteSource (the external index) and FallbackSource (the embedded
// catalog); the orchestrator picks one at construction.
type QuerySource interface {
	Search(ctx context.Context, req *request.Request) (result.Result, error)
}

// QueryClient executes a single query attempt against the remote index.
type QueryClient interface {
	Query(ctx context.Context, params algolia.QueryParams) (algolia.QueryResponse, error)
}

// CatalogReader provides the fallback product collection.
type CatalogReader interface {
	Products() []domain.Product
}

// ResultCache memoizes search results by fingerprint.
type ResultCache interface {
	Get(ctx context.Context, key string) (result.Result, bool, error)
	Put(ctx context.Context, key string, res result.Result) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (cache.Stats, error)
}

// Recorder appends search executions to the analytics log.
type Recorder interface {
	Record(query, filters string, res result.Result, duration time.Duration, fromCache bool)
	Summary() analytics.Summary
	Clear()
}
