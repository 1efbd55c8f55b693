// Package assistant is the embeddable product-search client behind the
// Alkosto shopping assistant. It answers catalog queries from a remote
// Algolia index with retries, memoizes results, degrades to an embedded demo
// catalog when the index is unreachable, and keeps a bounded analytics log.
package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/analytics"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/cache"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/catalog"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/request"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/transport/algolia"
	searchuc "github.com/Wunderbot-Git/alkosto-ai-assistant/internal/usecase/search"
)

// Client is the assistant SDK entry point.
type Client struct {
	svc   *searchuc.Service
	cache cache.Cache

	defaultHitsPerPage int
}

// New creates a Client. With no options it runs in demo mode against the
// embedded catalog, which is enough for local development and tests.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cat, err := buildCatalog(cfg, logger)
	if err != nil {
		return nil, err
	}

	resultCache, err := buildCache(cfg)
	if err != nil {
		return nil, err
	}

	recorder := analytics.NewRecorder(cfg.analyticsCapacity)
	fallback := searchuc.NewFallbackSource(cat)

	var remote searchuc.QuerySource
	if cfg.appID != "" && cfg.apiKey != "" {
		client := algolia.NewClient(&algolia.Config{
			AppID:      cfg.appID,
			APIKey:     cfg.apiKey,
			IndexName:  cfg.indexName,
			BaseURL:    cfg.baseURL,
			HTTPClient: cfg.httpClient,
		})
		remote = searchuc.NewRemoteSource(client, cfg.maxRetries, cfg.retryDelay, logger)
	}

	svc := searchuc.New(resultCache, recorder, remote, fallback, logger)
	if cfg.fallbackDisabled {
		svc = svc.WithFallbackDisabled()
	}
	if cfg.demoMode {
		svc.SetDemoMode(true)
	}

	return &Client{
		svc:                svc,
		cache:              resultCache,
		defaultHitsPerPage: cfg.hitsPerPage,
	}, nil
}

func buildCatalog(cfg *clientConfig, logger *zap.Logger) (*catalog.Catalog, error) {
	switch {
	case cfg.catalogPath != "":
		cat, err := catalog.NewFromFile(cfg.catalogPath, logger)
		if err != nil {
			return nil, fmt.Errorf("assistant: load catalog: %w", err)
		}
		return cat, nil
	case len(cfg.catalogProducts) > 0:
		return catalog.NewStatic(cfg.catalogProducts, logger), nil
	default:
		return catalog.NewEmbedded(logger), nil
	}
}

func buildCache(cfg *clientConfig) (cache.Cache, error) {
	if len(cfg.redisAddrs) > 0 {
		c, err := cache.NewRedis(cache.RedisConfig{
			Addrs:    cfg.redisAddrs,
			Password: cfg.redisPassword,
			TTL:      cfg.cacheTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("assistant: create redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemory(cfg.cacheTTL), nil
}

// SearchParams configures one search. All fields are optional; the zero
// value searches the whole catalog with the default page size.
type SearchParams struct {
	Query                string
	Filters              string
	HitsPerPage          int
	AttributesToRetrieve []string
}

// SearchProducts executes a product search. Under the default configuration
// it does not fail: remote exhaustion degrades to a flagged answer from the
// fallback catalog.
func (c *Client) SearchProducts(ctx context.Context, p SearchParams) (SearchResult, error) {
	hitsPerPage := p.HitsPerPage
	if hitsPerPage == 0 {
		hitsPerPage = c.defaultHitsPerPage
	}

	req := request.New(p.Query, p.Filters, hitsPerPage, p.AttributesToRetrieve)
	res, err := c.svc.Search(ctx, &req)
	if err != nil {
		return SearchResult{}, fmt.Errorf("assistant: search: %w", err)
	}
	return fromSearchResult(res), nil
}

// Analytics returns the current analytics summary.
func (c *Client) Analytics() AnalyticsSummary {
	return fromSummary(c.svc.Analytics())
}

// ClearAnalytics drops the analytics log.
func (c *Client) ClearAnalytics() {
	c.svc.ClearAnalytics()
}

// CacheStats reports result cache occupancy.
func (c *Client) CacheStats(ctx context.Context) (CacheStats, error) {
	stats, err := c.svc.CacheStats(ctx)
	if err != nil {
		return CacheStats{}, fmt.Errorf("assistant: cache stats: %w", err)
	}
	return fromCacheStats(stats), nil
}

// ClearCache drops all cached results.
func (c *Client) ClearCache(ctx context.Context) error {
	if err := c.svc.ClearCache(ctx); err != nil {
		return fmt.Errorf("assistant: clear cache: %w", err)
	}
	return nil
}

// SetDemoMode forces (or releases) the fallback path. Releasing has no
// effect when no remote index is configured.
func (c *Client) SetDemoMode(enabled bool) {
	c.svc.SetDemoMode(enabled)
}

// DemoMode reports whether searches are answered from the embedded catalog.
func (c *Client) DemoMode() bool {
	return c.svc.DemoMode()
}

// Close releases the cache backend.
func (c *Client) Close() {
	c.cache.Close()
}
