package assistant

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	appID      string
	apiKey     string
	indexName  string
	baseURL    string
	httpClient *http.Client

	maxRetries int
	retryDelay time.Duration

	demoMode         bool
	fallbackDisabled bool

	cacheTTL      time.Duration
	redisAddrs    []string
	redisPassword string

	catalogPath     string
	catalogProducts []domain.Product

	hitsPerPage       int
	analyticsCapacity int

	logger *zap.Logger
}

// WithAlgolia sets the remote index credentials. Without this option the
// client runs permanently in demo mode, answering from the embedded catalog.
func WithAlgolia(appID, apiKey, indexName string) Option {
	return optionFunc(func(c *clientConfig) {
		c.appID = appID
		c.apiKey = apiKey
		c.indexName = indexName
	})
}

// WithBaseURL overrides the derived Algolia host.
// Used by tests and Algolia-compatible self-hosted indexes.
func WithBaseURL(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.baseURL = url
	})
}

// WithHTTPClient sets the HTTP client used for remote queries.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithRetries sets the remote attempt budget and the base backoff delay.
// Defaults: 3 attempts, 1s delay (the wait grows linearly per attempt).
func WithRetries(maxRetries int, delay time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxRetries = maxRetries
		c.retryDelay = delay
	})
}

// WithDemoMode starts the client in demo mode even when remote credentials
// are configured. It can be released later via SetDemoMode(false).
func WithDemoMode() Option {
	return optionFunc(func(c *clientConfig) {
		c.demoMode = true
	})
}

// WithFallbackDisabled makes remote failures propagate to the caller instead
// of degrading to the embedded catalog.
func WithFallbackDisabled() Option {
	return optionFunc(func(c *clientConfig) {
		c.fallbackDisabled = true
	})
}

// WithCacheTTL sets the result cache lifetime. Default: 5 minutes.
func WithCacheTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithRedisCache stores cached results in Redis instead of process memory,
// sharing the cache across replicas.
func WithRedisCache(addrs []string, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.redisAddrs = addrs
		c.redisPassword = password
	})
}

// WithCatalogFile loads the fallback catalog from a JSON file instead of the
// embedded dataset.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogPath = path
	})
}

// WithCatalog supplies the fallback catalog directly.
func WithCatalog(products []Product) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogProducts = toInternalProducts(products)
	})
}

// WithHitsPerPage sets the default page size for searches that do not
// specify one. Default: 5.
func WithHitsPerPage(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.hitsPerPage = n
	})
}

// WithAnalyticsCapacity bounds the in-process analytics log. Default: 1000.
func WithAnalyticsCapacity(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.analyticsCapacity = n
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
