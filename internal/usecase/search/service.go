// Package search orchestrates product searches: cache lookup, remote query
// with retries, degradation to the embedded catalog, and analytics recording.
package search

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/analytics"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/cache"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/request"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/metrics"
)

// Service is the public search entry point. Every invocation appends exactly
// one analytics record, on the cache-hit, remote, fallback, and error paths
// alike. Under normal configuration Search never fails outward: remote
// exhaustion degrades to a flagged fallback result unless fallback is
// disabled.
type Service struct {
	cache           ResultCache
	recorder        Recorder
	remote          QuerySource // nil when no credentials are configured
	fallback        QuerySource
	fallbackEnabled bool
	demoMode        atomic.Bool
	logger          *zap.Logger
}

// New creates the orchestrator. remote may be nil: the service then operates
// permanently in demo mode, answering from the fallback source.
func New(resultCache ResultCache, recorder Recorder, remote, fallback QuerySource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		cache:           resultCache,
		recorder:        recorder,
		remote:          remote,
		fallback:        fallback,
		fallbackEnabled: true,
		logger:          logger,
	}
	if remote == nil {
		s.demoMode.Store(true)
	}
	return s
}

// WithFallbackDisabled makes remote exhaustion propagate to the caller
// instead of degrading to the embedded catalog.
func (s *Service) WithFallbackDisabled() *Service {
	s.fallbackEnabled = false
	return s
}

// Search executes a product search.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Result, error) {
	start := time.Now()
	key := req.Fingerprint()

	if cached, ok := s.cacheLookup(ctx, key); ok {
		s.recorder.Record(req.Query(), req.Filters(), cached, 0, true)
		metrics.SearchCacheTotal.WithLabelValues("hit").Inc()
		metrics.SearchesTotal.WithLabelValues(string(cached.Source)).Inc()
		return cached, nil
	}
	metrics.SearchCacheTotal.WithLabelValues("miss").Inc()

	res, err := s.activeSource().Search(ctx, req)
	if err != nil {
		if !s.fallbackEnabled {
			s.recorder.Record(req.Query(), req.Filters(),
				result.Result{Source: result.SourceRemote}, time.Since(start), false)
			metrics.SearchErrorsTotal.Inc()
			return result.Result{}, fmt.Errorf("%w: %w", domain.ErrFallbackDisabled, err)
		}

		s.logger.Warn("Remote search exhausted, serving fallback catalog", zap.Error(err))
		res, _ = s.fallback.Search(ctx, req) // FallbackSource never fails
		res.Fallback = true
		res.Error = err.Error()
		metrics.SearchFallbacksTotal.Inc()
	}

	duration := time.Since(start)
	s.recorder.Record(req.Query(), req.Filters(), res, duration, false)
	metrics.SearchesTotal.WithLabelValues(string(res.Source)).Inc()
	metrics.SearchDuration.WithLabelValues(string(res.Source)).Observe(duration.Seconds())

	// Write-through on every non-hit path, fallback answers included:
	// bounded staleness is preferred over hammering a recovering index.
	if err := s.cache.Put(ctx, key, res); err != nil {
		s.logger.Warn("Failed to cache search result", zap.Error(err))
	}

	return res, nil
}

// SetDemoMode forces (or releases) the fallback path. Releasing has no
// effect when no remote source is configured.
func (s *Service) SetDemoMode(enabled bool) {
	if !enabled && s.remote == nil {
		s.logger.Warn("Cannot leave demo mode: no remote index configured")
		return
	}
	s.demoMode.Store(enabled)
}

// DemoMode reports whether searches are answered from the embedded catalog.
func (s *Service) DemoMode() bool {
	return s.demoMode.Load()
}

// Analytics returns the current analytics summary.
func (s *Service) Analytics() analytics.Summary {
	return s.recorder.Summary()
}

// ClearAnalytics drops the analytics log.
func (s *Service) ClearAnalytics() {
	s.recorder.Clear()
}

// ClearCache drops all cached results.
func (s *Service) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// CacheStats reports cache occupancy.
func (s *Service) CacheStats(ctx context.Context) (cache.Stats, error) {
	return s.cache.Stats(ctx)
}

func (s *Service) activeSource() QuerySource {
	if s.demoMode.Load() {
		return s.fallback
	}
	return s.remote
}

func (s *Service) cacheLookup(ctx context.Context, key string) (result.Result, bool) {
	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		// A broken cache backend degrades to a miss, never to a failed search.
		s.logger.Warn("Cache lookup failed", zap.Error(err))
		return result.Result{}, false
	}
	return cached, ok
}
