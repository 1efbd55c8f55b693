package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/request"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/transport/algolia"
)

// Retry bounds for the remote gateway. Linear backoff: the wait before
// attempt n+1 is RetryDelay * n, so worst-case added latency is 3s.
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// Compile-time check: RemoteSource implements QuerySource.
var _ QuerySource = (*RemoteSource)(nil)

// RemoteSource queries the external index with bounded retries. On
// exhaustion it propagates the failure: degrading to the fallback catalog is
// the orchestrator's decision, not this component's.
type RemoteSource struct {
	client     QueryClient
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewRemoteSource creates a remote query source.
func NewRemoteSource(client QueryClient, maxRetries int, retryDelay time.Duration, logger *zap.Logger) *RemoteSource {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteSource{
		client:     client,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

// Search runs the query with up to maxRetries attempts.
func (s *RemoteSource) Search(ctx context.Context, req *request.Request) (result.Result, error) {
	params := toQueryParams(req)

	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		resp, err := s.client.Query(ctx, params)
		if err == nil {
			return result.Result{
				Hits:             resp.Hits,
				Total:            resp.NbHits,
				Page:             resp.Page,
				ProcessingTimeMS: resp.ProcessingTimeMS,
				Source:           result.SourceRemote,
			}, nil
		}
		lastErr = err

		if attempt == s.maxRetries {
			break
		}
		s.logger.Warn("Remote search attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", s.maxRetries),
			zap.Error(err),
		)
		if err := s.wait(ctx, s.retryDelay*time.Duration(attempt)); err != nil {
			return result.Result{}, fmt.Errorf("retry wait: %w", err)
		}
	}

	return result.Result{}, domain.NewRemoteSearchError(s.maxRetries, lastErr)
}

func toQueryParams(req *request.Request) algolia.QueryParams {
	return algolia.QueryParams{
		Query:                req.Query(),
		HitsPerPage:          req.HitsPerPage(),
		Filters:              req.Filters(),
		AttributesToRetrieve: req.Attributes(),
	}
}

func (s *RemoteSource) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
