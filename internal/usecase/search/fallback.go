package search

import (
	"context"
	"time"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/filter"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/request"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
)

// Compile-time check: FallbackSource implements QuerySource.
var _ QuerySource = (*FallbackSource)(nil)

// FallbackSource answers queries from the embedded catalog by running the
// filter interpreter in-process. It never fails: a malformed filter simply
// constrains nothing.
type FallbackSource struct {
	catalog CatalogReader
}

// NewFallbackSource creates a catalog-backed query source.
func NewFallbackSource(catalog CatalogReader) *FallbackSource {
	return &FallbackSource{catalog: catalog}
}

// Search filters and ranks the catalog, then truncates to the page size.
// Total reflects the full match count before truncation.
func (s *FallbackSource) Search(_ context.Context, req *request.Request) (result.Result, error) {
	start := time.Now()

	expr := filter.Parse(req.Filters())
	matched := filter.Apply(s.catalog.Products(), expr, req.Query())

	total := len(matched)
	if total > req.HitsPerPage() {
		matched = matched[:req.HitsPerPage()]
	}

	return result.Result{
		Hits:             matched,
		Total:            total,
		Page:             0,
		ProcessingTimeMS: int(time.Since(start).Milliseconds()),
		Source:           result.SourceFallback,
	}, nil
}
