package request

import (
	"encoding/json"
	"strings"
)

// Defaults and limits for search parameters.
const (
	DefaultHitsPerPage = 5
	MaxHitsPerPage     = 50
	MaxQueryLength     = 512
)

// Request is a normalized search query. Missing or invalid fields are
// defaulted, never rejected: upstream filter text is authored by a language
// model and must not be able to break the search path.
type Request struct {
	query       string
	filters     string
	hitsPerPage int
	attributes  []string
}

// New normalizes search parameters into an immutable Request.
// Defaults: query="", filters="", hitsPerPage=5. hitsPerPage is clamped to
// [1, MaxHitsPerPage]; over-long queries are truncated.
func New(query, filters string, hitsPerPage int, attributes []string) Request {
	query = strings.TrimSpace(query)
	if len(query) > MaxQueryLength {
		query = query[:MaxQueryLength]
	}
	filters = strings.TrimSpace(filters)
	if hitsPerPage <= 0 {
		hitsPerPage = DefaultHitsPerPage
	}
	if hitsPerPage > MaxHitsPerPage {
		hitsPerPage = MaxHitsPerPage
	}
	var attrs []string
	if len(attributes) > 0 {
		attrs = make([]string, len(attributes))
		copy(attrs, attributes)
	}
	return Request{
		query:       query,
		filters:     filters,
		hitsPerPage: hitsPerPage,
		attributes:  attrs,
	}
}

// Query returns the free-text query.
func (r *Request) Query() string { return r.query }

// Filters returns the raw filter expression.
func (r *Request) Filters() string { return r.filters }

// HitsPerPage returns the page size.
func (r *Request) HitsPerPage() int { return r.hitsPerPage }

// Attributes returns the attributesToRetrieve projection (nil = all).
func (r *Request) Attributes() []string { return r.attributes }

// fingerprint is the canonical serialization of the fields that determine a
// result set. Field order is fixed by the struct, so encoding/json produces a
// deterministic key.
type fingerprint struct {
	Query       string `json:"query"`
	Filters     string `json:"filters"`
	HitsPerPage int    `json:"hitsPerPage"`
}

// Fingerprint derives the cache key for this request. Attributes are
// deliberately excluded: projection does not change the result set, so two
// requests differing only in attributesToRetrieve share a cache entry.
func (r *Request) Fingerprint() string {
	b, _ := json.Marshal(fingerprint{
		Query:       r.query,
		Filters:     r.filters,
		HitsPerPage: r.hitsPerPage,
	})
	return string(b)
}
