// Package analytics keeps a bounded in-process log of search executions for
// operational visibility.
package analytics

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
)

// DefaultCapacity bounds the log; the oldest record is evicted beyond it.
const DefaultCapacity = 1000

// recentWindow is how many records a Summary echoes back.
const recentWindow = 10

// Record is one search execution. Appended only, never mutated.
type Record struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Query      string        `json:"query"`
	Filters    string        `json:"filters"`
	HitsCount  int           `json:"hitsCount"`
	TotalHits  int           `json:"totalHits"`
	DurationMS int64         `json:"durationMs"`
	FromCache  bool          `json:"fromCache"`
	Source     result.Source `json:"source"`
}

// Summary aggregates the current log contents.
type Summary struct {
	TotalSearches     int      `json:"totalSearches"`
	CacheHits         int      `json:"cacheHits"`
	CacheHitRate      float64  `json:"cacheHitRate"`
	AverageDurationMS float64  `json:"averageDurationMs"`
	FallbackSearches  int      `json:"fallbackSearches"`
	RecentSearches    []Record `json:"recentSearches"`
}

// Recorder owns the bounded log. Safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	records  []Record
	capacity int
	now      func() time.Time
}

// NewRecorder creates a recorder. A non-positive capacity selects
// DefaultCapacity.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{
		records:  make([]Record, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

// Record appends one entry, evicting the oldest when the log is full.
func (r *Recorder) Record(query, filters string, res result.Result, duration time.Duration, fromCache bool) {
	rec := Record{
		ID:         uuid.NewString(),
		Timestamp:  r.now().UTC(),
		Query:      query,
		Filters:    filters,
		HitsCount:  len(res.Hits),
		TotalHits:  res.Total,
		DurationMS: duration.Milliseconds(),
		FromCache:  fromCache,
		Source:     res.Source,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) >= r.capacity {
		r.records = append(r.records[1:], rec)
		return
	}
	r.records = append(r.records, rec)
}

// Summary computes aggregates over the current log.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := len(r.records)
	if total == 0 {
		return Summary{RecentSearches: []Record{}}
	}

	var cacheHits, fallbacks int
	var durationSum int64
	for _, rec := range r.records {
		if rec.FromCache {
			cacheHits++
		}
		if rec.Source == result.SourceFallback {
			fallbacks++
		}
		durationSum += rec.DurationMS
	}

	start := total - recentWindow
	if start < 0 {
		start = 0
	}
	recent := make([]Record, total-start)
	copy(recent, r.records[start:])

	return Summary{
		TotalSearches:     total,
		CacheHits:         cacheHits,
		CacheHitRate:      float64(cacheHits) / float64(total),
		AverageDurationMS: float64(durationSum) / float64(total),
		FallbackSearches:  fallbacks,
		RecentSearches:    recent,
	}
}

// Len returns the current log length.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Clear drops all records.
func (r *Recorder) Clear() {
	r.mu.Lock()
	r.records = r.records[:0]
	r.mu.Unlock()
}
