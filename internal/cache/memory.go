package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
)

// Compile-time check: Memory implements Cache.
var _ Cache = (*Memory)(nil)

type entry struct {
	data      result.Result
	timestamp time.Time
}

// Memory is an in-process cache. Expired entries are not proactively purged:
// they are overwritten on the next Put for the same fingerprint, and the
// cardinality is bounded by the distinct fingerprints seen in a session.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates an in-memory cache. A non-positive ttl selects DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns a valid cached result or a miss.
func (m *Memory) Get(_ context.Context, key string) (result.Result, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || m.now().Sub(e.timestamp) >= m.ttl {
		return result.Result{}, false, nil
	}
	return e.data, true, nil
}

// Put stores a result under key, replacing any previous entry.
func (m *Memory) Put(_ context.Context, key string, res result.Result) error {
	m.mu.Lock()
	m.entries[key] = entry{data: res, timestamp: m.now()}
	m.mu.Unlock()
	return nil
}

// Clear drops all entries, valid and stale alike.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]entry)
	m.mu.Unlock()
	return nil
}

// Stats reports occupancy including stale entries still awaiting overwrite.
func (m *Memory) Stats(_ context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{
		Entries:       len(m.entries),
		MaxAgeSeconds: int(m.ttl.Seconds()),
	}, nil
}

// Close is a no-op for the in-memory cache.
func (m *Memory) Close() {}
