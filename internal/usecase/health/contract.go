package health

import "context"

// CachePinger checks cache backend availability. The in-memory cache needs no
// check; only networked backends implement this.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// ModeReader reports whether searches are currently served from the embedded
// catalog.
type ModeReader interface {
	DemoMode() bool
}
