// Package catalog holds the embedded fallback product dataset served when the
// remote index is unreachable or unconfigured.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
)

// Catalog is an in-memory product collection. Reads and reloads may happen
// concurrently; Products always returns a consistent snapshot.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	logger   *zap.Logger
}

// NewEmbedded creates a catalog backed by the built-in demo dataset.
func NewEmbedded(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{products: demoProducts(), logger: logger}
}

// NewFromFile creates a catalog loaded from a JSON file holding an array of
// products. An unreadable or empty file is an error, not a silent fallback to
// the embedded dataset.
func NewFromFile(path string, logger *zap.Logger) (*Catalog, error) {
	c := NewEmbedded(logger)
	if err := c.Reload(path); err != nil {
		return nil, err
	}
	return c, nil
}

// NewStatic creates a catalog from the given products (used in tests and by
// embedders supplying their own dataset).
func NewStatic(products []domain.Product, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	snapshot := make([]domain.Product, len(products))
	copy(snapshot, products)
	return &Catalog{products: snapshot, logger: logger}
}

// Products returns a copy of the current dataset in insertion order.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]domain.Product, len(c.products))
	copy(snapshot, c.products)
	return snapshot
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Reload replaces the dataset with the contents of a JSON file. The current
// dataset is kept untouched on any error.
func (c *Catalog) Reload(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", path, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(products) == 0 {
		return fmt.Errorf("catalog %s contains no products", path)
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	c.logger.Info("Catalog reloaded",
		zap.String("path", path),
		zap.Int("products", len(products)),
	)
	return nil
}
