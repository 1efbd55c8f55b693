package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_NoOptions_DemoMode(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if !c.DemoMode() {
		t.Error("expected demo mode without credentials")
	}

	res, err := c.SearchProducts(context.Background(), SearchParams{Query: "laptop"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Source != "fallback" {
		t.Errorf("source = %q, want fallback", res.Source)
	}
	if len(res.Hits) == 0 {
		t.Error("expected hits from the embedded catalog")
	}
}

func TestSearchProducts_Filters(t *testing.T) {
	c, err := New(WithCatalog([]Product{
		{ObjectID: "a", Name: "Portatil HP", Brand: "HP", PriceSale: 2000000, InStock: true},
		{ObjectID: "b", Name: "Portatil DELL", Brand: "DELL", PriceSale: 4000000, InStock: true},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	res, err := c.SearchProducts(context.Background(), SearchParams{
		Filters: "price_sale < 3000000",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 1 || len(res.Hits) != 1 {
		t.Fatalf("total = %d, hits = %d, want 1 and 1", res.Total, len(res.Hits))
	}
	if res.Hits[0].ObjectID != "a" {
		t.Errorf("hit = %q, want a", res.Hits[0].ObjectID)
	}
}

func TestSearchProducts_RemoteAndCache(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"hits":   []map[string]any{{"objectID": "r1", "name": "Portatil ASUS"}},
			"nbHits": 1,
		})
	}))
	defer srv.Close()

	c, err := New(
		WithAlgolia("APP1", "sk-test", "products"),
		WithBaseURL(srv.URL),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.DemoMode() {
		t.Fatal("expected remote mode with credentials")
	}

	for i := 0; i < 2; i++ {
		res, err := c.SearchProducts(context.Background(), SearchParams{Query: "asus"})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if res.Source != "remote" {
			t.Errorf("source = %q, want remote", res.Source)
		}
	}

	if calls != 1 {
		t.Errorf("remote calls = %d, want 1 (second search served from cache)", calls)
	}

	summary := c.Analytics()
	if summary.TotalSearches != 2 || summary.CacheHits != 1 {
		t.Errorf("summary = %+v, want 2 searches with 1 cache hit", summary)
	}
}

func TestSearchProducts_FallbackOnRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(
		WithAlgolia("APP1", "sk-test", "products"),
		WithBaseURL(srv.URL),
		WithRetries(2, 1), // 1ns delay keeps the test fast
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	res, err := c.SearchProducts(context.Background(), SearchParams{Query: "laptop"})
	if err != nil {
		t.Fatalf("expected degradation, got error: %v", err)
	}
	if !res.Fallback || res.Source != "fallback" {
		t.Errorf("result = %+v, want flagged fallback", res)
	}
	if res.Error == "" {
		t.Error("expected the remote failure to be echoed in the result")
	}
}

func TestSearchProducts_FallbackDisabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(
		WithAlgolia("APP1", "sk-test", "products"),
		WithBaseURL(srv.URL),
		WithRetries(2, 1),
		WithFallbackDisabled(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if _, err := c.SearchProducts(context.Background(), SearchParams{Query: "laptop"}); err == nil {
		t.Fatal("expected remote failure to propagate")
	}
}

func TestSetDemoMode_PinnedWithoutRemote(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	c.SetDemoMode(false)
	if !c.DemoMode() {
		t.Error("demo mode must stay pinned without a remote index")
	}
}

func TestCacheStatsAndClear(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if _, err := c.SearchProducts(context.Background(), SearchParams{Query: "laptop"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	stats, err := c.CacheStats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Entries != 1 {
		t.Errorf("entries = %d, want 1", stats.Entries)
	}

	if err := c.ClearCache(context.Background()); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	stats, err = c.CacheStats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("entries after clear = %d, want 0", stats.Entries)
	}
}
