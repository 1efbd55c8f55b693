package search

import (
	"context"
	"testing"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/catalog"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/request"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
)

func fallbackSearch(t *testing.T, query, filters string, hitsPerPage int) result.Result {
	t.Helper()
	src := NewFallbackSource(catalog.NewEmbedded(nil))
	req := request.New(query, filters, hitsPerPage, nil)
	res, err := src.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("fallback search must not fail: %v", err)
	}
	return res
}

func TestFallbackSource_NoFiltersReturnsWholeCatalog(t *testing.T) {
	res := fallbackSearch(t, "", "", 50)
	if res.Source != result.SourceFallback {
		t.Errorf("source = %s, expected fallback", res.Source)
	}
	if res.Total == 0 || len(res.Hits) != res.Total {
		t.Errorf("expected full catalog, total=%d hits=%d", res.Total, len(res.Hits))
	}
}

func TestFallbackSource_BudgetFilter(t *testing.T) {
	budget := 2000000.0
	res := fallbackSearch(t, "", "price_sale < 2000000", 50)
	if res.Total == 0 {
		t.Fatal("expected some products under budget")
	}
	for _, p := range res.Hits {
		if p.PriceSale >= budget {
			t.Errorf("product %s priced %v violates budget filter", p.ObjectID, p.PriceSale)
		}
	}
}

func TestFallbackSource_InfeasibleWeight(t *testing.T) {
	// Every demo product weighs at least 1.24kg.
	if res := fallbackSearch(t, "", "weight_kg < 0.5", 50); res.Total != 0 {
		t.Errorf("expected zero hits, got %d", res.Total)
	}
}

func TestFallbackSource_InfeasibleBattery(t *testing.T) {
	if res := fallbackSearch(t, "", "battery_hours > 50", 50); res.Total != 0 {
		t.Errorf("expected zero hits, got %d", res.Total)
	}
}

func TestFallbackSource_InfeasibleCombination(t *testing.T) {
	res := fallbackSearch(t, "", "price_sale < 1500000 AND weight_kg < 1.0 AND battery_hours > 20", 50)
	if res.Total != 0 {
		t.Errorf("expected zero hits for infeasible combination, got %d", res.Total)
	}
}

func TestFallbackSource_BrandFilter(t *testing.T) {
	res := fallbackSearch(t, "", "brand:APPLE", 50)
	if res.Total == 0 {
		t.Fatal("expected APPLE products in the demo catalog")
	}
	for _, p := range res.Hits {
		if p.Brand != "APPLE" {
			t.Errorf("product %s has brand %s", p.ObjectID, p.Brand)
		}
	}

	if res := fallbackSearch(t, "", "brand:SONY", 50); res.Total != 0 {
		t.Errorf("expected zero hits for absent brand, got %d", res.Total)
	}
}

func TestFallbackSource_TruncatesToPageSize(t *testing.T) {
	res := fallbackSearch(t, "", "", 2)
	if len(res.Hits) > 2 {
		t.Errorf("hits=%d exceeds hitsPerPage=2", len(res.Hits))
	}
	if res.Total < len(res.Hits) {
		t.Errorf("total=%d must count matches before truncation", res.Total)
	}
	if res.Total <= 2 {
		t.Errorf("expected more matches than the page size, total=%d", res.Total)
	}
}

func TestFallbackSource_SortedByPrice(t *testing.T) {
	res := fallbackSearch(t, "", "", 50)
	for i := 1; i < len(res.Hits); i++ {
		if res.Hits[i-1].PriceSale > res.Hits[i].PriceSale {
			t.Fatal("hits must be sorted ascending by price_sale")
		}
	}
}
