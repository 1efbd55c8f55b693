package assistant

import (
	"time"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/analytics"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/cache"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
)

// Product is a catalog item.
type Product struct {
	ObjectID       string   `json:"objectID"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	PriceSale      float64  `json:"price_sale"`
	PriceList      float64  `json:"price_list"`
	RAM            string   `json:"ram"`
	Storage        string   `json:"storage"`
	Processor      string   `json:"processor"`
	ProcessorBrand string   `json:"processor_brand,omitempty"`
	WeightKg       float64  `json:"weight_kg"`
	BatteryHours   float64  `json:"battery_hours"`
	ScreenSize     string   `json:"screen_size"`
	OS             string   `json:"os"`
	InStock        bool     `json:"in_stock"`
	Stock          int      `json:"stock"`
	KeyFeatures    []string `json:"key_features"`
	URL            string   `json:"url"`
	Image          string   `json:"image,omitempty"`
}

// SearchResult is a search response. Fallback marks answers served from the
// embedded catalog after remote exhaustion; Error carries the remote failure
// in that case.
type SearchResult struct {
	Hits             []Product `json:"hits"`
	Total            int       `json:"total"`
	Page             int       `json:"page"`
	ProcessingTimeMS int       `json:"processingTimeMs"`
	Source           string    `json:"source"`
	Fallback         bool      `json:"fallback,omitempty"`
	Error            string    `json:"error,omitempty"`
}

// AnalyticsRecord is one logged search execution.
type AnalyticsRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Query      string    `json:"query"`
	Filters    string    `json:"filters"`
	HitsCount  int       `json:"hitsCount"`
	TotalHits  int       `json:"totalHits"`
	DurationMS int64     `json:"durationMs"`
	FromCache  bool      `json:"fromCache"`
	Source     string    `json:"source"`
}

// AnalyticsSummary aggregates the analytics log.
type AnalyticsSummary struct {
	TotalSearches     int               `json:"totalSearches"`
	CacheHits         int               `json:"cacheHits"`
	CacheHitRate      float64           `json:"cacheHitRate"`
	AverageDurationMS float64           `json:"averageDurationMs"`
	FallbackSearches  int               `json:"fallbackSearches"`
	RecentSearches    []AnalyticsRecord `json:"recentSearches"`
}

// CacheStats describes the current cache occupancy.
type CacheStats struct {
	Entries       int `json:"entries"`
	MaxAgeSeconds int `json:"maxAgeSeconds"`
}

func toInternalProduct(p Product) domain.Product {
	return domain.Product{
		ObjectID:       p.ObjectID,
		Name:           p.Name,
		Brand:          p.Brand,
		PriceSale:      p.PriceSale,
		PriceList:      p.PriceList,
		RAM:            p.RAM,
		Storage:        p.Storage,
		Processor:      p.Processor,
		ProcessorBrand: p.ProcessorBrand,
		WeightKg:       p.WeightKg,
		BatteryHours:   p.BatteryHours,
		ScreenSize:     p.ScreenSize,
		OS:             p.OS,
		InStock:        p.InStock,
		Stock:          p.Stock,
		KeyFeatures:    p.KeyFeatures,
		URL:            p.URL,
		Image:          p.Image,
	}
}

func fromInternalProduct(p domain.Product) Product {
	return Product{
		ObjectID:       p.ObjectID,
		Name:           p.Name,
		Brand:          p.Brand,
		PriceSale:      p.PriceSale,
		PriceList:      p.PriceList,
		RAM:            p.RAM,
		Storage:        p.Storage,
		Processor:      p.Processor,
		ProcessorBrand: p.ProcessorBrand,
		WeightKg:       p.WeightKg,
		BatteryHours:   p.BatteryHours,
		ScreenSize:     p.ScreenSize,
		OS:             p.OS,
		InStock:        p.InStock,
		Stock:          p.Stock,
		KeyFeatures:    p.KeyFeatures,
		URL:            p.URL,
		Image:          p.Image,
	}
}

func toInternalProducts(products []Product) []domain.Product {
	if len(products) == 0 {
		return nil
	}
	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = toInternalProduct(p)
	}
	return out
}

func fromSearchResult(r result.Result) SearchResult {
	hits := make([]Product, len(r.Hits))
	for i, h := range r.Hits {
		hits[i] = fromInternalProduct(h)
	}
	return SearchResult{
		Hits:             hits,
		Total:            r.Total,
		Page:             r.Page,
		ProcessingTimeMS: r.ProcessingTimeMS,
		Source:           string(r.Source),
		Fallback:         r.Fallback,
		Error:            r.Error,
	}
}

func fromSummary(s analytics.Summary) AnalyticsSummary {
	recent := make([]AnalyticsRecord, len(s.RecentSearches))
	for i, rec := range s.RecentSearches {
		recent[i] = AnalyticsRecord{
			ID:         rec.ID,
			Timestamp:  rec.Timestamp,
			Query:      rec.Query,
			Filters:    rec.Filters,
			HitsCount:  rec.HitsCount,
			TotalHits:  rec.TotalHits,
			DurationMS: rec.DurationMS,
			FromCache:  rec.FromCache,
			Source:     string(rec.Source),
		}
	}
	return AnalyticsSummary{
		TotalSearches:     s.TotalSearches,
		CacheHits:         s.CacheHits,
		CacheHitRate:      s.CacheHitRate,
		AverageDurationMS: s.AverageDurationMS,
		FallbackSearches:  s.FallbackSearches,
		RecentSearches:    recent,
	}
}

func fromCacheStats(s cache.Stats) CacheStats {
	return CacheStats{Entries: s.Entries, MaxAgeSeconds: s.MaxAgeSeconds}
}
