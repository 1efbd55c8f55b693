package domain

// Product is a catalog item as stored in the remote index and in the
// embedded fallback catalog. Both sources must satisfy the same shape.
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
