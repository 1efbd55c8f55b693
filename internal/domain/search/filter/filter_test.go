package filter

import (
	"testing"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ObjectID: "p1", Name: "HP Laptop 15", Brand: "HP", PriceSale: 2499000, WeightKg: 1.69, BatteryHours: 8, InStock: true, Stock: 45},
		{ObjectID: "p2", Name: "ASUS VivoBook 14", Brand: "ASUS", PriceSale: 1999000, WeightKg: 1.40, BatteryHours: 10, InStock: true, Stock: 23},
		{ObjectID: "p3", Name: "Lenovo IdeaPad 3", Brand: "LENOVO", PriceSale: 1799000, WeightKg: 1.70, BatteryHours: 7.5, InStock: false, Stock: 0},
		{ObjectID: "p4", Name: "MacBook Air 13", Brand: "APPLE", PriceSale: 4599000, WeightKg: 1.24, BatteryHours: 15, InStock: true, Stock: 12},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ObjectID
	}
	return out
}

func TestParse_NumericAtoms(t *testing.T) {
	expr := Parse("price_sale < 2000000 AND battery_hours > 7")
	if len(expr.Conditions()) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(expr.Conditions()))
	}
	if expr.Conditions()[0].Field() != "price_sale" || expr.Conditions()[0].Operator() != OpLess {
		t.Errorf("unexpected first condition: %+v", expr.Conditions()[0])
	}
	if expr.Conditions()[1].Field() != "battery_hours" || expr.Conditions()[1].Operator() != OpGreater {
		t.Errorf("unexpected second condition: %+v", expr.Conditions()[1])
	}
}

func TestParse_MalformedAtomsAreDropped(t *testing.T) {
	cases := []struct {
		name    string
		filters string
		want    int
	}{
		{"empty", "", 0},
		{"garbage", "cheapest AND best one", 0},
		{"unknown field", "cpu_cores > 4", 0},
		{"unknown match field", "color:red", 0},
		{"half garbage", "price_sale < 2000000 AND cheapest", 1},
		{"bad number", "price_sale < abc", 0},
		{"bad bool", "in_stock:maybe", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expr := Parse(tc.filters)
			if got := len(expr.Conditions()); got != tc.want {
				t.Errorf("Parse(%q): expected %d conditions, got %d", tc.filters, tc.want, got)
			}
		})
	}
}

func TestParse_CaseInsensitiveAnd(t *testing.T) {
	expr := Parse("price_sale < 3000000 and weight_kg < 1.5")
	if len(expr.Conditions()) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(expr.Conditions()))
	}
}

func TestApply_PriceFilter(t *testing.T) {
	got := Apply(testProducts(), Parse("price_sale < 2000000"), "")
	for _, p := range got {
		if p.PriceSale >= 2000000 {
			t.Errorf("product %s has price %v, expected < 2000000", p.ObjectID, p.PriceSale)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %v", ids(got))
	}
}

func TestApply_WeightAndBatteryFilter(t *testing.T) {
	got := Apply(testProducts(), Parse("weight_kg < 1.5 AND battery_hours > 9"), "")
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %v", ids(got))
	}
	for _, p := range got {
		if p.WeightKg >= 1.5 || p.BatteryHours <= 9 {
			t.Errorf("product %s does not satisfy filters: weight=%v battery=%v", p.ObjectID, p.WeightKg, p.BatteryHours)
		}
	}
}

func TestApply_BrandMatchIsCaseInsensitive(t *testing.T) {
	got := Apply(testProducts(), Parse("brand:apple"), "")
	if len(got) != 1 || got[0].ObjectID != "p4" {
		t.Fatalf("expected [p4], got %v", ids(got))
	}

	if got = Apply(testProducts(), Parse("brand:SONY"), ""); len(got) != 0 {
		t.Fatalf("expected no hits for absent brand, got %v", ids(got))
	}
}

func TestApply_InStock(t *testing.T) {
	got := Apply(testProducts(), Parse("in_stock:true"), "")
	if len(got) != 3 {
		t.Fatalf("expected 3 in-stock hits, got %v", ids(got))
	}

	got = Apply(testProducts(), Parse("in_stock:false"), "")
	if len(got) != 1 || got[0].ObjectID != "p3" {
		t.Fatalf("expected [p3], got %v", ids(got))
	}
}

func TestApply_SortedByPriceAscending(t *testing.T) {
	got := Apply(testProducts(), Expression{}, "")
	for i := 1; i < len(got); i++ {
		if got[i-1].PriceSale > got[i].PriceSale {
			t.Fatalf("results not sorted by price: %v", ids(got))
		}
	}
}

func TestApply_QueryTokenMatch(t *testing.T) {
	got := Apply(testProducts(), Expression{}, "vivobook gaming")
	if len(got) != 1 || got[0].ObjectID != "p2" {
		t.Fatalf("expected [p2], got %v", ids(got))
	}
}

func TestApply_GenericQueryDoesNotFilter(t *testing.T) {
	got := Apply(testProducts(), Expression{}, "laptop")
	if len(got) != len(testProducts()) {
		t.Fatalf("generic term must pass everything, got %v", ids(got))
	}
}

func TestApply_MalformedFilterPassesEverything(t *testing.T) {
	got := Apply(testProducts(), Parse("best value for money"), "")
	if len(got) != len(testProducts()) {
		t.Fatalf("malformed filter must not constrain, got %v", ids(got))
	}
}
