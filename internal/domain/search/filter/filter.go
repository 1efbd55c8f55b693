package filter

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
)

// Fields the interpreter understands. Atoms over any other field, and atoms
// that do not parse at all, are dropped rather than rejected: the filter text
// comes from a language model and must never be able to fail a search.
var numericFields = map[string]func(domain.Product) float64{
	"price_sale":    func(p domain.Product) float64 { return p.PriceSale },
	"price_list":    func(p domain.Product) float64 { return p.PriceList },
	"weight_kg":     func(p domain.Product) float64 { return p.WeightKg },
	"battery_hours": func(p domain.Product) float64 { return p.BatteryHours },
	"stock":         func(p domain.Product) float64 { return float64(p.Stock) },
}

var matchFields = map[string]func(domain.Product) string{
	"brand": func(p domain.Product) string { return p.Brand },
	"os":    func(p domain.Product) string { return p.OS },
}

// genericQueryTerm is the catch-all term the conversational layer sends when
// the user gave no product keywords; it must not narrow the fallback catalog.
const genericQueryTerm = "laptop"

// Op is a comparison operator of an atomic predicate.
type Op string

const (
	// OpLess is strict numeric less-than.
	OpLess Op = "<"
	// OpGreater is strict numeric greater-than.
	OpGreater Op = ">"
	// OpMatch is exact case-insensitive equality.
	OpMatch Op = ":"
)

// Condition is a single field-operator-literal predicate.
type Condition struct {
	field   string
	op      Op
	number  float64
	literal string
	boolean bool
	isBool  bool
}

// Field returns the field name.
func (c Condition) Field() string { return c.field }

// Operator returns the comparison operator.
func (c Condition) Operator() Op { return c.op }

// Matches reports whether the product satisfies the condition.
func (c Condition) Matches(p domain.Product) bool {
	switch c.op {
	case OpLess:
		return numericFields[c.field](p) < c.number
	case OpGreater:
		return numericFields[c.field](p) > c.number
	case OpMatch:
		if c.isBool {
			return p.InStock == c.boolean
		}
		return strings.EqualFold(matchFields[c.field](p), c.literal)
	}
	return true
}

// Expression is an AND-conjunction of atomic predicates.
type Expression struct {
	conditions []Condition
}

// Conditions returns the parsed predicates.
func (e Expression) Conditions() []Condition { return e.conditions }

// IsEmpty reports whether the expression constrains nothing.
func (e Expression) IsEmpty() bool { return len(e.conditions) == 0 }

var (
	numericAtomRe = regexp.MustCompile(`^(\w+)\s*([<>])\s*(\d+(?:\.\d+)?)$`)
	matchAtomRe   = regexp.MustCompile(`^(\w+)\s*:\s*(\S+)$`)
	andSplitRe    = regexp.MustCompile(`(?i)\s+AND\s+`)
)

// Parse interprets a filter string of AND-joined atoms into an Expression.
// Supported atoms: `field < number`, `field > number` over numeric fields,
// `brand:VALUE` / `os:VALUE` exact matches, and `in_stock:true|false`.
// Unrecognized or malformed atoms are silently ignored.
func Parse(filters string) Expression {
	filters = strings.TrimSpace(filters)
	if filters == "" {
		return Expression{}
	}

	var conditions []Condition
	for _, atom := range andSplitRe.Split(filters, -1) {
		atom = strings.TrimSpace(atom)
		if atom == "" {
			continue
		}
		if c, ok := parseAtom(atom); ok {
			conditions = append(conditions, c)
		}
	}
	return Expression{conditions: conditions}
}

func parseAtom(atom string) (Condition, bool) {
	if m := numericAtomRe.FindStringSubmatch(atom); m != nil {
		field := strings.ToLower(m[1])
		if _, ok := numericFields[field]; !ok {
			return Condition{}, false
		}
		n, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return Condition{}, false
		}
		return Condition{field: field, op: Op(m[2]), number: n}, true
	}

	if m := matchAtomRe.FindStringSubmatch(atom); m != nil {
		field := strings.ToLower(m[1])
		value := m[2]
		if field == "in_stock" {
			b, err := strconv.ParseBool(strings.ToLower(value))
			if err != nil {
				return Condition{}, false
			}
			return Condition{field: field, op: OpMatch, boolean: b, isBool: true}, true
		}
		if _, ok := matchFields[field]; !ok {
			return Condition{}, false
		}
		return Condition{field: field, op: OpMatch, literal: value}, true
	}

	return Condition{}, false
}

// Apply returns the products satisfying every condition of the expression and
// at least one token of the free-text query, sorted ascending by sale price.
// The sort is stable: ties keep catalog order.
func Apply(products []domain.Product, expr Expression, query string) []domain.Product {
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesAll(p, expr) && matchesQuery(p, query) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PriceSale < matched[j].PriceSale
	})
	return matched
}

func matchesAll(p domain.Product, expr Expression) bool {
	for _, c := range expr.conditions {
		if !c.Matches(p) {
			return false
		}
	}
	return true
}

// matchesQuery keeps products whose name contains, case-insensitively, at
// least one whitespace-delimited token of the query. Token containment, not
// relevance ranking: this only backs the fallback path.
func matchesQuery(p domain.Product, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || query == genericQueryTerm {
		return true
	}
	name := strings.ToLower(p.Name)
	for _, token := range strings.Fields(query) {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}
