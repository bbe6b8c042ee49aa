package product

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// PageSize is the fixed storefront page size.
const PageSize = 20

// Any is the sentinel the storefront sends for an unconstrained dimension.
const Any = "Any"

// SortKey is the product sort vocabulary.
type SortKey string

const (
	// SortDefault lists newest products first.
	SortDefault   SortKey = ""
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
)

// Filter is a normalized product query. Empty string fields and nil price
// bounds mean "no constraint"; filters compose as a logical AND.
type Filter struct {
	Category    string
	Subcategory string
	Brand       string
	Color       string
	// PriceFrom/PriceTo bound the effective price, in minor units.
	PriceFrom *int64
	PriceTo   *int64
	// Query matches case-insensitively against name and brand.
	Query string
	Sort  SortKey
	// Page is the 1-based page number.
	Page int
}

// ParseFilter normalizes raw query parameters into a Filter. Absent, empty
// and "Any" values leave a dimension unconstrained; malformed numeric input
// is treated as absent rather than rejected.
func ParseFilter(q url.Values) Filter {
	return Filter{
		Category:    dimension(q.Get("category")),
		Subcategory: dimension(q.Get("subcategory")),
		Brand:       dimension(q.Get("brand")),
		Color:       dimension(q.Get("color")),
		PriceFrom:   ParsePrice(q.Get("priceFrom")),
		PriceTo:     ParsePrice(q.Get("priceTo")),
		Query:       strings.TrimSpace(q.Get("q")),
		Sort:        parseSort(q.Get("sort")),
		Page:        ParsePage(q.Get("pn")),
	}
}

func dimension(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == Any {
		return ""
	}
	return raw
}

func parseSort(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc:
		return SortKey(raw)
	default:
		return SortDefault
	}
}

// ParsePrice parses a non-negative price into minor units. Returns nil for
// empty, malformed or negative input.
func ParsePrice(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}
	v := d.IntPart()
	return &v
}

// ParsePage parses a 1-based page number, clamping anything unusable to 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
