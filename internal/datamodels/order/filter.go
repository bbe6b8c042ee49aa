package order

import (
	"net/url"
	"strconv"
	"strings"
)

// PageSize is the fixed dashboard page size for orders.
const PageSize = 10

// SortKey is the order sort vocabulary.
type SortKey string

const (
	// SortDefault lists latest orders first (dateDesc).
	SortDefault   SortKey = ""
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
	SortDateAsc   SortKey = "dateAsc"
)

// Filter is a normalized order query. A nil OrderID means "no constraint".
type Filter struct {
	OrderID *int64
	Sort    SortKey
	// Page is the 1-based page number.
	Page int
}

// ParseFilter normalizes raw dashboard query parameters. Malformed order ids
// are treated as absent, unknown sort keys fall back to the default.
func ParseFilter(q url.Values) Filter {
	return Filter{
		OrderID: parseID(q.Get("orderId")),
		Sort:    parseSort(q.Get("sort")),
		Page:    parsePage(q.Get("pn")),
	}
}

func parseID(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return nil
	}
	return &id
}

func parseSort(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc, SortDateAsc:
		return SortKey(raw)
	default:
		return SortDefault
	}
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
