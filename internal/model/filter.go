package model

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 30
)

// FilterSpec is a normalized, request-scoped description of catalog
// query constraints. Dimensions combine with AND across each other and
// OR within a set; an absent dimension contributes no constraint.
type FilterSpec struct {
	Categories  []string
	Segments    []string
	SearchText  string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	StockStatus StockStatus
	Size        string
	Diameter    string

	Page  int
	Limit int
}

// ParseFilterSpec builds a FilterSpec from raw query parameters.
// Numeric fields that fail to parse are treated as absent; page and
// limit fall back to their defaults on parse failure or non-positive
// values. Set fields are comma-separated, trimmed and deduplicated.
func ParseFilterSpec(q url.Values) FilterSpec {
	spec := FilterSpec{
		Categories:  parseSet(q.Get("categories"), q.Get("category")),
		Segments:    parseSet(q.Get("segments"), q.Get("segment")),
		SearchText:  strings.TrimSpace(q.Get("search")),
		PriceMin:    parsePrice(q.Get("minPrice")),
		PriceMax:    parsePrice(q.Get("maxPrice")),
		StockStatus: parseStock(q.Get("warehouse")),
		Size:        strings.TrimSpace(q.Get("size")),
		Diameter:    strings.TrimSpace(q.Get("diameter")),
		Page:        parsePositive(q.Get("page"), DefaultPage),
		Limit:       parsePositive(q.Get("limit"), DefaultLimit),
	}

	return spec
}

func parseSet(raw ...string) []string {
	values := make([]string, 0)
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	if len(values) == 0 {
		return nil
	}

	values = lo.Uniq(values)
	sort.Strings(values)

	return values
}

func parsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}

	return &d
}

func parseStock(raw string) StockStatus {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, StockAll) {
		return ""
	}

	return StockStatus(raw)
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}

	return n
}
