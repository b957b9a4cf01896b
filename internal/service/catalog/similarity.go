package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sezikua/TruckTyres-GE/internal/model"
)

// DefaultSimilarLimit bounds the "similar products" result.
const DefaultSimilarLimit = 12

// RankSimilar orders products availability-first (in stock < on order
// < out of stock < unknown) with a locale-aware name tie-break, drops
// the excluded product id, and truncates to the bound only after
// sorting so an in-stock item is never lost to a sorted-later one.
func RankSimilar(products []model.Product, excludeID int64, limit int) []model.Product {
	if limit < 1 {
		limit = DefaultSimilarLimit
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if excludeID != 0 && p.ID == excludeID {
			continue
		}
		out = append(out, p)
	}

	coll := collate.New(language.Ukrainian)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].StockStatus.Rank(), out[j].StockStatus.Rank()
		if ri != rj {
			return ri < rj
		}
		return coll.CompareString(out[i].Name, out[j].Name) < 0
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}
