package directus

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sezikua/TruckTyres-GE/internal/model"
)

func entityToModel(e *productEntity) *model.Product {
	if e == nil {
		return nil
	}

	out := &model.Product{
		ID:           e.ID,
		SKU:          e.SKU,
		Slug:         e.Slug,
		Name:         e.ProductName,
		Model:        e.Model,
		Size:         e.Size,
		Diameter:     e.Diameter,
		Category:     e.Category,
		Segment:      e.Segment,
		RegularPrice: parsePrice(e.RegularPrice),
		StockStatus:  model.StockStatus(e.Warehouse),
	}

	if e.DiscountPrice != nil {
		d := parsePrice(*e.DiscountPrice)
		// The store promises discount < regular; a violating record
		// degrades to "no discount" instead of rendering nonsense.
		if d.IsPositive() && d.LessThan(out.RegularPrice) {
			out.DiscountPrice = &d
		}
	}
	if e.ProductImage != nil {
		out.ImageRef = *e.ProductImage
	}
	if e.Description != nil {
		out.Description = *e.Description
	}
	if e.Specifications != nil {
		out.Specifications = *e.Specifications
	}

	return out
}

func entitiesToModels(entities []productEntity) []model.Product {
	out := make([]model.Product, 0, len(entities))
	for i := range entities {
		out = append(out, *entityToModel(&entities[i]))
	}

	return out
}

func parsePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}

	return d
}

// clauseParams serializes compiled clauses into the store's
// filter[field][op] query parameters. An Or clause becomes an indexed
// filter[_or][i][field][op] group.
func clauseParams(clauses []model.Clause) url.Values {
	params := url.Values{}
	for _, cl := range clauses {
		if len(cl.Or) > 0 {
			for i, sub := range cl.Or {
				key := fmt.Sprintf("filter[_or][%d][%s][%s]", i, sub.Field, sub.Op)
				params.Set(key, strings.Join(sub.Values, ","))
			}
			continue
		}

		key := fmt.Sprintf("filter[%s][%s]", cl.Field, cl.Op)
		params.Set(key, strings.Join(cl.Values, ","))
	}

	return params
}
