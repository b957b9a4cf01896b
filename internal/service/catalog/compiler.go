package service

import (
	"github.com/sezikua/TruckTyres-GE/internal/model"
)

// Catalog store field names.
const (
	fieldCategory = "Category"
	fieldSegment  = "Segment"
	fieldName     = "product_name"
	fieldModel    = "model"
	fieldSize     = "size"
	fieldSKU      = "sku"
	fieldPrice    = "regular_price"
	fieldStock    = "warehouse"
	fieldDiameter = "diameter"
)

// searchFields are the store fields a free-text search matches,
// OR-combined, in this order.
var searchFields = []string{fieldName, fieldModel, fieldSize, fieldSKU}

// CompileQuery maps a FilterSpec to the ordered predicate clause list
// sent to the catalog store. The clause order is stable (categories,
// segments, search, price-min, price-max, stock, size, diameter) so
// identical specs always compile to identical queries. An empty spec
// compiles to no clauses, meaning "return everything".
func CompileQuery(spec model.FilterSpec) []model.Clause {
	clauses := make([]model.Clause, 0, 8)

	if len(spec.Categories) > 0 {
		clauses = append(clauses, model.Clause{
			Field:  fieldCategory,
			Op:     model.OpIn,
			Values: spec.Categories,
		})
	}

	if len(spec.Segments) > 0 {
		clauses = append(clauses, model.Clause{
			Field:  fieldSegment,
			Op:     model.OpIn,
			Values: spec.Segments,
		})
	}

	if spec.SearchText != "" {
		or := make([]model.Clause, 0, len(searchFields))
		for _, f := range searchFields {
			or = append(or, model.Clause{
				Field:  f,
				Op:     model.OpContains,
				Values: []string{spec.SearchText},
			})
		}
		clauses = append(clauses, model.Clause{Or: or})
	}

	if spec.PriceMin != nil {
		clauses = append(clauses, model.Clause{
			Field:  fieldPrice,
			Op:     model.OpGTE,
			Values: []string{spec.PriceMin.String()},
		})
	}

	if spec.PriceMax != nil {
		clauses = append(clauses, model.Clause{
			Field:  fieldPrice,
			Op:     model.OpLTE,
			Values: []string{spec.PriceMax.String()},
		})
	}

	if spec.StockStatus != "" {
		clauses = append(clauses, model.Clause{
			Field:  fieldStock,
			Op:     model.OpEq,
			Values: []string{string(spec.StockStatus)},
		})
	}

	if spec.Size != "" {
		clauses = append(clauses, model.Clause{
			Field:  fieldSize,
			Op:     model.OpEq,
			Values: []string{spec.Size},
		})
	}

	if spec.Diameter != "" {
		clauses = append(clauses, model.Clause{
			Field:  fieldDiameter,
			Op:     model.OpEq,
			Values: []string{spec.Diameter},
		})
	}

	return clauses
}
