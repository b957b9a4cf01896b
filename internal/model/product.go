package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StockStatus is the warehouse availability convention of the catalog
// store. Values outside the known set are kept verbatim and rank last.
type StockStatus string

const (
	StockInStock    StockStatus = "in stock"
	StockOnOrder    StockStatus = "on order"
	StockOutOfStock StockStatus = "out of stock"
)

// StockAll is a recognized request sentinel meaning "no constraint".
// It is never a real status.
const StockAll = "all"

// Rank orders statuses for availability-first sorting:
// in stock < on order < out of stock < anything else.
func (s StockStatus) Rank() int {
	switch StockStatus(strings.ToLower(strings.TrimSpace(string(s)))) {
	case StockInStock:
		return 0
	case StockOnOrder:
		return 1
	case StockOutOfStock:
		return 2
	default:
		return 3
	}
}

// Product is a read-only projection of a catalog store item.
type Product struct {
	ID             int64
	SKU            string
	Slug           string
	Name           string
	Model          string
	Size           string
	Diameter       string
	Category       string
	Segment        string
	RegularPrice   decimal.Decimal
	DiscountPrice  *decimal.Decimal
	StockStatus    StockStatus
	ImageRef       string
	Description    string
	Specifications string
}

// Page is the paginated result envelope. It is computed once per
// request and never mutated.
type Page struct {
	Items      []Product
	Page       int
	Limit      int
	TotalItems int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}
