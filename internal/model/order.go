package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderKind string

const (
	OrderQuick OrderKind = "quick"
	OrderFull  OrderKind = "full"
)

// OrderItem carries the price snapshot captured at add-to-cart time.
// A later price change in the catalog does not alter the order total.
type OrderItem struct {
	Name     string
	Model    string
	Size     string
	Quantity int
	Price    decimal.Decimal
}

// Order is the tagged union of the two submission shapes. Kind
// determines which fields are required: quick needs first name and
// phone only, full additionally last name, region, city and a
// non-empty delivery set.
type Order struct {
	Kind             OrderKind
	FirstName        string
	LastName         string
	Phone            string
	Email            string
	Region           string
	City             string
	Delivery         []string
	CarrierWarehouse string
	Message          string
	Items            []OrderItem
	Total            *decimal.Decimal
}

// OrderReceipt is returned for an accepted order. The reference is
// included in the delivered notification message.
type OrderReceipt struct {
	Reference uuid.UUID
}

type ContactRequest struct {
	Name    string
	Phone   string
	Email   string
	Message string
}
