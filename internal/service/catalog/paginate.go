package service

import (
	"github.com/sezikua/TruckTyres-GE/internal/model"
)

// NewPage assembles the result envelope from the authoritative item
// count and the requested page/limit. A page beyond the range is not
// an error; it carries an empty item list. totalItems = 0 yields
// totalPages = 0.
func NewPage(items []model.Product, page, limit, totalItems int) *model.Page {
	if page < 1 {
		page = model.DefaultPage
	}
	if limit < 1 {
		limit = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	if items == nil {
		items = []model.Product{}
	}

	return &model.Page{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
