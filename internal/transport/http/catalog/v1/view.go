package http

import (
	"github.com/sezikua/TruckTyres-GE/internal/model"
)

type productView struct {
	ID             int64   `json:"id"`
	SKU            string  `json:"sku"`
	Slug           string  `json:"slug,omitempty"`
	ProductName    string  `json:"product_name"`
	Model          string  `json:"model"`
	Size           string  `json:"size"`
	Diameter       string  `json:"diameter"`
	RegularPrice   string  `json:"regular_price"`
	DiscountPrice  *string `json:"discount_price"`
	ProductImage   *string `json:"product_image"`
	Description    string  `json:"description,omitempty"`
	Specifications string  `json:"specifications,omitempty"`
	Category       string  `json:"Category"`
	Segment        string  `json:"Segment"`
	Warehouse      string  `json:"warehouse"`
}

type paginationView struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type pageResponse struct {
	Data       []productView  `json:"data"`
	Pagination paginationView `json:"pagination"`
}

type productsResponse struct {
	Data  []productView `json:"data"`
	Total int           `json:"total"`
}

type productResponse struct {
	Data productView `json:"data"`
}

type valuesResponse struct {
	Data []string `json:"data"`
}

func productToView(p model.Product) productView {
	v := productView{
		ID:             p.ID,
		SKU:            p.SKU,
		Slug:           p.Slug,
		ProductName:    p.Name,
		Model:          p.Model,
		Size:           p.Size,
		Diameter:       p.Diameter,
		RegularPrice:   p.RegularPrice.String(),
		Description:    p.Description,
		Specifications: p.Specifications,
		Category:       p.Category,
		Segment:        p.Segment,
		Warehouse:      string(p.StockStatus),
	}

	if p.DiscountPrice != nil {
		s := p.DiscountPrice.String()
		v.DiscountPrice = &s
	}
	if p.ImageRef != "" {
		img := p.ImageRef
		v.ProductImage = &img
	}

	return v
}

func productsToViews(products []model.Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, productToView(p))
	}

	return out
}

func pageToResponse(page *model.Page) pageResponse {
	return pageResponse{
		Data: productsToViews(page.Items),
		Pagination: paginationView{
			Page:       page.Page,
			Limit:      page.Limit,
			TotalItems: page.TotalItems,
			TotalPages: page.TotalPages,
			HasNext:    page.HasNext,
			HasPrev:    page.HasPrev,
		},
	}
}
