package directus

type productEntity struct {
	ID             int64   `json:"id"`
	SKU            string  `json:"sku"`
	Slug           string  `json:"slug"`
	ProductName    string  `json:"product_name"`
	Model          string  `json:"model"`
	Size           string  `json:"size"`
	Diameter       string  `json:"diameter"`
	RegularPrice   string  `json:"regular_price"`
	DiscountPrice  *string `json:"discount_price"`
	ProductImage   *string `json:"product_image"`
	Description    *string `json:"description"`
	Specifications *string `json:"specifications"`
	Category       string  `json:"Category"`
	Segment        string  `json:"Segment"`
	Warehouse      string  `json:"warehouse"`
}

type listMeta struct {
	TotalCount *int `json:"total_count"`
}

type listEnvelope struct {
	Data []productEntity `json:"data"`
	Meta *listMeta       `json:"meta"`
}

type itemEnvelope struct {
	Data *productEntity `json:"data"`
}

type valuesEnvelope struct {
	Data []map[string]any `json:"data"`
}
