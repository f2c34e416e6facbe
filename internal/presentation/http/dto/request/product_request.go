package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	SKU       string  `json:"sku" binding:"required,min=2,max=100"`
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	Brand     *string `json:"brand"`
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Brand     *string  `json:"brand"`
	UnitPrice *float64 `json:"unit_price" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
