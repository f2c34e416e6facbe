package request

// OrderItemRequest represents a single line on an order
type OrderItemRequest struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"min=0"`
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
	Total     float64 `json:"total" binding:"min=0"`
	Note      bool    `json:"note"`
}

// CreateOrderRequest represents a hand-entered order
type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" binding:"required,min=2,max=255"`
	PONumber     string             `json:"po_number" binding:"omitempty,max=100"`
	OrderDate    string             `json:"order_date" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required,dive"`
}

// ImportOrderRequest represents one order inside an import batch
type ImportOrderRequest struct {
	CustomerName string             `json:"customer_name"`
	PONumber     string             `json:"po_number"`
	OrderDate    string             `json:"order_date"`
	Items        []OrderItemRequest `json:"items"`
}

// ImportOrdersRequest represents a historical order import batch
type ImportOrdersRequest struct {
	Mode   string               `json:"mode" binding:"omitempty,oneof=merge replace"`
	Orders []ImportOrderRequest `json:"orders" binding:"required"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search     string `form:"search"`
	Source     string `form:"source"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	GroupBy    string `form:"group_by"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// ExportOrdersRequest represents CSV export parameters
type ExportOrdersRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}
