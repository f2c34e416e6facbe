package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mfcdist/mfc-sales-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a sales order. Imported and hand-entered orders
// share the table; the (po_number, order_date) pair identifies an order
// across re-imports.
type Order struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID   *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName string           `gorm:"size:255;not null;index" json:"customer_name"`
	PONumber     string           `gorm:"size:100;not null;uniqueIndex:idx_orders_po_date" json:"po_number"`
	OrderDate    time.Time        `gorm:"type:date;not null;uniqueIndex:idx_orders_po_date" json:"order_date"`
	Source       enum.OrderSource `gorm:"default:0" json:"source"`
	ItemCount    int              `gorm:"default:0" json:"item_count"`
	Total        int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(o),
		Total: float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}

// OrderItem represents a line on an order: either a product line or a
// free-text note. Note lines carry their text in Name and no SKU.
type OrderItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	Kind      enum.ItemKind  `gorm:"default:0" json:"kind"`
	SKU       string         `gorm:"size:100;index" json:"sku"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Quantity  int            `gorm:"default:0" json:"quantity"`
	UnitPrice int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total     int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(oi),
		UnitPrice: float64(oi.UnitPrice) / 100,
		Total:     float64(oi.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
