package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Promotional SKU markers used by the sales desk. MFPR-prefixed codes
// and the MFPETR torch giveaway are sampler lines, not products the
// analytics should count.
const (
	promoSKUPrefix = "MFPR"
	promoTorchSKU  = "MFPETR"
)

// Product represents one SKU in the catalog. The catalog is built up
// from order imports, so only SKU and name are mandatory.
type Product struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SKU       string         `gorm:"size:100;unique;not null" json:"sku"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Brand     *string        `gorm:"size:255" json:"brand,omitempty"`
	UnitPrice int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsPromotional reports whether the SKU is a promo/sampler line.
func (p *Product) IsPromotional() bool {
	return strings.HasPrefix(p.SKU, promoSKUPrefix) || p.SKU == promoTorchSKU
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		UnitPrice   float64 `json:"unit_price"`
		Promotional bool    `json:"promotional"`
	}{
		Alias:       Alias(p),
		UnitPrice:   float64(p.UnitPrice) / 100,
		Promotional: p.IsPromotional(),
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetUnitPriceDecimal returns the unit price as a decimal (for display)
func (p *Product) GetUnitPriceDecimal() float64 {
	return float64(p.UnitPrice) / 100
}

// SetUnitPriceFromDecimal sets the unit price from a decimal value
func (p *Product) SetUnitPriceFromDecimal(price float64) {
	p.UnitPrice = int64(price * 100)
}
