package repository

import (
	"time"

	"gorm.io/gorm"
)

// OrderDateRange returns a GORM scope bounding order_date to
// [start, end). Nil bounds are open.
func OrderDateRange(start, end *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where("order_date >= ?", *start)
		}
		if end != nil {
			db = db.Where("order_date < ?", *end)
		}
		return db
	}
}

// CountableItems returns a GORM scope that keeps product lines the
// analytics count: note lines and promotional SKUs are excluded.
func CountableItems(db *gorm.DB) *gorm.DB {
	return db.Where("order_items.kind = 0").
		Where("order_items.sku NOT LIKE 'MFPR%'").
		Where("order_items.sku <> 'MFPETR'")
}
