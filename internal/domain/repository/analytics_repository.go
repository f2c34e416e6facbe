package repository

import (
	"context"

	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
)

// SKUSalesResult is one SKU's aggregate over a date range, computed in
// the database for the territory-wide report screens.
type SKUSalesResult struct {
	SKU          string
	Name         string
	QuantitySold int
	Revenue      float64
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetTopSKUs returns the territory's top selling SKUs by quantity,
	// excluding promotional and note lines.
	GetTopSKUs(ctx context.Context, limit int) ([]SKUSalesResult, error)

	// GetTotalRevenue returns total revenue across all orders.
	GetTotalRevenue(ctx context.Context) (float64, error)

	// GetOrderCount returns the number of orders on file.
	GetOrderCount(ctx context.Context) (int64, error)

	// GetYoYSnapshot loads the stored year-over-year dataset by label.
	GetYoYSnapshot(ctx context.Context, label string) (*entity.YoYSnapshot, error)

	// SaveYoYSnapshot inserts or replaces the dataset for a label.
	SaveYoYSnapshot(ctx context.Context, snapshot *entity.YoYSnapshot) error
}
