package repository

import (
	"context"
	"errors"

	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
	domainRepo "github.com/mfcdist/mfc-sales-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopSKUs(ctx context.Context, limit int) ([]domainRepo.SKUSalesResult, error) {
	var results []domainRepo.SKUSalesResult

	err := r.db.WithContext(ctx).
		Model(&entity.OrderItem{}).
		Select(`order_items.sku as sku,
			MIN(order_items.name) as name,
			COALESCE(SUM(order_items.quantity), 0) as quantity_sold,
			COALESCE(SUM(order_items.total), 0) / 100.0 as revenue`).
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.deleted_at IS NULL").
		Scopes(CountableItems).
		Group("order_items.sku").
		Order("quantity_sold DESC, sku ASC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM orders
		WHERE deleted_at IS NULL
	`).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetOrderCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) GetYoYSnapshot(ctx context.Context, label string) (*entity.YoYSnapshot, error) {
	var snapshot entity.YoYSnapshot
	err := r.db.WithContext(ctx).First(&snapshot, "label = ?", label).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &snapshot, err
}

func (r *analyticsRepository) SaveYoYSnapshot(ctx context.Context, snapshot *entity.YoYSnapshot) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "label"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(snapshot).Error
}
