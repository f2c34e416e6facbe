package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
	"github.com/mfcdist/mfc-sales-api/internal/domain/enum"
	"github.com/mfcdist/mfc-sales-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// CreateBatch inserts orders with their items in one transaction.
	CreateBatch(ctx context.Context, orders []entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetByPOAndDate resolves the natural key used to dedupe imports.
	GetByPOAndDate(ctx context.Context, poNumber string, orderDate time.Time) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListByCustomerName returns the customer's full history with items,
	// date ascending, for the analytics engine.
	ListByCustomerName(ctx context.Context, customerName string) ([]entity.Order, error)
	// ResolveCustomerName resolves a case-insensitive substring query to
	// the stored customer_name of the earliest matching order. Returns ""
	// when nothing matches.
	ResolveCustomerName(ctx context.Context, query string) (string, error)
	// ListAll returns every order with items, for territory-wide
	// analytics snapshots.
	ListAll(ctx context.Context) ([]entity.Order, error)
	// ListBetween returns orders with items in [start, end), for exports.
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.Order, error)
	// DeleteImported removes all imported orders, used by replace-mode
	// imports before reloading.
	DeleteImported(ctx context.Context) error
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Source     *enum.OrderSource
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
