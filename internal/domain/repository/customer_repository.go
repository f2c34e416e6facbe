package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
	"github.com/mfcdist/mfc-sales-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByName(ctx context.Context, name string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns customers with page-based pagination. Search matches
	// name, city and state.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// ListAll returns every customer without pagination, for analytics
	// snapshots.
	ListAll(ctx context.Context) ([]entity.Customer, error)
	// AddVisit records a rep visit and bumps the customer's last visit
	// date when the visit is newer.
	AddVisit(ctx context.Context, visit *entity.CustomerVisit) error
	ListVisits(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerVisit, error)
}
