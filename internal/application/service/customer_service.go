package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
	"github.com/mfcdist/mfc-sales-api/internal/domain/repository"
	"github.com/mfcdist/mfc-sales-api/pkg/apperror"
	"github.com/mfcdist/mfc-sales-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name        string
	ContactName *string
	Email       *string
	Phone       *string
	ShipAddress *string
	ShipCity    string
	ShipState   string
	ShipZip     *string
	Notes       *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer with this name already exists")
	}

	customer := &entity.Customer{
		Name:        input.Name,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		ShipAddress: input.ShipAddress,
		ShipCity:    input.ShipCity,
		ShipState:   input.ShipState,
		ShipZip:     input.ShipZip,
		Notes:       input.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID          uuid.UUID
	Name        *string
	ContactName *string
	Email       *string
	Phone       *string
	ShipAddress *string
	ShipCity    *string
	ShipState   *string
	ShipZip     *string
	Notes       *string
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil && *input.Name != customer.Name {
		existing, err := s.customerRepo.GetByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Customer with this name already exists")
		}
		customer.Name = *input.Name
	}
	if input.ContactName != nil {
		customer.ContactName = input.ContactName
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.ShipAddress != nil {
		customer.ShipAddress = input.ShipAddress
	}
	if input.ShipCity != nil {
		customer.ShipCity = *input.ShipCity
	}
	if input.ShipState != nil {
		customer.ShipState = *input.ShipState
	}
	if input.ShipZip != nil {
		customer.ShipZip = input.ShipZip
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}

// RecordVisitInput represents a rep visit being recorded
type RecordVisitInput struct {
	CustomerID uuid.UUID
	VisitDate  time.Time
	Notes      *string
}

// RecordVisit records a rep visit against a customer
func (s *CustomerService) RecordVisit(ctx context.Context, input *RecordVisitInput) (*entity.CustomerVisit, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	visit := &entity.CustomerVisit{
		CustomerID: input.CustomerID,
		VisitDate:  input.VisitDate,
		Notes:      input.Notes,
	}

	if err := s.customerRepo.AddVisit(ctx, visit); err != nil {
		return nil, err
	}

	return visit, nil
}

// ListVisits returns a customer's visit history, newest first
func (s *CustomerService) ListVisits(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerVisit, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.ListVisits(ctx, customerID)
}
