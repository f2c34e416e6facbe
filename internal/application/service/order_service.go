package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
	"github.com/mfcdist/mfc-sales-api/internal/domain/enum"
	"github.com/mfcdist/mfc-sales-api/internal/domain/repository"
	"github.com/mfcdist/mfc-sales-api/pkg/apperror"
	"github.com/mfcdist/mfc-sales-api/pkg/pagination"
	"github.com/mfcdist/mfc-sales-api/pkg/utils"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// OrderItemInput represents one line of an order being entered. Note
// lines set Note true and carry their text in Name.
type OrderItemInput struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice float64
	Total     float64
	Note      bool
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerName string
	PONumber     string
	OrderDate    time.Time
	Items        []OrderItemInput
}

// CreateOrder creates a hand-entered order with its items
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one item")
	}

	// Hand-entered orders often arrive without a PO number; assign one
	// so the (po_number, order_date) identity stays usable.
	if input.PONumber == "" {
		input.PONumber = utils.GeneratePONumber()
	}

	existing, err := s.orderRepo.GetByPOAndDate(ctx, input.PONumber, input.OrderDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Order %s on %s already exists", input.PONumber, input.OrderDate.Format("2006-01-02")))
	}

	order, err := s.buildOrder(ctx, input, enum.OrderSourceEntered)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// toCents converts a dollar amount to integer cents.
func toCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

func (s *OrderService) buildOrder(ctx context.Context, input *CreateOrderInput, source enum.OrderSource) (*entity.Order, error) {
	order := &entity.Order{
		CustomerName: input.CustomerName,
		PONumber:     input.PONumber,
		OrderDate:    input.OrderDate,
		Source:       source,
	}

	// Link the customer record when one exists under this name. Orders
	// for unknown accounts are kept; the analytics join by name.
	customer, err := s.customerRepo.GetByName(ctx, input.CustomerName)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		order.CustomerID = &customer.ID
	}

	for _, item := range input.Items {
		kind := enum.ItemKindProduct
		if item.Note {
			kind = enum.ItemKindNote
		} else if item.SKU == "" {
			return nil, apperror.NewBadRequestError("Product lines require a SKU")
		}

		// Round rather than truncate: 29.99 dollars is 2999 cents, not
		// 2998 via the float representation.
		totalCents := toCents(item.Total)
		order.Items = append(order.Items, entity.OrderItem{
			Kind:      kind,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: toCents(item.UnitPrice),
			Total:     totalCents,
		})
		if !item.Note {
			order.Total += totalCents
			order.ItemCount++
		}
	}

	return order, nil
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// OrderMonthGroup is one month of the grouped order listing.
type OrderMonthGroup struct {
	Month      string         `json:"month"`
	OrderCount int            `json:"order_count"`
	Total      float64        `json:"total"`
	Orders     []entity.Order `json:"orders"`
}

// ListOrdersByMonth groups orders into calendar months with per-month
// counts and dollar totals, newest month first. Start and end bound the
// range when set.
func (s *OrderService) ListOrdersByMonth(ctx context.Context, start, end *time.Time) ([]OrderMonthGroup, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*OrderMonthGroup)
	for i := range orders {
		o := orders[i]
		if start != nil && o.OrderDate.Before(*start) {
			continue
		}
		if end != nil && o.OrderDate.After(*end) {
			continue
		}

		key := o.OrderDate.Format("2006-01")
		group, ok := byMonth[key]
		if !ok {
			group = &OrderMonthGroup{Month: key}
			byMonth[key] = group
		}
		group.Orders = append(group.Orders, o)
		group.OrderCount++
		group.Total += float64(o.Total) / 100
	}

	groups := make([]OrderMonthGroup, 0, len(byMonth))
	for _, group := range byMonth {
		// Newest first within the month for display.
		sort.SliceStable(group.Orders, func(i, j int) bool {
			return group.Orders[i].OrderDate.After(group.Orders[j].OrderDate)
		})
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Month > groups[j].Month })

	return groups, nil
}

// DeleteOrder deletes an order and its items
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	return s.orderRepo.Delete(ctx, id)
}

// Import modes. Merge keeps existing orders and adds new ones; replace
// drops all previously imported orders first. Hand-entered orders
// survive both modes.
const (
	ImportModeMerge   = "merge"
	ImportModeReplace = "replace"
)

// ImportOrdersInput represents a bulk order import
type ImportOrdersInput struct {
	Mode   string
	Orders []CreateOrderInput
}

// ImportSummary reports what an import did
type ImportSummary struct {
	Received int `json:"received"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportOrders loads a batch of historical orders. Orders are
// identified by (po_number, order_date): duplicates within the batch
// and, in merge mode, against the database are skipped. The product
// catalog grows from the imported lines as a side effect.
func (s *OrderService) ImportOrders(ctx context.Context, input *ImportOrdersInput) (*ImportSummary, error) {
	switch input.Mode {
	case ImportModeMerge, ImportModeReplace:
	case "":
		input.Mode = ImportModeMerge
	default:
		return nil, apperror.NewBadRequestError("Import mode must be merge or replace")
	}

	if input.Mode == ImportModeReplace {
		if err := s.orderRepo.DeleteImported(ctx); err != nil {
			return nil, err
		}
	}

	summary := &ImportSummary{Received: len(input.Orders)}
	seen := make(map[string]struct{}, len(input.Orders))
	orders := make([]entity.Order, 0, len(input.Orders))
	catalog := make(map[string]entity.Product)

	for i := range input.Orders {
		in := &input.Orders[i]
		if in.PONumber == "" || in.OrderDate.IsZero() || in.CustomerName == "" {
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("Order %d is missing po_number, order_date or customer_name", i))
		}

		key := in.PONumber + "|" + in.OrderDate.Format("2006-01-02")
		if _, dup := seen[key]; dup {
			summary.Skipped++
			continue
		}
		seen[key] = struct{}{}

		if input.Mode == ImportModeMerge {
			existing, err := s.orderRepo.GetByPOAndDate(ctx, in.PONumber, in.OrderDate)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				summary.Skipped++
				continue
			}
		}

		order, err := s.buildOrder(ctx, in, enum.OrderSourceImported)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		summary.Imported++

		for _, item := range order.Items {
			if item.Kind != enum.ItemKindProduct {
				continue
			}
			if _, ok := catalog[item.SKU]; !ok {
				catalog[item.SKU] = entity.Product{
					SKU:       item.SKU,
					Name:      item.Name,
					UnitPrice: item.UnitPrice,
				}
			}
		}
	}

	if err := s.orderRepo.CreateBatch(ctx, orders); err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(catalog))
	for _, p := range catalog {
		products = append(products, p)
	}
	if err := s.productRepo.UpsertBatch(ctx, products); err != nil {
		return nil, err
	}

	return summary, nil
}

// ExportOrdersCSV renders the orders in [start, end) as CSV, one row
// per product line, with the customer's ship-to state resolved from the
// account record.
func (s *OrderService) ExportOrdersCSV(ctx context.Context, start, end time.Time) ([]byte, error) {
	if !start.Before(end) {
		return nil, apperror.NewBadRequestError("Start date must be before end date")
	}

	orders, err := s.orderRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stateByName := make(map[string]string, len(customers))
	for _, c := range customers {
		stateByName[c.Name] = c.ShipState
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"order_date", "po_number", "customer", "state", "sku", "product", "quantity", "unit_price", "total"}); err != nil {
		return nil, err
	}

	for _, o := range orders {
		for _, item := range o.Items {
			if item.Kind != enum.ItemKindProduct {
				continue
			}
			row := []string{
				o.OrderDate.Format("2006-01-02"),
				o.PONumber,
				o.CustomerName,
				stateByName[o.CustomerName],
				item.SKU,
				item.Name,
				strconv.Itoa(item.Quantity),
				strconv.FormatFloat(float64(item.UnitPrice)/100, 'f', 2, 64),
				strconv.FormatFloat(float64(item.Total)/100, 'f', 2, 64),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
