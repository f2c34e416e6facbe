package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
	"github.com/mfcdist/mfc-sales-api/internal/domain/enum"
	domainRepo "github.com/mfcdist/mfc-sales-api/internal/domain/repository"
	"github.com/mfcdist/mfc-sales-api/pkg/pagination"
)

// In-memory repositories for service tests. They mirror the Postgres
// implementations closely enough for the service layer: name resolution
// is case-insensitive substring, listings come back date ascending.

type memOrderRepo struct {
	orders []entity.Order
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memOrderRepo) CreateBatch(_ context.Context, orders []entity.Order) error {
	for i := range orders {
		if orders[i].ID == uuid.Nil {
			orders[i].ID = uuid.New()
		}
		r.orders = append(r.orders, orders[i])
	}
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *memOrderRepo) GetByPOAndDate(_ context.Context, poNumber string, orderDate time.Time) (*entity.Order, error) {
	for i := range r.orders {
		if r.orders[i].PONumber == poNumber && r.orders[i].OrderDate.Equal(orderDate) {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) Update(_ context.Context, order *entity.Order) error {
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = *order
			return nil
		}
	}
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.orders[:0]
	for _, o := range r.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	r.orders = kept
	return nil
}

func (r *memOrderRepo) List(_ context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var matched []entity.Order
	for _, o := range r.orders {
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(o.PONumber), needle) &&
				!strings.Contains(strings.ToLower(o.CustomerName), needle) {
				continue
			}
		}
		if params.Source != nil && o.Source != *params.Source {
			continue
		}
		if params.StartDate != nil && o.OrderDate.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && o.OrderDate.After(*params.EndDate) {
			continue
		}
		matched = append(matched, o)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].OrderDate.After(matched[j].OrderDate)
	})
	return matched, int64(len(matched)), nil
}

func (r *memOrderRepo) ListByCustomerName(_ context.Context, customerName string) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.CustomerName == customerName {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.Before(out[j].OrderDate) })
	return out, nil
}

func (r *memOrderRepo) ResolveCustomerName(_ context.Context, query string) (string, error) {
	needle := strings.ToLower(query)
	name := ""
	var earliest time.Time
	for _, o := range r.orders {
		if !strings.Contains(strings.ToLower(o.CustomerName), needle) {
			continue
		}
		if name == "" || o.OrderDate.Before(earliest) {
			name = o.CustomerName
			earliest = o.OrderDate
		}
	}
	return name, nil
}

func (r *memOrderRepo) ListAll(_ context.Context) ([]entity.Order, error) {
	out := append([]entity.Order(nil), r.orders...)
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.Before(out[j].OrderDate) })
	return out, nil
}

func (r *memOrderRepo) ListBetween(_ context.Context, start, end time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if !o.OrderDate.Before(start) && o.OrderDate.Before(end) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.Before(out[j].OrderDate) })
	return out, nil
}

func (r *memOrderRepo) DeleteImported(_ context.Context) error {
	kept := r.orders[:0]
	for _, o := range r.orders {
		if o.Source != enum.OrderSourceImported {
			kept = append(kept, o)
		}
	}
	r.orders = kept
	return nil
}

type memCustomerRepo struct {
	customers []entity.Customer
	visits    []entity.CustomerVisit
}

func (r *memCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	for i := range r.customers {
		if r.customers[i].ID == id {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) GetByName(_ context.Context, name string) (*entity.Customer, error) {
	for i := range r.customers {
		if r.customers[i].Name == name {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	for i := range r.customers {
		if r.customers[i].ID == customer.ID {
			r.customers[i] = *customer
			return nil
		}
	}
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.customers[:0]
	for _, c := range r.customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.customers = kept
	return nil
}

func (r *memCustomerRepo) List(_ context.Context, _ *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		if search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memCustomerRepo) ListAll(_ context.Context) ([]entity.Customer, error) {
	return append([]entity.Customer(nil), r.customers...), nil
}

func (r *memCustomerRepo) AddVisit(_ context.Context, visit *entity.CustomerVisit) error {
	r.visits = append(r.visits, *visit)
	return nil
}

func (r *memCustomerRepo) ListVisits(_ context.Context, customerID uuid.UUID) ([]entity.CustomerVisit, error) {
	var out []entity.CustomerVisit
	for _, v := range r.visits {
		if v.CustomerID == customerID {
			out = append(out, v)
		}
	}
	return out, nil
}

type memProductRepo struct {
	products []entity.Product
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *memProductRepo) UpsertBatch(_ context.Context, products []entity.Product) error {
	for _, p := range products {
		replaced := false
		for i := range r.products {
			if r.products[i].SKU == p.SKU {
				r.products[i].Name = p.Name
				r.products[i].UnitPrice = p.UnitPrice
				replaced = true
				break
			}
		}
		if !replaced {
			if p.ID == uuid.Nil {
				p.ID = uuid.New()
			}
			r.products = append(r.products, p)
		}
	}
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].SKU == sku {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.products = kept
	return nil
}

func (r *memProductRepo) List(_ context.Context, _ *pagination.PaginationParams, search string) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		if search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

type memAnalyticsRepo struct {
	snapshots map[string]*entity.YoYSnapshot
}

func (r *memAnalyticsRepo) GetTopSKUs(_ context.Context, _ int) ([]domainRepo.SKUSalesResult, error) {
	return nil, nil
}

func (r *memAnalyticsRepo) GetTotalRevenue(_ context.Context) (float64, error) {
	return 0, nil
}

func (r *memAnalyticsRepo) GetOrderCount(_ context.Context) (int64, error) {
	return 0, nil
}

func (r *memAnalyticsRepo) GetYoYSnapshot(_ context.Context, label string) (*entity.YoYSnapshot, error) {
	if r.snapshots == nil {
		return nil, nil
	}
	return r.snapshots[label], nil
}

func (r *memAnalyticsRepo) SaveYoYSnapshot(_ context.Context, snapshot *entity.YoYSnapshot) error {
	if r.snapshots == nil {
		r.snapshots = make(map[string]*entity.YoYSnapshot)
	}
	r.snapshots[snapshot.Label] = snapshot
	return nil
}
