package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func newOrderService() (*OrderService, *memOrderRepo) {
	orderRepo := &memOrderRepo{}
	return NewOrderService(orderRepo, &memProductRepo{}, &memCustomerRepo{}), orderRepo
}

func seedOrder(repo *memOrderRepo, customer, po, day string, totalCents int64) {
	d, _ := time.Parse("2006-01-02", day)
	repo.orders = append(repo.orders, entity.Order{
		ID:           uuid.New(),
		CustomerName: customer,
		PONumber:     po,
		OrderDate:    d,
		Total:        totalCents,
	})
}

func TestCreateOrderRoundsDollarAmountsToCents(t *testing.T) {
	svc, _ := newOrderService()

	// 29.99 * 100 is 2998.999... in float64; truncation used to lose a
	// cent here.
	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerName: "Smoke Ring - AL",
		PONumber:     "PO-1001",
		OrderDate:    date(t, "2025-03-05"),
		Items: []OrderItemInput{
			{SKU: "ROB-550", Name: "Robusto 5x50", Quantity: 1, UnitPrice: 29.99, Total: 29.99},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(2999), order.Items[0].UnitPrice)
	assert.Equal(t, int64(2999), order.Items[0].Total)
	assert.Equal(t, int64(2999), order.Total)
}

func TestListOrdersByMonthGroupsWithTotals(t *testing.T) {
	svc, repo := newOrderService()
	seedOrder(repo, "Smoke Ring - AL", "PO-1", "2025-01-10", 1000)
	seedOrder(repo, "Burning Leaf", "PO-2", "2025-01-20", 2550)
	seedOrder(repo, "Smoke Ring - AL", "PO-3", "2025-03-05", 500)

	groups, err := svc.ListOrdersByMonth(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Newest month first.
	assert.Equal(t, "2025-03", groups[0].Month)
	assert.Equal(t, 1, groups[0].OrderCount)
	assert.InDelta(t, 5.00, groups[0].Total, 0.001)

	assert.Equal(t, "2025-01", groups[1].Month)
	assert.Equal(t, 2, groups[1].OrderCount)
	assert.InDelta(t, 35.50, groups[1].Total, 0.001)

	// Newest order first within the month.
	require.Len(t, groups[1].Orders, 2)
	assert.Equal(t, "PO-2", groups[1].Orders[0].PONumber)
	assert.Equal(t, "PO-1", groups[1].Orders[1].PONumber)
}

func TestListOrdersByMonthHonorsDateRange(t *testing.T) {
	svc, repo := newOrderService()
	seedOrder(repo, "Smoke Ring - AL", "PO-1", "2025-01-10", 1000)
	seedOrder(repo, "Smoke Ring - AL", "PO-3", "2025-03-05", 500)

	start := date(t, "2025-02-01")
	groups, err := svc.ListOrdersByMonth(context.Background(), &start, nil)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "2025-03", groups[0].Month)
}
