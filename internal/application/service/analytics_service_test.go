package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfcdist/mfc-sales-api/internal/config"
	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
	"github.com/mfcdist/mfc-sales-api/internal/domain/enum"
	"github.com/mfcdist/mfc-sales-api/pkg/apperror"
)

func newAnalyticsFixture() (*AnalyticsService, *memOrderRepo) {
	orderRepo := &memOrderRepo{}
	svc := NewAnalyticsService(orderRepo, &memCustomerRepo{}, &memAnalyticsRepo{}, config.AnalyticsConfig{
		TopN:               10,
		RecentWindowMonths: 6,
		DropoffSplitDate:   "2025-07-01",
		States:             []string{"AL", "GA", "MS", "TN"},
	})
	return svc, orderRepo
}

func seedHistory(repo *memOrderRepo, customer, po, day, sku string, qty int, totalCents int64) {
	d, _ := time.Parse("2006-01-02", day)
	repo.orders = append(repo.orders, entity.Order{
		ID:           uuid.New(),
		CustomerName: customer,
		PONumber:     po,
		OrderDate:    d,
		Total:        totalCents,
		Items: []entity.OrderItem{
			{Kind: enum.ItemKindProduct, SKU: sku, Name: sku, Quantity: qty, Total: totalCents},
		},
	})
}

func TestGetCustomerHistoryMatchesNameCaseInsensitively(t *testing.T) {
	svc, repo := newAnalyticsFixture()
	seedHistory(repo, "Smoke Ring - AL", "PO-1", "2025-01-10", "ROB-550", 2, 2000)
	seedHistory(repo, "Smoke Ring - AL", "PO-2", "2025-02-12", "ROB-550", 3, 3000)
	seedHistory(repo, "Burning Leaf", "PO-3", "2025-01-15", "TOR-652", 1, 1200)

	history, err := svc.GetCustomerHistory(context.Background(), "smoke ring")
	require.NoError(t, err)

	// The stored spelling comes back, not the query.
	assert.Equal(t, "Smoke Ring - AL", history.CustomerName)
	require.Len(t, history.Orders, 2)
	assert.Equal(t, "PO-2", history.Orders[0].PONumber)
	assert.Equal(t, "PO-1", history.Orders[1].PONumber)
	require.Len(t, history.Years, 1)
}

func TestGetCustomerHistoryUnknownNameIsNotFound(t *testing.T) {
	svc, repo := newAnalyticsFixture()
	seedHistory(repo, "Smoke Ring - AL", "PO-1", "2025-01-10", "ROB-550", 2, 2000)

	_, err := svc.GetCustomerHistory(context.Background(), "no such account")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestGetReorderPredictionsResolvesPartialName(t *testing.T) {
	svc, repo := newAnalyticsFixture()
	seedHistory(repo, "Smoke Ring - AL", "PO-1", "2025-01-01", "ROB-550", 1, 1000)
	seedHistory(repo, "Smoke Ring - AL", "PO-2", "2025-01-31", "ROB-550", 1, 1000)

	predictions, err := svc.GetReorderPredictions(context.Background(), "SMOKE", time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "ROB-550", predictions[0].SKU)
}
