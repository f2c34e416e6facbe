package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictReordersSkipsSinglePurchases(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-01-10", item("X1", "X", 2, 20)),
	}
	predictions := PredictReorders(orders, day(t, "2025-06-01"))
	assert.Empty(t, predictions)
}

func TestPredictReordersThirtyDayCadenceOverdue(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-01-01", item("X1", "X", 1, 10)),
		order(t, "A", "2025-01-31", item("X1", "X", 1, 10)),
	}
	// 40 days past the second order against a 30 day cadence.
	now := day(t, "2025-03-12")

	predictions := PredictReorders(orders, now)
	require.Len(t, predictions, 1)
	p := predictions[0]
	assert.Equal(t, 30, p.AvgIntervalDays)
	assert.Equal(t, 40, p.DaysSinceLast)
	assert.Equal(t, -10, p.DaysUntilReorder)
	assert.Equal(t, StatusOverdue, p.Status)
	assert.Equal(t, 2, p.OrderCount)
	assert.Equal(t, day(t, "2025-01-31"), p.LastOrderDate)
	assert.Equal(t, day(t, "2025-03-02"), p.ExpectedNextDate)
}

func TestPredictReordersDueSoonAndOnSchedule(t *testing.T) {
	orders := []Order{
		// 30 day cadence, last order 20 days ago: expected in 10 days.
		order(t, "A", "2025-01-01", item("SOON", "Soon", 1, 10)),
		order(t, "A", "2025-01-31", item("SOON", "Soon", 1, 10)),
		// 90 day cadence, last order 20 days ago: expected in 70 days.
		order(t, "A", "2024-11-02", item("LATER", "Later", 1, 10)),
		order(t, "A", "2025-01-31", item("LATER", "Later", 1, 10)),
	}
	now := day(t, "2025-02-20")

	predictions := PredictReorders(orders, now)
	require.Len(t, predictions, 2)
	assert.Equal(t, "SOON", predictions[0].SKU)
	assert.Equal(t, StatusDueSoon, predictions[0].Status)
	assert.Equal(t, 10, predictions[0].DaysUntilReorder)
	assert.Equal(t, "LATER", predictions[1].SKU)
	assert.Equal(t, StatusOnSchedule, predictions[1].Status)
	assert.Equal(t, 70, predictions[1].DaysUntilReorder)
}

func TestPredictReordersUnevenGapsUseMeanInterval(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-01-01", item("X1", "X", 1, 10)),
		order(t, "A", "2025-01-11", item("X1", "X", 1, 10)),
		order(t, "A", "2025-02-10", item("X1", "X", 1, 10)),
	}
	// Gaps of 10 and 30 days average to 20.
	predictions := PredictReorders(orders, day(t, "2025-02-15"))
	require.Len(t, predictions, 1)
	assert.Equal(t, 20, predictions[0].AvgIntervalDays)
	assert.Equal(t, 3, predictions[0].OrderCount)
}

func TestPredictReordersSortsOverdueFirst(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-01-01",
			item("OVER", "Over", 1, 10),
			item("SOON", "Soon", 1, 10),
		),
		order(t, "A", "2025-01-31", item("OVER", "Over", 1, 10)),
		order(t, "A", "2025-03-02", item("SOON", "Soon", 1, 10)),
	}
	// OVER: 30 day cadence, 40 days stale. SOON: 60 day cadence, due in 50.
	now := day(t, "2025-03-12")

	predictions := PredictReorders(orders, now)
	require.Len(t, predictions, 2)
	assert.Equal(t, "OVER", predictions[0].SKU)
	assert.Equal(t, StatusOverdue, predictions[0].Status)
	assert.Equal(t, "SOON", predictions[1].SKU)
}

func TestPredictReordersIgnoresPromotionalLines(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-01-01", item("MFPR5", "Promo", 1, 0)),
		order(t, "A", "2025-02-01", item("MFPR5", "Promo", 1, 0)),
	}
	predictions := PredictReorders(orders, day(t, "2025-03-01"))
	assert.Empty(t, predictions)
}
