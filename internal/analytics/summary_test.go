package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearSummaries(t *testing.T) {
	orders := []Order{
		order(t, "A", "2024-03-01", item("X1", "X", 1, 100)),
		order(t, "A", "2024-09-15", item("X1", "X", 1, 300)),
		order(t, "A", "2025-01-10", item("X1", "X", 1, 50)),
	}

	summaries := YearSummaries(orders)

	require.Len(t, summaries, 2)
	assert.Equal(t, 2025, summaries[0].Year)
	assert.Equal(t, 1, summaries[0].OrderCount)

	y2024 := summaries[1]
	assert.Equal(t, 2024, y2024.Year)
	assert.Equal(t, 2, y2024.OrderCount)
	assert.InDelta(t, 400, y2024.TotalRevenue, 0.001)
	assert.InDelta(t, 200, y2024.AvgOrder, 0.001)
	assert.Equal(t, day(t, "2024-03-01"), y2024.FirstOrder)
	assert.Equal(t, day(t, "2024-09-15"), y2024.LastOrder)
}

func TestMonthlySales(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-01-10", item("X1", "X", 1, 100)),
		order(t, "A", "2025-01-20", item("X1", "X", 1, 200)),
		order(t, "B", "2025-03-05", item("Y1", "Y", 1, 50)),
	}

	series := MonthlySales(orders)

	require.Len(t, series.Points, 2)
	assert.Equal(t, "2025-01", series.Points[0].Month)
	assert.InDelta(t, 300, series.Points[0].Revenue, 0.001)
	assert.Equal(t, 2, series.Points[0].OrderCount)
	assert.Equal(t, "2025-03", series.Points[1].Month)

	assert.InDelta(t, 350, series.TotalRevenue, 0.001)
	assert.InDelta(t, 175, series.AvgPerMonth, 0.001)
	assert.Equal(t, "2025-01", series.PeakMonth)
	assert.InDelta(t, 300, series.PeakRevenue, 0.001)
}

func TestMonthlySalesEmpty(t *testing.T) {
	series := MonthlySales(nil)
	assert.Empty(t, series.Points)
	assert.Zero(t, series.TotalRevenue)
	assert.Zero(t, series.AvgPerMonth)
}

func TestTopCustomers(t *testing.T) {
	orders := []Order{
		order(t, "Beta", "2025-01-10", item("X1", "X", 1, 100)),
		order(t, "Alpha", "2025-01-11", item("X1", "X", 1, 100)),
		order(t, "Gamma", "2025-01-12", item("X1", "X", 1, 500)),
	}

	totals := TopCustomers(orders, 2)

	require.Len(t, totals, 2)
	assert.Equal(t, "Gamma", totals[0].Name)
	// Tied revenue falls back to name order.
	assert.Equal(t, "Alpha", totals[1].Name)
}

func TestValidateRejectsBrokenOrders(t *testing.T) {
	err := Validate([]Order{{CustomerName: "", Date: day(t, "2025-01-01")}})
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customerName", verr.Field)

	err = Validate([]Order{{CustomerName: "A"}})
	require.Error(t, err)

	err = Validate([]Order{
		order(t, "A", "2025-01-01", LineItem{SKU: "X1", Quantity: 0}),
	})
	require.Error(t, err)

	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate([]Order{
		order(t, "A", "2025-01-01", item("X1", "X", 1, 10)),
	}))
}

func TestIsPromotional(t *testing.T) {
	assert.True(t, IsPromotional("MFPR1"))
	assert.True(t, IsPromotional("MFPR22"))
	assert.True(t, IsPromotional("MFPETR"))
	assert.False(t, IsPromotional("MFPETR2"))
	assert.False(t, IsPromotional("CAO123"))
	assert.False(t, IsPromotional(""))
}
