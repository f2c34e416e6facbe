package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func order(t *testing.T, customer, date string, items ...LineItem) Order {
	t.Helper()
	total := 0.0
	for _, it := range items {
		total += it.Total
	}
	return Order{
		ID:           customer + "/" + date,
		CustomerName: customer,
		Date:         day(t, date),
		Total:        total,
		Items:        items,
	}
}

func item(sku, name string, qty int, total float64) LineItem {
	return LineItem{SKU: sku, ProductName: name, Quantity: qty, Total: total}
}

func TestAggregateBySKUExcludesPromotionalAndNoteItems(t *testing.T) {
	orders := []Order{
		order(t, "Cigar City - AL", "2025-03-01",
			item("CAO123", "CAO Flathead", 5, 250),
			item("MFPR1", "Promo Sampler", 3, 0),
			item("MFPETR", "Promo Torch", 1, 0),
			LineItem{Note: true, ProductName: "deliver after 3pm"},
		),
		order(t, "Cigar City - AL", "2025-04-01",
			item("CAO123", "CAO Flathead", 2, 100),
		),
	}

	totals := AggregateBySKU(orders)

	require.Len(t, totals, 1)
	require.Contains(t, totals, "CAO123")
	assert.Equal(t, 7, totals["CAO123"].Quantity)
	assert.InDelta(t, 350, totals["CAO123"].Revenue, 0.001)
}

func TestAggregateBySKUIsOrderIndependent(t *testing.T) {
	a := order(t, "A", "2025-01-05", item("X1", "X", 2, 20), item("Y1", "Y", 1, 15))
	b := order(t, "A", "2025-02-05", item("Y1", "Y", 4, 60), item("X1", "X", 3, 30))

	forward := AggregateBySKU([]Order{a, b})
	reversed := AggregateBySKU([]Order{b, a})

	require.Equal(t, len(forward), len(reversed))
	for sku, ft := range forward {
		rt := reversed[sku]
		require.NotNil(t, rt)
		assert.Equal(t, ft.Quantity, rt.Quantity)
		assert.InDelta(t, ft.Revenue, rt.Revenue, 0.001)
	}
}

func TestAggregateBySKUKeepsFirstProductName(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-01-05", item("X1", "Original Name", 1, 10)),
		order(t, "A", "2025-02-05", item("X1", "Renamed", 1, 10)),
	}
	totals := AggregateBySKU(orders)
	assert.Equal(t, "Original Name", totals["X1"].Name)
}

func TestTopNEmptyAggregate(t *testing.T) {
	rows := TopN(map[string]*SKUTotal{}, 10)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestTopNZeroTotalQuantityDoesNotDivide(t *testing.T) {
	totals := map[string]*SKUTotal{
		"X1": {SKU: "X1", Name: "X", Quantity: 0, Revenue: 0},
	}
	rows := TopN(totals, 10)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Percentage)
}

func TestTopNPercentagesCoverFullAggregate(t *testing.T) {
	totals := map[string]*SKUTotal{
		"A1": {SKU: "A1", Quantity: 50},
		"B1": {SKU: "B1", Quantity: 30},
		"C1": {SKU: "C1", Quantity: 20},
	}

	// Truncated view still computes shares against the full total.
	rows := TopN(totals, 2)
	require.Len(t, rows, 2)
	assert.InDelta(t, 50.0, rows[0].Percentage, 0.001)
	assert.InDelta(t, 30.0, rows[1].Percentage, 0.001)

	full := TopN(totals, 0)
	sum := 0.0
	for _, r := range full {
		sum += r.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.2)
}

func TestTopNTieBreakIsDeterministic(t *testing.T) {
	totals := map[string]*SKUTotal{
		"ZZZ": {SKU: "ZZZ", Quantity: 5},
		"AAA": {SKU: "AAA", Quantity: 5},
		"MMM": {SKU: "MMM", Quantity: 9},
	}

	for i := 0; i < 20; i++ {
		rows := TopN(totals, 10)
		require.Len(t, rows, 3)
		assert.Equal(t, "MMM", rows[0].SKU)
		assert.Equal(t, "AAA", rows[1].SKU)
		assert.Equal(t, "ZZZ", rows[2].SKU)
		assert.Equal(t, []int{1, 2, 3}, []int{rows[0].Rank, rows[1].Rank, rows[2].Rank})
	}
}

func TestRankingScopes(t *testing.T) {
	customers := []Customer{
		{Name: "Smoke Ring - AL", ShipState: "AL", ShipCity: "Hoover"},
		{Name: "Ash Lounge - AL", ShipState: "AL", ShipCity: "Trussville"},
		{Name: "Peach Humidor - GA", ShipState: "GA", ShipCity: "Buford"},
	}
	hist := []Order{
		order(t, "Smoke Ring - AL", "2025-02-01", item("X1", "X", 10, 100)),
		order(t, "Ash Lounge - AL", "2025-03-01", item("Y1", "Y", 6, 90)),
		order(t, "Peach Humidor - GA", "2025-03-15", item("Z1", "Z", 8, 120)),
		order(t, "Smoke Ring - AL", "2025-08-01", item("X1", "X", 4, 40)),
	}
	now := day(t, "2025-09-01")

	metros := NewMetroClassifier(map[string][]string{
		"Birmingham": {"Hoover", "Trussville"},
		"Atlanta":    {"Buford"},
	})

	tables := RankingScopes(hist, customers, "Smoke Ring - AL", now, ScopeOptions{ClassifyMetro: metros})

	// Territory sees every SKU.
	require.Len(t, tables.Territory, 3)
	assert.Equal(t, "X1", tables.Territory[0].SKU)
	assert.Equal(t, 14, tables.Territory[0].Quantity)

	// State scope covers both AL accounts, not the GA one.
	assert.Equal(t, "AL", tables.CustomerState)
	require.Len(t, tables.State, 2)
	for _, row := range tables.State {
		assert.NotEqual(t, "Z1", row.SKU)
	}

	// Metro scope groups Hoover and Trussville under Birmingham.
	assert.Equal(t, "Birmingham", tables.CustomerMetro)
	require.Len(t, tables.Metro, 2)

	// Account all-time vs recent six-month window.
	require.Len(t, tables.Account, 1)
	assert.Equal(t, 14, tables.Account[0].Quantity)
	require.Len(t, tables.AccountRecent, 1)
	assert.Equal(t, 4, tables.AccountRecent[0].Quantity)
}

func TestRankingScopesCustomerWithoutStateOrCity(t *testing.T) {
	customers := []Customer{{Name: "Walk-In"}}
	hist := []Order{
		order(t, "Walk-In", "2025-02-01", item("X1", "X", 1, 10)),
	}

	tables := RankingScopes(hist, customers, "Walk-In", day(t, "2025-06-01"), ScopeOptions{})

	assert.Empty(t, tables.CustomerState)
	assert.Nil(t, tables.State)
	assert.Nil(t, tables.Metro)
	require.Len(t, tables.Account, 1)
}

func TestRankingScopesIdempotent(t *testing.T) {
	customers := []Customer{{Name: "A", ShipState: "TN", ShipCity: "Nashville"}}
	hist := []Order{
		order(t, "A", "2025-02-01", item("X1", "X", 3, 30), item("Y1", "Y", 3, 45)),
	}
	now := day(t, "2025-05-01")

	first := RankingScopes(hist, customers, "A", now, ScopeOptions{})
	second := RankingScopes(hist, customers, "A", now, ScopeOptions{})
	assert.Equal(t, first, second)
}
