package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var southeastStates = []string{"AL", "GA", "MS", "TN"}

func TestComputeYoYBucketsByStateFromName(t *testing.T) {
	classify := NewStateClassifier(southeastStates)
	orders := []Order{
		order(t, "Smoke Ring - AL", "2026-02-01", item("X1", "X", 1, 100)),
		order(t, "Delta Cigars - MS", "2026-03-01", item("Y1", "Y", 1, 250)),
		order(t, "Smoke Ring - AL", "2025-12-01", item("X1", "X", 1, 999)), // prior year, ignored
	}
	dataset := YoYDataset{
		TerritoryTotalPrior:      5000,
		TerritoryTotalPriorPrior: 4000,
		TerritoryChange:          1000,
		TerritoryPctChange:       25,
		StateTotals: map[string]YoYStateEntry{
			"AL": {SalesPrior: 3000, SalesPriorPrior: 2500, Change: 500, PctChange: 20},
			"GA": {SalesPrior: 2000, SalesPriorPrior: 1500, Change: 500, PctChange: 33.3},
		},
		ComparisonPeriod: "Jan-Dec",
	}

	report := ComputeYoY(orders, dataset, 2026, classify)

	assert.Equal(t, 2026, report.TargetYear)
	assert.InDelta(t, 350, report.TerritoryCurrentYTD, 0.001)
	assert.InDelta(t, 5000, report.TerritoryTotalPrior, 0.001)
	assert.InDelta(t, 25, report.TerritoryPctChange, 0.001)
	assert.Equal(t, "Jan-Dec", report.ComparisonPeriod)

	// Union of dataset states and current-order states, sorted.
	require.Len(t, report.States, 3)
	assert.Equal(t, "AL", report.States[0].State)
	assert.InDelta(t, 100, report.States[0].CurrentYTD, 0.001)
	assert.InDelta(t, 3000, report.States[0].SalesPrior, 0.001)
	assert.Equal(t, "GA", report.States[1].State)
	assert.Zero(t, report.States[1].CurrentYTD)
	assert.Equal(t, "MS", report.States[2].State)
	assert.InDelta(t, 250, report.States[2].CurrentYTD, 0.001)
	assert.Zero(t, report.States[2].SalesPrior)
}

func TestComputeYoYUnclassifiableNameCountsInTerritoryOnly(t *testing.T) {
	classify := NewStateClassifier(southeastStates)
	orders := []Order{
		order(t, "Humidor Direct", "2026-02-01", item("X1", "X", 1, 500)),
	}

	report := ComputeYoY(orders, YoYDataset{}, 2026, classify)

	assert.InDelta(t, 500, report.TerritoryCurrentYTD, 0.001)
	assert.Empty(t, report.States)
}

func TestComputeYoYNilClassifier(t *testing.T) {
	orders := []Order{
		order(t, "Smoke Ring - AL", "2026-02-01", item("X1", "X", 1, 100)),
	}
	report := ComputeYoY(orders, YoYDataset{}, 2026, nil)
	assert.InDelta(t, 100, report.TerritoryCurrentYTD, 0.001)
	assert.Empty(t, report.States)
}

func TestStateClassifierSuffixBeatsToken(t *testing.T) {
	classify := NewStateClassifier(southeastStates)

	st, ok := classify("Peach Humidor - GA")
	require.True(t, ok)
	assert.Equal(t, "GA", st)

	st, ok = classify("Tupelo Tobacco MS")
	require.True(t, ok)
	assert.Equal(t, "MS", st)

	_, ok = classify("Humidor Direct")
	assert.False(t, ok)
}

func TestMetroClassifier(t *testing.T) {
	classify := NewMetroClassifier(map[string][]string{
		"Birmingham": {"Hoover", "Trussville"},
		"Nashville":  {"Nashville", "Franklin"},
	})

	metro, ok := classify("Hoover")
	require.True(t, ok)
	assert.Equal(t, "Birmingham", metro)

	metro, ok = classify("Franklin")
	require.True(t, ok)
	assert.Equal(t, "Nashville", metro)

	_, ok = classify("Mobile")
	assert.False(t, ok)
}
