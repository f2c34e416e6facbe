package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductUsageBands(t *testing.T) {
	now := day(t, "2025-09-01")
	orders := []Order{
		order(t, "A", "2025-08-20", item("FRESH", "Fresh", 1, 10)),     // 12 days ago
		order(t, "A", "2025-07-20", item("MID", "Mid", 1, 10)),         // 43 days ago
		order(t, "A", "2025-06-20", item("OLD", "Old", 1, 10)),         // 73 days ago
		order(t, "A", "2025-01-15", item("ANCIENT", "Ancient", 1, 10)), // 229 days ago
	}

	report := ProductUsage(orders, now)

	require.Len(t, report.Stale30, 1, "43 days stale lands in the 30-60 band")
	assert.Equal(t, "MID", report.Stale30[0].SKU)
	assert.Equal(t, 43, report.Stale30[0].DaysAgo)
	require.Len(t, report.Stale60, 1)
	assert.Equal(t, "OLD", report.Stale60[0].SKU)
	require.Len(t, report.Stale90, 1)
	assert.Equal(t, "ANCIENT", report.Stale90[0].SKU)
}

func TestProductUsageUsesMostRecentOrder(t *testing.T) {
	now := day(t, "2025-09-01")
	orders := []Order{
		order(t, "A", "2025-01-15", item("X1", "X", 1, 10)),
		order(t, "A", "2025-08-25", item("X1", "X", 1, 10)),
	}

	report := ProductUsage(orders, now)

	assert.Empty(t, report.Stale30)
	assert.Empty(t, report.Stale60)
	assert.Empty(t, report.Stale90)
}

func TestProductUsageSortsOldestFirst(t *testing.T) {
	now := day(t, "2025-09-01")
	orders := []Order{
		order(t, "A", "2025-03-01", item("B2", "B", 1, 10)),
		order(t, "A", "2025-01-01", item("A1", "A", 1, 10)),
		order(t, "A", "2025-01-01", item("C3", "C", 1, 10)),
	}

	report := ProductUsage(orders, now)

	require.Len(t, report.Stale90, 3)
	assert.Equal(t, "A1", report.Stale90[0].SKU)
	assert.Equal(t, "C3", report.Stale90[1].SKU)
	assert.Equal(t, "B2", report.Stale90[2].SKU)
}
