package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDropoffsAccumulatesAcrossOrders(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-03-01", item("A1", "Alpha", 3, 30)),
		order(t, "A", "2025-04-01", item("A1", "Alpha", 2, 20)),
	}

	dropoffs := DetectDropoffs(orders, day(t, "2025-07-01"))

	require.Len(t, dropoffs, 1)
	assert.Equal(t, "A1", dropoffs[0].SKU)
	assert.Equal(t, 5, dropoffs[0].Quantity)
}

func TestDetectDropoffsFiltersOneOffPurchases(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-03-01",
			item("ONE", "One Off", 1, 10),
			item("TWO", "Repeat", 2, 20),
		),
	}

	dropoffs := DetectDropoffs(orders, day(t, "2025-07-01"))

	require.Len(t, dropoffs, 1)
	assert.Equal(t, "TWO", dropoffs[0].SKU)
}

func TestDetectDropoffsExcludesSKUsStillOrdered(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-03-01", item("A1", "Alpha", 4, 40)),
		order(t, "A", "2025-08-01", item("A1", "Alpha", 1, 10)),
	}

	dropoffs := DetectDropoffs(orders, day(t, "2025-07-01"))
	assert.Empty(t, dropoffs)
}

func TestDetectDropoffsSplitDateBoundary(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-06-30", item("A1", "Alpha", 3, 30)),
		// An order exactly on the split date counts as "after".
		order(t, "A", "2025-07-01", item("A1", "Alpha", 1, 10)),
	}

	dropoffs := DetectDropoffs(orders, day(t, "2025-07-01"))
	assert.Empty(t, dropoffs)
}

func TestDetectDropoffsSortedByQuantity(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-02-01",
			item("SMALL", "Small", 2, 20),
			item("BIG", "Big", 9, 90),
			item("ZTIE", "Tie Z", 5, 50),
			item("ATIE", "Tie A", 5, 50),
		),
	}

	dropoffs := DetectDropoffs(orders, day(t, "2025-07-01"))

	require.Len(t, dropoffs, 4)
	assert.Equal(t, "BIG", dropoffs[0].SKU)
	assert.Equal(t, "ATIE", dropoffs[1].SKU)
	assert.Equal(t, "ZTIE", dropoffs[2].SKU)
	assert.Equal(t, "SMALL", dropoffs[3].SKU)
}

func TestDetectDropoffsIgnoresPromotionalAndNoteLines(t *testing.T) {
	orders := []Order{
		order(t, "A", "2025-02-01",
			item("MFPR9", "Promo", 6, 0),
			LineItem{Note: true, ProductName: "call before delivery"},
		),
	}

	dropoffs := DetectDropoffs(orders, day(t, "2025-07-01"))
	assert.Empty(t, dropoffs)
}
