package analytics

import (
	"math"
	"sort"
	"time"
)

// Reorder status classification, evaluated overdue first.
const (
	StatusOverdue    = "overdue"
	StatusDueSoon    = "due-soon"
	StatusOnSchedule = "on-schedule"
)

// DefaultDueSoonDays is the window ahead of the expected reorder date
// within which a SKU is flagged due-soon.
const DefaultDueSoonDays = 14

// Prediction is the reorder forecast for one SKU of one customer.
type Prediction struct {
	SKU              string    `json:"sku"`
	Name             string    `json:"name"`
	AvgIntervalDays  int       `json:"avg_interval_days"`
	DaysSinceLast    int       `json:"days_since_last"`
	DaysUntilReorder int       `json:"days_until_reorder"`
	Status           string    `json:"status"`
	OrderCount       int       `json:"order_count"`
	LastOrderDate    time.Time `json:"last_order_date"`
	ExpectedNextDate time.Time `json:"expected_next_date"`
}

// PredictReorders analyzes one customer's order history and predicts,
// per SKU, when the next order is expected. A SKU needs at least two
// order dates to establish a cadence; single purchases are skipped.
// The average interval is the mean gap between consecutive order
// dates, the expected next date is the last order plus that interval,
// and the status is overdue when the gap since the last order already
// exceeds the average, due-soon when the expected date is within
// DefaultDueSoonDays of now, on-schedule otherwise.
//
// The full sorted list is returned: overdue first, then due-soon, then
// on-schedule, soonest-due first within each bucket. Callers wanting a
// top-10 view slice the result themselves.
func PredictReorders(orders []Order, now time.Time) []Prediction {
	type skuHistory struct {
		name  string
		dates []time.Time
	}

	histories := make(map[string]*skuHistory)
	for _, o := range orders {
		for _, it := range o.Items {
			if !countable(it) {
				continue
			}
			h, ok := histories[it.SKU]
			if !ok {
				h = &skuHistory{name: it.ProductName}
				histories[it.SKU] = h
			}
			h.dates = append(h.dates, o.Date)
		}
	}

	predictions := make([]Prediction, 0, len(histories))
	for sku, h := range histories {
		if len(h.dates) < 2 {
			continue
		}
		sort.Slice(h.dates, func(i, j int) bool { return h.dates[i].Before(h.dates[j]) })

		totalGap := 0.0
		for i := 1; i < len(h.dates); i++ {
			totalGap += h.dates[i].Sub(h.dates[i-1]).Hours() / 24
		}
		avgDays := totalGap / float64(len(h.dates)-1)

		last := h.dates[len(h.dates)-1]
		daysSince := now.Sub(last).Hours() / 24
		expected := last.Add(time.Duration(avgDays * 24 * float64(time.Hour)))
		daysUntil := expected.Sub(now).Hours() / 24

		status := StatusOnSchedule
		if daysSince > avgDays {
			status = StatusOverdue
		} else if daysUntil <= DefaultDueSoonDays {
			status = StatusDueSoon
		}

		predictions = append(predictions, Prediction{
			SKU:              sku,
			Name:             h.name,
			AvgIntervalDays:  int(math.Round(avgDays)),
			DaysSinceLast:    int(math.Round(daysSince)),
			DaysUntilReorder: int(math.Round(daysUntil)),
			Status:           status,
			OrderCount:       len(h.dates),
			LastOrderDate:    last,
			ExpectedNextDate: expected,
		})
	}

	sort.Slice(predictions, func(i, j int) bool {
		a, b := predictions[i], predictions[j]
		if ra, rb := statusRank(a.Status), statusRank(b.Status); ra != rb {
			return ra < rb
		}
		if a.DaysUntilReorder != b.DaysUntilReorder {
			return a.DaysUntilReorder < b.DaysUntilReorder
		}
		return a.SKU < b.SKU
	})

	return predictions
}

func statusRank(status string) int {
	switch status {
	case StatusOverdue:
		return 0
	case StatusDueSoon:
		return 1
	default:
		return 2
	}
}
