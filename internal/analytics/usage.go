package analytics

import (
	"sort"
	"time"
)

// StaleSKU is a product a customer has not ordered for a while.
type StaleSKU struct {
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	LastOrdered time.Time `json:"last_ordered"`
	DaysAgo     int       `json:"days_ago"`
}

// UsageReport buckets the SKUs a customer has ever ordered by how long
// ago the most recent order was. SKUs ordered within the last 30 days
// are healthy and omitted; the rest land in exactly one band.
type UsageReport struct {
	Stale30 []StaleSKU `json:"stale_30_60"`
	Stale60 []StaleSKU `json:"stale_60_90"`
	Stale90 []StaleSKU `json:"stale_90_plus"`
}

// ProductUsage computes the staleness report for one customer's orders.
// Each band is sorted oldest-last-order first so the most neglected
// products lead the list.
func ProductUsage(orders []Order, now time.Time) UsageReport {
	lastOrdered := make(map[string]*StaleSKU)
	for _, o := range orders {
		for _, it := range o.Items {
			if !countable(it) {
				continue
			}
			cur, ok := lastOrdered[it.SKU]
			if !ok || o.Date.After(cur.LastOrdered) {
				lastOrdered[it.SKU] = &StaleSKU{
					SKU:         it.SKU,
					Name:        it.ProductName,
					LastOrdered: o.Date,
				}
			}
		}
	}

	days30 := now.AddDate(0, 0, -30)
	days60 := now.AddDate(0, 0, -60)
	days90 := now.AddDate(0, 0, -90)

	report := UsageReport{
		Stale30: []StaleSKU{},
		Stale60: []StaleSKU{},
		Stale90: []StaleSKU{},
	}
	for _, s := range lastOrdered {
		s.DaysAgo = int(now.Sub(s.LastOrdered).Hours() / 24)
		switch {
		case s.LastOrdered.Before(days90):
			report.Stale90 = append(report.Stale90, *s)
		case s.LastOrdered.Before(days60):
			report.Stale60 = append(report.Stale60, *s)
		case s.LastOrdered.Before(days30):
			report.Stale30 = append(report.Stale30, *s)
		}
	}

	for _, band := range [][]StaleSKU{report.Stale30, report.Stale60, report.Stale90} {
		sort.Slice(band, func(i, j int) bool {
			if !band[i].LastOrdered.Equal(band[j].LastOrdered) {
				return band[i].LastOrdered.Before(band[j].LastOrdered)
			}
			return band[i].SKU < band[j].SKU
		})
	}

	return report
}
