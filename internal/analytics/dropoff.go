package analytics

import (
	"sort"
	"time"
)

// Dropoff is a SKU a customer bought repeatedly before the split date
// and never again after it.
type Dropoff struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// minDropoffQuantity filters one-off purchases out of the dropoff
// report: a single unit bought once and never again is noise, not a
// lost product line.
const minDropoffQuantity = 2

// DetectDropoffs partitions one customer's orders around splitDate and
// reports every SKU that was ordered before it (with a total quantity
// of at least minDropoffQuantity) and does not appear at all on or
// after it. Results are sorted by before-quantity descending, SKU
// ascending on ties.
func DetectDropoffs(orders []Order, splitDate time.Time) []Dropoff {
	before := make(map[string]*SKUTotal)
	after := make(map[string]struct{})

	for _, o := range orders {
		if o.Date.Before(splitDate) {
			for _, it := range o.Items {
				if !countable(it) {
					continue
				}
				t, ok := before[it.SKU]
				if !ok {
					t = &SKUTotal{SKU: it.SKU, Name: it.ProductName}
					before[it.SKU] = t
				}
				t.Quantity += it.Quantity
			}
		} else {
			for _, it := range o.Items {
				if !countable(it) {
					continue
				}
				after[it.SKU] = struct{}{}
			}
		}
	}

	dropoffs := make([]Dropoff, 0)
	for sku, t := range before {
		if _, stillOrdering := after[sku]; stillOrdering {
			continue
		}
		if t.Quantity < minDropoffQuantity {
			continue
		}
		dropoffs = append(dropoffs, Dropoff{SKU: sku, Name: t.Name, Quantity: t.Quantity})
	}

	sort.Slice(dropoffs, func(i, j int) bool {
		if dropoffs[i].Quantity != dropoffs[j].Quantity {
			return dropoffs[i].Quantity > dropoffs[j].Quantity
		}
		return dropoffs[i].SKU < dropoffs[j].SKU
	})

	return dropoffs
}
