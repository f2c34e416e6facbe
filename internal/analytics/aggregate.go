package analytics

import (
	"math"
	"sort"
	"time"
)

// AggregateBySKU folds every countable line item of the given orders
// into per-SKU quantity and revenue totals. The product name is taken
// from the first occurrence of a SKU and never overwritten, so two
// items sharing a SKU are assumed to share a name. Summation is
// commutative; iteration order does not affect the result.
func AggregateBySKU(orders []Order) map[string]*SKUTotal {
	totals := make(map[string]*SKUTotal)
	for _, o := range orders {
		for _, it := range o.Items {
			if !countable(it) {
				continue
			}
			t, ok := totals[it.SKU]
			if !ok {
				t = &SKUTotal{SKU: it.SKU, Name: it.ProductName}
				totals[it.SKU] = t
			}
			t.Quantity += it.Quantity
			t.Revenue += it.Total
		}
	}
	return totals
}

// TopN ranks an aggregate by quantity descending and truncates to the
// top n rows (n <= 0 means no truncation). Ties break by SKU ascending
// so repeated runs over the same data produce identical tables. Each
// row's percentage is its share of the whole aggregate's quantity, not
// just the surviving rows; an empty or zero-quantity aggregate yields
// an empty table rather than a division by zero.
func TopN(totals map[string]*SKUTotal, n int) []RankedRow {
	if len(totals) == 0 {
		return []RankedRow{}
	}

	entries := make([]*SKUTotal, 0, len(totals))
	grandTotal := 0
	for _, t := range totals {
		entries = append(entries, t)
		grandTotal += t.Quantity
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Quantity != entries[j].Quantity {
			return entries[i].Quantity > entries[j].Quantity
		}
		return entries[i].SKU < entries[j].SKU
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}

	rows := make([]RankedRow, len(entries))
	for i, t := range entries {
		pct := 0.0
		if grandTotal > 0 {
			pct = roundTo1(float64(t.Quantity) / float64(grandTotal) * 100)
		}
		rows[i] = RankedRow{
			Rank:       i + 1,
			SKU:        t.SKU,
			Name:       t.Name,
			Quantity:   t.Quantity,
			Revenue:    t.Revenue,
			Percentage: pct,
		}
	}
	return rows
}

// ScopeOptions parameterizes the five ranking scopes. Zero values fall
// back to the defaults the surrounding application ships with.
type ScopeOptions struct {
	TopN               int
	RecentWindowMonths int
	// ClassifyMetro maps a ship-to city onto a named metro grouping.
	// When nil, or when it has no answer for a city, the metro scope
	// falls back to exact city equality.
	ClassifyMetro MetroClassifier
}

func (o ScopeOptions) topN() int {
	if o.TopN > 0 {
		return o.TopN
	}
	return 10
}

func (o ScopeOptions) recentMonths() int {
	if o.RecentWindowMonths > 0 {
		return o.RecentWindowMonths
	}
	return 6
}

// RankingTables holds the five top-N SKU tables produced for one
// customer search. State and Metro are nil when the customer has no
// state or city on file; empty scopes produce empty (non-nil) tables.
type RankingTables struct {
	Territory     []RankedRow `json:"territory"`
	State         []RankedRow `json:"state,omitempty"`
	Metro         []RankedRow `json:"metro,omitempty"`
	Account       []RankedRow `json:"account"`
	AccountRecent []RankedRow `json:"account_recent"`
	CustomerState string      `json:"customer_state,omitempty"`
	CustomerMetro string      `json:"customer_metro,omitempty"`
}

// RankingScopes builds the five ranking tables for the named customer:
// the whole territory, the customer's state, the customer's metro, the
// account all-time and the account over the trailing recent window.
// A name->customer index is built once so the geographic joins stay
// linear in the number of orders.
func RankingScopes(hist []Order, customers []Customer, customerName string, now time.Time, opts ScopeOptions) RankingTables {
	byName := make(map[string]*Customer, len(customers))
	for i := range customers {
		byName[customers[i].Name] = &customers[i]
	}

	var state, city, metro string
	if c, ok := byName[customerName]; ok {
		state = c.ShipState
		city = c.ShipCity
	}
	if city != "" && opts.ClassifyMetro != nil {
		if m, ok := opts.ClassifyMetro(city); ok {
			metro = m
		}
	}

	tables := RankingTables{
		Territory:     TopN(AggregateBySKU(hist), opts.topN()),
		CustomerState: state,
		CustomerMetro: metro,
	}

	if state != "" {
		stateOrders := filterOrders(hist, func(o Order) bool {
			c, ok := byName[o.CustomerName]
			return ok && c.ShipState == state
		})
		tables.State = TopN(AggregateBySKU(stateOrders), opts.topN())
	}

	if city != "" {
		sameMetro := func(otherCity string) bool {
			if metro != "" && opts.ClassifyMetro != nil {
				if m, ok := opts.ClassifyMetro(otherCity); ok {
					return m == metro
				}
			}
			return otherCity == city
		}
		metroOrders := filterOrders(hist, func(o Order) bool {
			c, ok := byName[o.CustomerName]
			return ok && c.ShipCity != "" && sameMetro(c.ShipCity)
		})
		tables.Metro = TopN(AggregateBySKU(metroOrders), opts.topN())
	}

	account := filterOrders(hist, func(o Order) bool {
		return o.CustomerName == customerName
	})
	tables.Account = TopN(AggregateBySKU(account), opts.topN())

	cutoff := now.AddDate(0, -opts.recentMonths(), 0)
	recent := filterOrders(account, func(o Order) bool {
		return !o.Date.Before(cutoff)
	})
	tables.AccountRecent = TopN(AggregateBySKU(recent), opts.topN())

	return tables
}

func filterOrders(orders []Order, keep func(Order) bool) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
