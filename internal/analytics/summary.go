package analytics

import (
	"sort"
	"time"
)

// YearSummary condenses one calendar year of a customer's activity.
type YearSummary struct {
	Year         int       `json:"year"`
	OrderCount   int       `json:"order_count"`
	TotalRevenue float64   `json:"total_revenue"`
	AvgOrder     float64   `json:"avg_order"`
	FirstOrder   time.Time `json:"first_order"`
	LastOrder    time.Time `json:"last_order"`
}

// YearSummaries groups orders by calendar year and totals each year's
// count, revenue and average order size. Years are returned newest
// first, matching how the account history is presented.
func YearSummaries(orders []Order) []YearSummary {
	byYear := make(map[int]*YearSummary)
	for _, o := range orders {
		y := o.Date.Year()
		s, ok := byYear[y]
		if !ok {
			s = &YearSummary{Year: y, FirstOrder: o.Date, LastOrder: o.Date}
			byYear[y] = s
		}
		s.OrderCount++
		s.TotalRevenue += o.Total
		if o.Date.Before(s.FirstOrder) {
			s.FirstOrder = o.Date
		}
		if o.Date.After(s.LastOrder) {
			s.LastOrder = o.Date
		}
	}

	summaries := make([]YearSummary, 0, len(byYear))
	for _, s := range byYear {
		if s.OrderCount > 0 {
			s.AvgOrder = s.TotalRevenue / float64(s.OrderCount)
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Year > summaries[j].Year })
	return summaries
}

// MonthlyPoint is one month of the sales series.
type MonthlyPoint struct {
	Month      string  `json:"month"` // YYYY-MM
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
}

// MonthlySeries is the month-by-month revenue series with the headline
// figures the reports screen shows alongside it.
type MonthlySeries struct {
	Points       []MonthlyPoint `json:"points"`
	TotalRevenue float64        `json:"total_revenue"`
	AvgPerMonth  float64        `json:"avg_per_month"`
	PeakRevenue  float64        `json:"peak_revenue"`
	PeakMonth    string         `json:"peak_month"`
}

// MonthlySales buckets orders into YYYY-MM months, oldest first.
func MonthlySales(orders []Order) MonthlySeries {
	byMonth := make(map[string]*MonthlyPoint)
	for _, o := range orders {
		key := o.Date.Format("2006-01")
		p, ok := byMonth[key]
		if !ok {
			p = &MonthlyPoint{Month: key}
			byMonth[key] = p
		}
		p.Revenue += o.Total
		p.OrderCount++
	}

	series := MonthlySeries{Points: make([]MonthlyPoint, 0, len(byMonth))}
	for _, p := range byMonth {
		series.Points = append(series.Points, *p)
	}
	sort.Slice(series.Points, func(i, j int) bool { return series.Points[i].Month < series.Points[j].Month })

	for _, p := range series.Points {
		series.TotalRevenue += p.Revenue
		if p.Revenue > series.PeakRevenue {
			series.PeakRevenue = p.Revenue
			series.PeakMonth = p.Month
		}
	}
	if len(series.Points) > 0 {
		series.AvgPerMonth = series.TotalRevenue / float64(len(series.Points))
	}
	return series
}

// CustomerTotal is one customer's all-time order volume.
type CustomerTotal struct {
	Name       string  `json:"name"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// TopCustomers totals order revenue per customer name and ranks the
// result by revenue descending, name ascending on ties. limit <= 0
// returns the full list.
func TopCustomers(orders []Order, limit int) []CustomerTotal {
	byName := make(map[string]*CustomerTotal)
	for _, o := range orders {
		t, ok := byName[o.CustomerName]
		if !ok {
			t = &CustomerTotal{Name: o.CustomerName}
			byName[o.CustomerName] = t
		}
		t.OrderCount++
		t.Revenue += o.Total
	}

	totals := make([]CustomerTotal, 0, len(byName))
	for _, t := range byName {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Revenue != totals[j].Revenue {
			return totals[i].Revenue > totals[j].Revenue
		}
		return totals[i].Name < totals[j].Name
	})
	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}
