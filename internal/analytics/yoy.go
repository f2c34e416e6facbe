package analytics

import "sort"

// YoYDataset is the externally supplied prior-year comparison file.
// It already carries two full years of totals plus precomputed deltas;
// the engine never rederives them.
type YoYDataset struct {
	TerritoryTotalPrior      float64                  `json:"territory_total_2025"`
	TerritoryTotalPriorPrior float64                  `json:"territory_total_2024"`
	TerritoryChange          float64                  `json:"territory_change"`
	TerritoryPctChange       float64                  `json:"territory_pct_change"`
	StateTotals              map[string]YoYStateEntry `json:"state_totals"`
	ComparisonPeriod         string                   `json:"comparison_period"`
}

// YoYStateEntry is one state's slice of the prior-year dataset.
type YoYStateEntry struct {
	SalesPrior      float64 `json:"sales_2025"`
	SalesPriorPrior float64 `json:"sales_2024"`
	Change          float64 `json:"change"`
	PctChange       float64 `json:"pct_change"`
}

// YoYStateRow presents three time buckets for one state: the target
// year computed fresh from order data next to the two prior-year
// figures carried by the dataset. Change and PctChange compare the two
// dataset years only; the current year-to-date figure is shown
// side-by-side for manual comparison, not diffed, since a partial year
// against a full year is not a meaningful delta.
type YoYStateRow struct {
	State           string  `json:"state"`
	CurrentYTD      float64 `json:"current_ytd"`
	SalesPrior      float64 `json:"sales_prior"`
	SalesPriorPrior float64 `json:"sales_prior_prior"`
	Change          float64 `json:"change"`
	PctChange       float64 `json:"pct_change"`
}

// YoYReport is the combined year-over-year view.
type YoYReport struct {
	TargetYear               int           `json:"target_year"`
	TerritoryCurrentYTD      float64       `json:"territory_current_ytd"`
	TerritoryTotalPrior      float64       `json:"territory_total_prior"`
	TerritoryTotalPriorPrior float64       `json:"territory_total_prior_prior"`
	TerritoryChange          float64       `json:"territory_change"`
	TerritoryPctChange       float64       `json:"territory_pct_change"`
	States                   []YoYStateRow `json:"states"`
	ComparisonPeriod         string        `json:"comparison_period"`
}

// ComputeYoY filters orders to the target year, buckets their totals by
// the state extracted from the customer name, and unions the fresh
// figures with the prior-year dataset. State extraction is the caller's
// classifier; orders whose names it cannot place contribute to the
// territory total but to no state bucket (a documented limitation of
// the name heuristic, not an error). States present in the dataset but
// absent from current orders still appear with a zero YTD figure.
func ComputeYoY(orders []Order, dataset YoYDataset, targetYear int, classify StateClassifier) YoYReport {
	currentByState := make(map[string]float64)
	territory := 0.0

	for _, o := range orders {
		if o.Date.Year() != targetYear {
			continue
		}
		territory += o.Total
		if classify != nil {
			if st, ok := classify(o.CustomerName); ok {
				currentByState[st] += o.Total
			}
		}
	}

	states := make(map[string]struct{}, len(dataset.StateTotals)+len(currentByState))
	for st := range dataset.StateTotals {
		states[st] = struct{}{}
	}
	for st := range currentByState {
		states[st] = struct{}{}
	}
	codes := make([]string, 0, len(states))
	for st := range states {
		codes = append(codes, st)
	}
	sort.Strings(codes)

	rows := make([]YoYStateRow, 0, len(codes))
	for _, st := range codes {
		entry := dataset.StateTotals[st]
		rows = append(rows, YoYStateRow{
			State:           st,
			CurrentYTD:      currentByState[st],
			SalesPrior:      entry.SalesPrior,
			SalesPriorPrior: entry.SalesPriorPrior,
			Change:          entry.Change,
			PctChange:       entry.PctChange,
		})
	}

	return YoYReport{
		TargetYear:               targetYear,
		TerritoryCurrentYTD:      territory,
		TerritoryTotalPrior:      dataset.TerritoryTotalPrior,
		TerritoryTotalPriorPrior: dataset.TerritoryTotalPriorPrior,
		TerritoryChange:          dataset.TerritoryChange,
		TerritoryPctChange:       dataset.TerritoryPctChange,
		States:                   rows,
		ComparisonPeriod:         dataset.ComparisonPeriod,
	}
}
