// Package analytics implements the historical sales analytics engine:
// top-N SKU rankings across geographic scopes, reorder prediction,
// dropoff detection, year-over-year comparison and product usage
// reports. Every function is a pure computation over snapshots passed
// in by the caller; time-dependent calculations take an explicit
// reference instant so results are deterministic and testable.
package analytics

import (
	"fmt"
	"time"
)

// Order is a read-only snapshot of a sales order as the engine consumes
// it. Amounts are decimal dollars; the persistence layer owns any
// cent-based representation and converts when building snapshots.
type Order struct {
	ID           string
	CustomerName string
	Date         time.Time
	Total        float64
	Items        []LineItem
}

// LineItem is a tagged variant: either a product line or a free-text
// note. Note lines carry no SKU and are invisible to every aggregate.
type LineItem struct {
	SKU         string
	ProductName string
	Quantity    int
	Total       float64
	Note        bool
}

// Customer carries the geographic fields used by the state and metro
// ranking scopes. Name joins to Order.CustomerName by exact equality.
type Customer struct {
	Name      string
	ShipState string
	ShipCity  string
}

// SKUTotal is one entry of a per-SKU aggregate.
type SKUTotal struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// RankedRow is one row of a top-N ranking table. Percentage is the
// row's share of the full aggregate's quantity (not just the rows that
// survived truncation), rounded to one decimal place.
type RankedRow struct {
	Rank       int     `json:"rank"`
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// ValidationError reports a malformed order snapshot. The engine fails
// fast on structurally broken input instead of producing silently wrong
// aggregates; empty datasets are valid and never trigger it.
type ValidationError struct {
	Index int
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order at index %d: %s %s", e.Index, e.Field, e.Msg)
}

// Validate checks that every order carries the fields the engine relies
// on. Missing items slices are tolerated only when nil-and-empty, since
// degenerate orders exist in legacy exports; a zero date or blank
// customer name is not recoverable.
func Validate(orders []Order) error {
	for i, o := range orders {
		if o.CustomerName == "" {
			return &ValidationError{Index: i, Field: "customerName", Msg: "is empty"}
		}
		if o.Date.IsZero() {
			return &ValidationError{Index: i, Field: "date", Msg: "is missing"}
		}
		if o.Total < 0 {
			return &ValidationError{Index: i, Field: "total", Msg: "is negative"}
		}
		for j, it := range o.Items {
			if it.Note {
				continue
			}
			if it.SKU == "" {
				return &ValidationError{Index: i, Field: fmt.Sprintf("items[%d].sku", j), Msg: "is empty"}
			}
			if it.Quantity <= 0 {
				return &ValidationError{Index: i, Field: fmt.Sprintf("items[%d].quantity", j), Msg: "must be positive"}
			}
		}
	}
	return nil
}
