package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mfcdist/mfc-sales-api/internal/analytics"
	"github.com/mfcdist/mfc-sales-api/internal/config"
	"github.com/mfcdist/mfc-sales-api/internal/domain/entity"
	"github.com/mfcdist/mfc-sales-api/internal/domain/enum"
	"github.com/mfcdist/mfc-sales-api/internal/domain/repository"
	"github.com/mfcdist/mfc-sales-api/pkg/apperror"
)

// yoySnapshotLabel is the single dataset slot the upload endpoint
// replaces.
const yoySnapshotLabel = "territory"

// AnalyticsService runs the sales analytics engine over stored orders.
// The engine itself is pure; this service loads the data, converts
// cents to dollars and passes an explicit reference time so the
// handlers stay deterministic under test.
type AnalyticsService struct {
	orderRepo     repository.OrderRepository
	customerRepo  repository.CustomerRepository
	analyticsRepo repository.AnalyticsRepository
	cfg           config.AnalyticsConfig
	classifyState analytics.StateClassifier
	classifyMetro analytics.MetroClassifier
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	analyticsRepo repository.AnalyticsRepository,
	cfg config.AnalyticsConfig,
) *AnalyticsService {
	return &AnalyticsService{
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		analyticsRepo: analyticsRepo,
		cfg:           cfg,
		classifyState: analytics.NewStateClassifier(cfg.States),
		classifyMetro: analytics.NewMetroClassifier(cfg.Metros),
	}
}

func toSnapshot(orders []entity.Order) []analytics.Order {
	out := make([]analytics.Order, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		snap := analytics.Order{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			Date:         o.OrderDate,
			Total:        float64(o.Total) / 100,
		}
		for _, item := range o.Items {
			snap.Items = append(snap.Items, analytics.LineItem{
				SKU:         item.SKU,
				ProductName: item.Name,
				Quantity:    item.Quantity,
				Total:       float64(item.Total) / 100,
				Note:        item.Kind == enum.ItemKindNote,
			})
		}
		out = append(out, snap)
	}
	return out
}

func toCustomerSnapshot(customers []entity.Customer) []analytics.Customer {
	out := make([]analytics.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, analytics.Customer{
			Name:      c.Name,
			ShipState: c.ShipState,
			ShipCity:  c.ShipCity,
		})
	}
	return out
}

// resolveCustomer maps a name query to the canonical customer_name
// stored on orders. Lookups are case-insensitive substring matches, so
// "smoke ring" finds "Smoke Ring - AL"; the earliest order's spelling
// wins when several accounts match.
func (s *AnalyticsService) resolveCustomer(ctx context.Context, query string) (string, error) {
	name, err := s.orderRepo.ResolveCustomerName(ctx, query)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", apperror.NewNotFoundError("Order history for customer")
	}
	return name, nil
}

// customerHistory resolves the name query and loads that customer's
// orders as engine snapshots, failing with 404 when nothing matches.
func (s *AnalyticsService) customerHistory(ctx context.Context, query string) ([]analytics.Order, string, error) {
	name, err := s.resolveCustomer(ctx, query)
	if err != nil {
		return nil, "", err
	}

	orders, err := s.orderRepo.ListByCustomerName(ctx, name)
	if err != nil {
		return nil, "", err
	}
	if len(orders) == 0 {
		return nil, "", apperror.NewNotFoundError("Order history for customer")
	}

	hist := toSnapshot(orders)
	if err := analytics.Validate(hist); err != nil {
		return nil, "", apperror.NewBadRequestError(err.Error())
	}
	return hist, name, nil
}

// CustomerHistory is the account history view: orders plus per-year
// summaries.
type CustomerHistory struct {
	CustomerName string                  `json:"customer_name"`
	Orders       []entity.Order          `json:"orders"`
	Years        []analytics.YearSummary `json:"years"`
}

// GetCustomerHistory returns a customer's full order history with
// year-by-year summaries, newest orders first.
func (s *AnalyticsService) GetCustomerHistory(ctx context.Context, customerName string) (*CustomerHistory, error) {
	name, err := s.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListByCustomerName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperror.NewNotFoundError("Order history for customer")
	}

	// Newest first for display; the repository returns ascending.
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}

	return &CustomerHistory{
		CustomerName: name,
		Orders:       orders,
		Years:        analytics.YearSummaries(toSnapshot(orders)),
	}, nil
}

// GetRankings builds the five top-N ranking tables for a customer.
func (s *AnalyticsService) GetRankings(ctx context.Context, customerName string, now time.Time) (*analytics.RankingTables, error) {
	_, name, err := s.customerHistory(ctx, customerName)
	if err != nil {
		return nil, err
	}

	all, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tables := analytics.RankingScopes(
		toSnapshot(all),
		toCustomerSnapshot(customers),
		name,
		now,
		analytics.ScopeOptions{
			TopN:               s.cfg.TopN,
			RecentWindowMonths: s.cfg.RecentWindowMonths,
			ClassifyMetro:      s.classifyMetro,
		},
	)
	return &tables, nil
}

// GetReorderPredictions returns the customer's reorder forecast,
// truncated to the configured table size.
func (s *AnalyticsService) GetReorderPredictions(ctx context.Context, customerName string, now time.Time) ([]analytics.Prediction, error) {
	hist, _, err := s.customerHistory(ctx, customerName)
	if err != nil {
		return nil, err
	}

	predictions := analytics.PredictReorders(hist, now)
	if limit := s.cfg.TopN; limit > 0 && len(predictions) > limit {
		predictions = predictions[:limit]
	}
	return predictions, nil
}

// GetDropoffs returns the SKUs the customer stopped ordering around the
// configured split date.
func (s *AnalyticsService) GetDropoffs(ctx context.Context, customerName string) ([]analytics.Dropoff, error) {
	hist, _, err := s.customerHistory(ctx, customerName)
	if err != nil {
		return nil, err
	}

	split, err := s.cfg.DropoffSplit()
	if err != nil {
		return nil, apperror.NewBadRequestError("Dropoff split date is misconfigured: " + err.Error())
	}
	return analytics.DetectDropoffs(hist, split), nil
}

// GetProductUsage returns the customer's staleness report.
func (s *AnalyticsService) GetProductUsage(ctx context.Context, customerName string, now time.Time) (*analytics.UsageReport, error) {
	hist, _, err := s.customerHistory(ctx, customerName)
	if err != nil {
		return nil, err
	}

	report := analytics.ProductUsage(hist, now)
	return &report, nil
}

// GetYoY combines the stored comparison dataset with fresh totals for
// the target year.
func (s *AnalyticsService) GetYoY(ctx context.Context, targetYear int) (*analytics.YoYReport, error) {
	snapshot, err := s.analyticsRepo.GetYoYSnapshot(ctx, yoySnapshotLabel)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, apperror.NewNotFoundError("Year-over-year dataset")
	}

	var dataset analytics.YoYDataset
	if err := json.Unmarshal(snapshot.Payload, &dataset); err != nil {
		return nil, apperror.NewBadRequestError("Stored year-over-year dataset is malformed")
	}

	all, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := analytics.ComputeYoY(toSnapshot(all), dataset, targetYear, s.classifyState)
	return &report, nil
}

// SaveYoYDataset validates and stores the uploaded comparison dataset,
// replacing any previous upload.
func (s *AnalyticsService) SaveYoYDataset(ctx context.Context, payload json.RawMessage) error {
	var dataset analytics.YoYDataset
	if err := json.Unmarshal(payload, &dataset); err != nil {
		return apperror.NewBadRequestError("Dataset is not valid JSON: " + err.Error())
	}

	return s.analyticsRepo.SaveYoYSnapshot(ctx, &entity.YoYSnapshot{
		Label:   yoySnapshotLabel,
		Payload: payload,
	})
}

// TerritoryReport is the reports screen: monthly series, top accounts
// and top SKUs across the whole territory.
type TerritoryReport struct {
	Monthly      analytics.MonthlySeries     `json:"monthly"`
	TopCustomers []analytics.CustomerTotal   `json:"top_customers"`
	TopSKUs      []repository.SKUSalesResult `json:"top_skus"`
}

// GetTerritoryReport builds the territory-wide reports view.
func (s *AnalyticsService) GetTerritoryReport(ctx context.Context) (*TerritoryReport, error) {
	all, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	hist := toSnapshot(all)

	topSKUs, err := s.analyticsRepo.GetTopSKUs(ctx, s.cfg.TopN)
	if err != nil {
		return nil, err
	}

	return &TerritoryReport{
		Monthly:      analytics.MonthlySales(hist),
		TopCustomers: analytics.TopCustomers(hist, s.cfg.TopN),
		TopSKUs:      topSKUs,
	}, nil
}

// TerritorySummary is the headline stats card.
type TerritorySummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	OrderCount    int64   `json:"order_count"`
	CustomerCount int     `json:"customer_count"`
}

// GetTerritorySummary returns the headline totals.
func (s *AnalyticsService) GetTerritorySummary(ctx context.Context) (*TerritorySummary, error) {
	revenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.analyticsRepo.GetOrderCount(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &TerritorySummary{
		TotalRevenue:  revenue,
		OrderCount:    count,
		CustomerCount: len(customers),
	}, nil
}
