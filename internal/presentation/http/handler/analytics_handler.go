package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mfcdist/mfc-sales-api/internal/application/service"
	"github.com/mfcdist/mfc-sales-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles sales analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// asOf reads the optional as_of query parameter, defaulting to the
// current time. Reports are computed relative to this instant.
func asOf(c *gin.Context) (time.Time, bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Now(), true
	}
	t, err := parseDate(raw)
	if err != nil {
		response.BadRequest(c, "Invalid as_of date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

// CustomerHistory returns a customer's full order history with yearly summaries
// @Summary Customer History
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param name path string true "Customer name"
// @Success 200 {object} response.APIResponse
// @Router /analytics/customers/{name}/history [get]
func (h *AnalyticsHandler) CustomerHistory(c *gin.Context) {
	history, err := h.analyticsService.GetCustomerHistory(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer history retrieved successfully", history)
}

// Rankings returns top product rankings across account, recent,
// city, metro and state scopes for a customer
// @Summary Product Rankings
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param name path string true "Customer name"
// @Param as_of query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /analytics/customers/{name}/rankings [get]
func (h *AnalyticsHandler) Rankings(c *gin.Context) {
	now, ok := asOf(c)
	if !ok {
		return
	}

	tables, err := h.analyticsService.GetRankings(c.Request.Context(), c.Param("name"), now)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Rankings retrieved successfully", tables)
}

// Reorders returns reorder predictions for a customer's products
// @Summary Reorder Predictions
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param name path string true "Customer name"
// @Param as_of query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /analytics/customers/{name}/reorders [get]
func (h *AnalyticsHandler) Reorders(c *gin.Context) {
	now, ok := asOf(c)
	if !ok {
		return
	}

	predictions, err := h.analyticsService.GetReorderPredictions(c.Request.Context(), c.Param("name"), now)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reorder predictions retrieved successfully", predictions)
}

// Dropoffs returns products a customer used to buy but has stopped ordering
// @Summary Product Dropoffs
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param name path string true "Customer name"
// @Success 200 {object} response.APIResponse
// @Router /analytics/customers/{name}/dropoffs [get]
func (h *AnalyticsHandler) Dropoffs(c *gin.Context) {
	dropoffs, err := h.analyticsService.GetDropoffs(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dropoffs retrieved successfully", dropoffs)
}

// Usage returns a product staleness report for a customer
// @Summary Product Usage
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param name path string true "Customer name"
// @Param as_of query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /analytics/customers/{name}/usage [get]
func (h *AnalyticsHandler) Usage(c *gin.Context) {
	now, ok := asOf(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.GetProductUsage(c.Request.Context(), c.Param("name"), now)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Usage report retrieved successfully", report)
}

// YoY returns a year-over-year state comparison against the stored dataset
// @Summary Year-over-Year Comparison
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param year query int false "Target year, defaults to the current year"
// @Success 200 {object} response.APIResponse
// @Router /analytics/yoy [get]
func (h *AnalyticsHandler) YoY(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1900 || parsed > 9999 {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = parsed
	}

	report, err := h.analyticsService.GetYoY(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Year-over-year comparison retrieved successfully", report)
}

// SaveYoYDataset stores the prior-year dataset used for comparison
// @Summary Save Year-over-Year Dataset
// @Tags analytics
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /analytics/yoy/dataset [put]
func (h *AnalyticsHandler) SaveYoYDataset(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.analyticsService.SaveYoYDataset(c.Request.Context(), payload); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dataset saved successfully", nil)
}

// Report returns the territory sales report
// @Summary Territory Report
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /analytics/report [get]
func (h *AnalyticsHandler) Report(c *gin.Context) {
	report, err := h.analyticsService.GetTerritoryReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Territory report retrieved successfully", report)
}

// Summary returns headline territory totals
// @Summary Territory Summary
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsService.GetTerritorySummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Territory summary retrieved successfully", summary)
}
