package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mfcdist/mfc-sales-api/internal/application/service"
	"github.com/mfcdist/mfc-sales-api/internal/domain/enum"
	"github.com/mfcdist/mfc-sales-api/internal/domain/repository"
	"github.com/mfcdist/mfc-sales-api/internal/presentation/http/dto/request"
	"github.com/mfcdist/mfc-sales-api/internal/presentation/http/dto/response"
	"github.com/mfcdist/mfc-sales-api/pkg/pagination"
	"github.com/mfcdist/mfc-sales-api/pkg/utils"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func toItemInputs(items []request.OrderItemRequest) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.OrderItemInput{
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
			Note:      item.Note,
		})
	}
	return inputs
}

// Create handles hand-entered order creation
// @Summary Create Order
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateOrderRequest true "Order data"
// @Success 201 {object} response.APIResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		response.BadRequest(c, "Invalid order date, expected YYYY-MM-DD")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerName: req.CustomerName,
		PONumber:     req.PONumber,
		OrderDate:    orderDate,
		Items:        toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles fetching a single order with its items
// @Summary Get Order
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders with filters
// @Summary List Orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by customer name or PO number"
// @Param source query string false "Filter by source (entered or imported)"
// @Param customer_id query string false "Filter by customer"
// @Param start_date query string false "Earliest order date (YYYY-MM-DD)"
// @Param end_date query string false "Latest order date (YYYY-MM-DD)"
// @Param group_by query string false "Group results (month)"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
		Search:    req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	if req.Source != "" {
		switch strings.ToLower(req.Source) {
		case "entered":
			source := enum.OrderSourceEntered
			params.Source = &source
		case "imported":
			source := enum.OrderSourceImported
			params.Source = &source
		default:
			response.BadRequest(c, "Invalid source, expected entered or imported")
			return
		}
	}

	if req.CustomerID != "" {
		customerID, err := utils.ParseUUID(req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}

	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}

	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		params.EndDate = &end
	}

	if req.GroupBy != "" {
		if !strings.EqualFold(req.GroupBy, "month") {
			response.BadRequest(c, "Invalid group_by, expected month")
			return
		}
		groups, err := h.orderService.ListOrdersByMonth(c.Request.Context(), params.StartDate, params.EndDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Orders retrieved successfully", groups)
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Delete handles order deletion
// @Summary Delete Order
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Import handles a historical order import batch
// @Summary Import Orders
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ImportOrdersRequest true "Import batch"
// @Success 200 {object} response.APIResponse
// @Router /orders/import [post]
func (h *OrderHandler) Import(c *gin.Context) {
	var req request.ImportOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	orders := make([]service.CreateOrderInput, 0, len(req.Orders))
	for i, o := range req.Orders {
		orderDate, err := parseDate(o.OrderDate)
		if err != nil {
			response.BadRequest(c, fmt.Sprintf("Order %d: invalid order date, expected YYYY-MM-DD", i+1))
			return
		}
		orders = append(orders, service.CreateOrderInput{
			CustomerName: o.CustomerName,
			PONumber:     o.PONumber,
			OrderDate:    orderDate,
			Items:        toItemInputs(o.Items),
		})
	}

	summary, err := h.orderService.ImportOrders(c.Request.Context(), &service.ImportOrdersInput{
		Mode:   req.Mode,
		Orders: orders,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders imported successfully", summary)
}

// Export handles CSV export of orders in a date range
// @Summary Export Orders
// @Tags orders
// @Security BearerAuth
// @Produce text/csv
// @Param start_date query string true "Earliest order date (YYYY-MM-DD)"
// @Param end_date query string true "Latest order date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /orders/export [get]
func (h *OrderHandler) Export(c *gin.Context) {
	var req request.ExportOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "start_date and end_date are required")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	data, err := h.orderService.ExportOrdersCSV(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("orders_%s_%s.csv", req.StartDate, req.EndDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/csv", data)
}
