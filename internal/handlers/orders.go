package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

type OrdersHandler struct {
	queries *services.OrderQueryService
}

func NewOrdersHandler(queries *services.OrderQueryService) *OrdersHandler {
	return &OrdersHandler{
		queries: queries,
	}
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns a filtered, searchable, paginated order listing for staff, newest upload first.
// @Tags        orders
// @Produce     json
// @Param       page query int false "Page number (1-indexed, default 1)"
// @Param       limit query int false "Page size (1-100, default 20)"
// @Param       status query string false "Filter by status (PENDING, PRINTING, COMPLETED, FAILED)"
// @Param       search query string false "Match customer name, customer email or payment reference"
// @Success     200 {object} models.OrderListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	page := 1
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "page must be a positive integer"})
			return
		}
		page = n
	}

	limit := services.DefaultPageSize
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > services.MaxPageSize {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	var filter models.ListOrdersFilter
	if v := c.Query("status"); v != "" {
		status := models.OrderStatus(v)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:         "invalid status filter",
				ValidStatuses: models.ValidStatusStrings(),
			})
			return
		}
		filter.Status = status
	}
	filter.Search = c.Query("search")

	orders, pagination, err := h.queries.List(filter, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]models.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = models.NewOrderResponse(&orders[i])
	}

	c.JSON(http.StatusOK, models.OrderListResponse{
		Orders:     responses,
		Pagination: pagination,
	})
}

// GetOrder godoc
// @Summary     Get order details
// @Description Returns one order with its customer summary.
// @Tags        orders
// @Produce     json
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	order, err := h.queries.GetOrder(c.Param("order_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}
