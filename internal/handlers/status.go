package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

type StatusHandler struct {
	statuses *services.StatusService
}

func NewStatusHandler(statuses *services.StatusService) *StatusHandler {
	return &StatusHandler{
		statuses: statuses,
	}
}

// UpdateStatus godoc
// @Summary     Update order status
// @Description Sets the order to any of the four statuses. Transitioning to COMPLETED stamps completed_at; every other status clears it.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       order_id path string true "Order ID (UUID)"
// @Param       request body models.StatusUpdateRequest true "New status"
// @Success     200 {object} models.StatusUpdateResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/status [patch]
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	order, err := h.statuses.SetStatus(c.Param("order_id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusUpdateResponse{
		Success: true,
		Order:   models.NewOrderResponse(order),
	})
}
