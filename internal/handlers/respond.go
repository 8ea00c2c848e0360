package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

// writeError is the single translation point from the service error taxonomy
// to transport status codes. Internal detail from persistence failures is
// logged here and never placed in the response body.
func writeError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:         vErr.Msg,
			ValidStatuses: vErr.ValidStatuses,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrPayloadTooLarge):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file size must be less than 25MB"})
		return
	case errors.Is(err, services.ErrPaymentRejected):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid MPesa reference number"})
		return
	case errors.Is(err, services.ErrBlobMissing):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "file not found"})
		return
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}

	var pErr *services.PersistenceError
	if errors.As(err, &pErr) {
		log.Printf("persistence error: %v", pErr)
		if pErr.Unavailable {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "service temporarily unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	log.Printf("unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
}
