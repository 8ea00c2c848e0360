package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/services"
)

type DownloadHandler struct {
	downloads *services.DownloadService
}

func NewDownloadHandler(downloads *services.DownloadService) *DownloadHandler {
	return &DownloadHandler{
		downloads: downloads,
	}
}

// Download godoc
// @Summary     Download the submitted document
// @Description Streams the original file bytes under the user-supplied file name. The internal stored name never appears in the response.
// @Tags        orders
// @Produce     application/octet-stream
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {file} binary
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id}/download [get]
func (h *DownloadHandler) Download(c *gin.Context) {
	data, displayName, err := h.downloads.Resolve(c.Param("order_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", displayName))
	c.Data(http.StatusOK, "application/octet-stream", data)
}
