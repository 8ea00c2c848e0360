package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

type UploadHandler struct {
	uploads *services.UploadService
}

func NewUploadHandler(uploads *services.UploadService) *UploadHandler {
	return &UploadHandler{
		uploads: uploads,
	}
}

// Submit godoc
// @Summary     Submit a print order
// @Description Accepts a document plus an MPesa payment reference and customer details, verifies the payment, stores the file and creates a PENDING order.
// @Tags        orders
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Document to print (max 25MB)"
// @Param       paymentReference formData string true "MPesa payment reference"
// @Param       customerName formData string true "Customer name"
// @Param       customerEmail formData string true "Customer email"
// @Param       customerPhone formData string false "Customer phone"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *UploadHandler) Submit(c *gin.Context) {
	in := services.SubmitInput{
		PaymentRef:    c.PostForm("paymentReference"),
		CustomerName:  c.PostForm("customerName"),
		CustomerEmail: c.PostForm("customerEmail"),
		CustomerPhone: c.PostForm("customerPhone"),
	}

	fileHeader, err := c.FormFile("file")
	if err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "failed to open uploaded file",
				Message: err.Error(),
			})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "failed to read uploaded file",
				Message: err.Error(),
			})
			return
		}
		in.FileData = data
		in.FileName = fileHeader.Filename
		in.FileSize = fileHeader.Size
	}

	order, err := h.uploads.Submit(in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Success:  true,
		OrderID:  order.ID.String(),
		Customer: models.CustomerSummary{
			ID:    order.Customer.ID.String(),
			Name:  order.Customer.Name,
			Email: order.Customer.Email,
		},
	})
}
