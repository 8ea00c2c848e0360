package models

import "time"

type ErrorResponse struct {
	Error         string   `json:"error"`
	Message       string   `json:"message,omitempty"`
	ValidStatuses []string `json:"validStatuses,omitempty"`
}

type CustomerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type OrderResponse struct {
	ID           string           `json:"id"`
	OriginalName string           `json:"originalName"`
	PaymentRef   string           `json:"paymentRef"`
	Status       string           `json:"status"`
	UploadedAt   time.Time        `json:"uploadedAt"`
	CompletedAt  *time.Time       `json:"completedAt"`
	CustomerID   string           `json:"customerId"`
	Customer     *CustomerSummary `json:"customer,omitempty"`
}

type UploadResponse struct {
	Success  bool            `json:"success"`
	OrderID  string          `json:"orderId"`
	Customer CustomerSummary `json:"customer"`
}

type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

type StatusUpdateResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// NewOrderResponse converts a persisted order to its wire form. The stored
// file reference deliberately has no field here.
func NewOrderResponse(o *PrintOrder) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID.String(),
		OriginalName: o.OriginalName,
		PaymentRef:   o.PaymentRef,
		Status:       string(o.Status),
		UploadedAt:   o.UploadedAt,
		CustomerID:   o.CustomerID.String(),
	}
	if o.CompletedAt.Valid {
		t := o.CompletedAt.Time
		resp.CompletedAt = &t
	}
	if o.Customer != nil {
		summary := NewCustomerSummary(o.Customer)
		resp.Customer = &summary
	}
	return resp
}

func NewCustomerSummary(c *Customer) CustomerSummary {
	summary := CustomerSummary{
		ID:    c.ID.String(),
		Name:  c.Name,
		Email: c.Email,
	}
	if c.Phone.Valid {
		summary.Phone = c.Phone.String
	}
	return summary
}
