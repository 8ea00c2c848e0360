// Package services implements the order intake and fulfillment core: upload
// orchestration, order queries, status transitions and download resolution.
// Collaborators are injected as interfaces so the services never reach for
// ambient state.
package services

import (
	"database/sql"

	"github.com/google/uuid"
	"printshop-backend/internal/models"
)

// OrderStore is the persistence surface the services need. Satisfied by
// *database.Client.
type OrderStore interface {
	FindCustomerByEmail(email string) (*models.Customer, error)
	CreateCustomer(name, email, phone string) (*models.Customer, error)
	CreateOrder(order *models.PrintOrder) (*models.PrintOrder, error)
	GetOrderByID(id uuid.UUID) (*models.PrintOrder, error)
	ListOrders(filter models.ListOrdersFilter, page, limit int) ([]models.PrintOrder, int, error)
	UpdateOrderStatus(id uuid.UUID, status models.OrderStatus, completedAt sql.NullTime) (*models.PrintOrder, error)
}

// PaymentVerifier is the external payment oracle. Satisfied by *mpesa.Client.
type PaymentVerifier interface {
	Verify(reference string) (bool, error)
}

// EventPublisher pushes order events to subscribed staff tooling. Satisfied
// by *supabase.RealtimeClient. A nil publisher disables events.
type EventPublisher interface {
	PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error
}
