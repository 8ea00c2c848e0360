package services

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"printshop-backend/internal/database"
	"printshop-backend/internal/models"
	"printshop-backend/internal/supabase"
)

// StatusService applies lifecycle transitions. The state machine is a
// complete graph: any of the four statuses may be set from any other, so
// staff can always override.
type StatusService struct {
	store  OrderStore
	events EventPublisher
}

func NewStatusService(store OrderStore, events EventPublisher) *StatusService {
	return &StatusService{
		store:  store,
		events: events,
	}
}

// SetStatus validates the id and status, then writes both status and
// completed_at in one update. completed_at is recomputed on every call, even
// when the status does not change: COMPLETED sets it to now, everything else
// clears it.
func (s *StatusService) SetStatus(idStr, statusStr string) (*models.PrintOrder, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, &ValidationError{Msg: "invalid order ID format"}
	}

	status := models.OrderStatus(statusStr)
	if !status.IsValid() {
		return nil, &ValidationError{
			Msg:           "invalid status",
			ValidStatuses: models.ValidStatusStrings(),
		}
	}

	var completedAt sql.NullTime
	if status == models.StatusCompleted {
		completedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	order, err := s.store.UpdateOrderStatus(id, status, completedAt)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, newPersistenceError("failed to update order status", err)
	}

	// Refresh with the joined customer for the response.
	if full, err := s.store.GetOrderByID(id); err == nil {
		order = full
	}

	if s.events != nil {
		if err := s.events.PublishOrderEvent(order.ID, "order_status_changed",
			supabase.StatusChangedPayload(order.ID, string(order.Status))); err != nil {
			log.Printf("Warning: failed to publish order_status_changed for %s: %v", order.ID, err)
		}
	}

	return order, nil
}
