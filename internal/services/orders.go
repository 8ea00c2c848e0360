package services

import (
	"errors"

	"github.com/google/uuid"
	"printshop-backend/internal/database"
	"printshop-backend/internal/models"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// OrderQueryService serves staff listings and single-order fetches.
type OrderQueryService struct {
	store OrderStore
}

func NewOrderQueryService(store OrderStore) *OrderQueryService {
	return &OrderQueryService{store: store}
}

// GetOrder rejects malformed ids before any repository round-trip.
func (s *OrderQueryService) GetOrder(idStr string) (*models.PrintOrder, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, &ValidationError{Msg: "invalid order ID format"}
	}

	order, err := s.store.GetOrderByID(id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, newPersistenceError("failed to get order", err)
	}

	return order, nil
}

// List returns one page of orders plus the pagination envelope. Page and
// limit arrive validated from the boundary; zero values take the defaults.
func (s *OrderQueryService) List(filter models.ListOrdersFilter, page, limit int) ([]models.PrintOrder, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	orders, total, err := s.store.ListOrders(filter, page, limit)
	if err != nil {
		return nil, models.Pagination{}, newPersistenceError("failed to list orders", err)
	}

	pagination := models.Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
		HasMore:    (page-1)*limit+len(orders) < total,
	}

	return orders, pagination, nil
}
