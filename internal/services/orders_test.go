package services_test

import (
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

func TestOrderQueryService_GetOrder_RejectsMalformedID(t *testing.T) {
	store := newFakeStore()
	svc := services.NewOrderQueryService(store)

	_, err := svc.GetOrder("not-a-uuid")

	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)
	// The id shape check never reaches the store.
	assert.Zero(t, store.getOrderCalls)
}

func TestOrderQueryService_GetOrder_NotFound(t *testing.T) {
	svc := services.NewOrderQueryService(newFakeStore())

	_, err := svc.GetOrder(newUUID(t).String())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestOrderQueryService_List_Defaults(t *testing.T) {
	store := newFakeStore()
	svc := services.NewOrderQueryService(store)

	_, pagination, err := svc.List(models.ListOrdersFilter{}, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, services.DefaultPageSize, pagination.Limit)
	assert.Equal(t, 1, store.lastListPage)
	assert.Equal(t, services.DefaultPageSize, store.lastListLimit)
}

func TestOrderQueryService_List_Pagination(t *testing.T) {
	// 25 matching orders, limit 10: pages 1 and 2 are full with more to
	// come, page 3 holds the last 5.
	tests := []struct {
		page     int
		returned int
		hasMore  bool
	}{
		{1, 10, true},
		{2, 10, true},
		{3, 5, false},
	}

	for _, tt := range tests {
		store := newFakeStore()
		store.listTotal = 25
		store.listOrders = make([]models.PrintOrder, tt.returned)
		svc := services.NewOrderQueryService(store)

		orders, pagination, err := svc.List(models.ListOrdersFilter{}, tt.page, 10)
		require.NoError(t, err)

		assert.Len(t, orders, tt.returned, "page %d", tt.page)
		assert.Equal(t, 25, pagination.Total)
		assert.Equal(t, 3, pagination.TotalPages)
		assert.Equal(t, tt.hasMore, pagination.HasMore, "page %d", tt.page)
	}
}

func TestOrderQueryService_List_ClassifiesStoreFailures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{"bad connection", driver.ErrBadConn, true},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), true},
		{"unknown host", errors.New("dial tcp: lookup db: no such host"), true},
		{"query failure", errors.New("pq: column does not exist"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.listErr = tt.err
			svc := services.NewOrderQueryService(store)

			_, _, err := svc.List(models.ListOrdersFilter{}, 1, 20)

			var pErr *services.PersistenceError
			require.ErrorAs(t, err, &pErr)
			assert.Equal(t, tt.unavailable, pErr.Unavailable)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestOrderQueryService_List_PassesFilterThrough(t *testing.T) {
	store := newFakeStore()
	svc := services.NewOrderQueryService(store)

	filter := models.ListOrdersFilter{Status: models.StatusCompleted, Search: "jane"}
	_, _, err := svc.List(filter, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, filter, store.lastListFilter)
}
