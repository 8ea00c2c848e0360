package services_test

import (
	"database/sql"
	"sync"
	"testing"

	"github.com/google/uuid"
	"printshop-backend/internal/database"
	"printshop-backend/internal/models"
	"printshop-backend/internal/storage"
)

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

type fakeVerifier struct {
	valid   bool
	err     error
	calls   int
	lastRef string
}

func (f *fakeVerifier) Verify(reference string) (bool, error) {
	f.calls++
	f.lastRef = reference
	return f.valid, f.err
}

type fakeBlobs struct {
	mu        sync.Mutex
	saved     map[string][]byte
	deleted   []string
	saveErr   error
	deleteErr error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{saved: make(map[string][]byte)}
}

func (f *fakeBlobs) Save(name string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[name] = data
	return nil
}

func (f *fakeBlobs) Read(name string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.saved[name]
	if !ok {
		return nil, storage.ErrNotExist
	}
	return data, nil
}

func (f *fakeBlobs) Exists(name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.saved[name]
	return ok, nil
}

func (f *fakeBlobs) Delete(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.saved, name)
	f.deleted = append(f.deleted, name)
	return nil
}

// fakeStore is a map-backed OrderStore with error hooks.
type fakeStore struct {
	mu               sync.Mutex
	customersByEmail map[string]*models.Customer
	orders           map[uuid.UUID]*models.PrintOrder

	findCustomerErr error
	// duplicateOnCreate simulates losing the unique-constraint race: the
	// first CreateCustomer fails with ErrDuplicateEmail and this customer
	// becomes visible to subsequent lookups.
	duplicateOnCreate *models.Customer
	createOrderErr    error
	updateErr         error

	listOrders []models.PrintOrder
	listTotal  int
	listErr    error

	lastListFilter  models.ListOrdersFilter
	lastListPage    int
	lastListLimit   int
	lastCompletedAt sql.NullTime
	getOrderCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customersByEmail: make(map[string]*models.Customer),
		orders:           make(map[uuid.UUID]*models.PrintOrder),
	}
}

func (f *fakeStore) FindCustomerByEmail(email string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findCustomerErr != nil {
		return nil, f.findCustomerErr
	}
	return f.customersByEmail[email], nil
}

func (f *fakeStore) CreateCustomer(name, email, phone string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.duplicateOnCreate != nil {
		winner := f.duplicateOnCreate
		f.duplicateOnCreate = nil
		f.customersByEmail[winner.Email] = winner
		return nil, database.ErrDuplicateEmail
	}
	customer := &models.Customer{ID: uuid.New(), Name: name, Email: email}
	if phone != "" {
		customer.Phone = sql.NullString{String: phone, Valid: true}
	}
	f.customersByEmail[email] = customer
	return customer, nil
}

func (f *fakeStore) CreateOrder(order *models.PrintOrder) (*models.PrintOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createOrderErr != nil {
		return nil, f.createOrderErr
	}
	stored := *order
	f.orders[order.ID] = &stored
	created := stored
	return &created, nil
}

func (f *fakeStore) GetOrderByID(id uuid.UUID) (*models.PrintOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getOrderCalls++
	order, ok := f.orders[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeStore) ListOrders(filter models.ListOrdersFilter, page, limit int) ([]models.PrintOrder, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastListFilter = filter
	f.lastListPage = page
	f.lastListLimit = limit
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listOrders, f.listTotal, nil
}

func (f *fakeStore) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus, completedAt sql.NullTime) (*models.PrintOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCompletedAt = completedAt
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	order, ok := f.orders[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	order.Status = status
	order.CompletedAt = completedAt
	copied := *order
	copied.Customer = nil
	return &copied, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (f *fakePublisher) PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}
