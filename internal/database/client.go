package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"printshop-backend/internal/models"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when a customer insert loses the race against
// a concurrent insert for the same email. Callers retry the lookup.
var ErrDuplicateEmail = errors.New("customer email already exists")

const uniqueViolation = "23505"

type Client struct {
	db *sql.DB
}

func NewClient(connectionString string) (*Client, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db}, nil
}

// NewClientWithDB wraps an existing handle. Used by tests.
func NewClientWithDB(db *sql.DB) *Client {
	return &Client{db: db}
}

func (c *Client) FindCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := c.db.QueryRow(`
		SELECT id, name, email, phone, created_at
		FROM customers
		WHERE email = $1
	`, email).Scan(
		&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &customer, nil
}

func (c *Client) CreateCustomer(name, email, phone string) (*models.Customer, error) {
	var phoneVal sql.NullString
	if phone != "" {
		phoneVal = sql.NullString{String: phone, Valid: true}
	}

	var customer models.Customer
	err := c.db.QueryRow(`
		INSERT INTO customers (id, name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, created_at
	`, uuid.New(), name, email, phoneVal).Scan(
		&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &customer, nil
}

// CreateOrder inserts the full order row in a single statement, so either
// every field is visible or none of the row is.
func (c *Client) CreateOrder(order *models.PrintOrder) (*models.PrintOrder, error) {
	var created models.PrintOrder
	err := c.db.QueryRow(`
		INSERT INTO print_orders (id, file_name, original_name, mpesa_ref, status, uploaded_at, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, file_name, original_name, mpesa_ref, status, uploaded_at, completed_at, customer_id
	`, order.ID, order.FileName, order.OriginalName, order.PaymentRef,
		order.Status, order.UploadedAt, order.CustomerID).Scan(
		&created.ID, &created.FileName, &created.OriginalName, &created.PaymentRef,
		&created.Status, &created.UploadedAt, &created.CompletedAt, &created.CustomerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &created, nil
}

func (c *Client) GetOrderByID(id uuid.UUID) (*models.PrintOrder, error) {
	var order models.PrintOrder
	var customer models.Customer
	err := c.db.QueryRow(`
		SELECT o.id, o.file_name, o.original_name, o.mpesa_ref, o.status,
		       o.uploaded_at, o.completed_at, o.customer_id,
		       c.id, c.name, c.email, c.phone, c.created_at
		FROM print_orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1
	`, id).Scan(
		&order.ID, &order.FileName, &order.OriginalName, &order.PaymentRef, &order.Status,
		&order.UploadedAt, &order.CompletedAt, &order.CustomerID,
		&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	order.Customer = &customer
	return &order, nil
}

// ListOrders returns one page of matching orders, newest upload first, plus
// the total match count. Status and search combine with AND; the search term
// matches customer name, customer email or payment reference, case
// insensitively.
func (c *Client) ListOrders(filter models.ListOrdersFilter, page, limit int) ([]models.PrintOrder, int, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(c.name ILIKE $%d OR c.email ILIKE $%d OR o.mpesa_ref ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM print_orders o
		JOIN customers c ON c.id = o.customer_id` + where
	if err := c.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	listQuery := fmt.Sprintf(`
		SELECT o.id, o.file_name, o.original_name, o.mpesa_ref, o.status,
		       o.uploaded_at, o.completed_at, o.customer_id,
		       c.id, c.name, c.email, c.phone, c.created_at
		FROM print_orders o
		JOIN customers c ON c.id = o.customer_id%s
		ORDER BY o.uploaded_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := c.db.Query(listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.PrintOrder
	for rows.Next() {
		var order models.PrintOrder
		var customer models.Customer
		err := rows.Scan(
			&order.ID, &order.FileName, &order.OriginalName, &order.PaymentRef, &order.Status,
			&order.UploadedAt, &order.CompletedAt, &order.CustomerID,
			&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		order.Customer = &customer
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read orders: %w", err)
	}

	return orders, total, nil
}

// UpdateOrderStatus sets status and completed_at together. completed_at is
// always written: the caller passes now on COMPLETED and an invalid NullTime
// for everything else.
func (c *Client) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus, completedAt sql.NullTime) (*models.PrintOrder, error) {
	var order models.PrintOrder
	err := c.db.QueryRow(`
		UPDATE print_orders
		SET status = $1, completed_at = $2
		WHERE id = $3
		RETURNING id, file_name, original_name, mpesa_ref, status, uploaded_at, completed_at, customer_id
	`, status, completedAt, id).Scan(
		&order.ID, &order.FileName, &order.OriginalName, &order.PaymentRef,
		&order.Status, &order.UploadedAt, &order.CompletedAt, &order.CustomerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return &order, nil
}

// Ping reports whether the store is reachable.
func (c *Client) Ping() error {
	return c.db.Ping()
}

func (c *Client) Close() error {
	return c.db.Close()
}
