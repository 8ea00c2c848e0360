package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the closed set of lifecycle states for a print order.
// Nothing outside these four values is ever persisted.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPrinting  OrderStatus = "PRINTING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusFailed    OrderStatus = "FAILED"
)

// ValidStatuses lists the accepted statuses in the order they are reported
// back to clients on an invalid-status error.
var ValidStatuses = []OrderStatus{StatusPending, StatusPrinting, StatusCompleted, StatusFailed}

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPrinting, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// ValidStatusStrings returns the valid set as plain strings for error bodies.
func ValidStatusStrings() []string {
	out := make([]string, len(ValidStatuses))
	for i, s := range ValidStatuses {
		out[i] = string(s)
	}
	return out
}

type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     sql.NullString
	CreatedAt time.Time
}

// PrintOrder is one submitted document awaiting fulfillment. FileName is the
// generated stored-file-reference inside the blob store and is never exposed
// to clients; OriginalName is the user-supplied name used for download
// presentation only.
type PrintOrder struct {
	ID           uuid.UUID
	FileName     string
	OriginalName string
	PaymentRef   string
	Status       OrderStatus
	UploadedAt   time.Time
	CompletedAt  sql.NullTime
	CustomerID   uuid.UUID
	Customer     *Customer
}
