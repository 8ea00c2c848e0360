package services

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPayloadTooLarge = errors.New("file size must be less than 25MB")
	ErrPaymentRejected = errors.New("invalid MPesa reference number")
	ErrNotFound        = errors.New("order not found")

	// ErrBlobMissing means the database row exists but the blob store has no
	// file under its stored reference. Clients see a 404; the mismatch itself
	// is a consistency fault and is logged where it is detected.
	ErrBlobMissing = errors.New("stored file missing for order")
)

// ValidationError reports malformed or missing input. ValidStatuses is set
// when the violation is a closed-enum status value, so the response can list
// the accepted set.
type ValidationError struct {
	Msg           string
	ValidStatuses []string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// PersistenceError wraps an unexpected store failure. Unavailable marks
// conditions where the caller can usefully retry later (store unreachable).
type PersistenceError struct {
	Op          string
	Err         error
	Unavailable bool
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func newPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err, Unavailable: isUnavailable(err)}
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host")
}
