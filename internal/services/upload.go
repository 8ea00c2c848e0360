package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"printshop-backend/internal/database"
	"printshop-backend/internal/models"
	"printshop-backend/internal/storage"
	"printshop-backend/internal/supabase"
)

// MaxUploadSize is the hard cap on submitted documents (25 MiB).
const MaxUploadSize = 25 * 1024 * 1024

// SubmitInput carries one customer submission.
type SubmitInput struct {
	FileData      []byte
	FileName      string
	FileSize      int64
	PaymentRef    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// UploadService validates a submission, verifies payment, writes the blob and
// persists the order, cleaning up the blob if persistence fails.
type UploadService struct {
	verifier PaymentVerifier
	blobs    storage.Store
	store    OrderStore
	events   EventPublisher
}

func NewUploadService(verifier PaymentVerifier, blobs storage.Store, store OrderStore, events EventPublisher) *UploadService {
	return &UploadService{
		verifier: verifier,
		blobs:    blobs,
		store:    store,
		events:   events,
	}
}

// Submit runs the intake pipeline in order: field validation, size cap,
// payment verification, blob write, customer resolution, order insert. The
// blob is never written before every validation step has passed, and the
// database insert never happens before the blob write.
func (s *UploadService) Submit(in SubmitInput) (*models.PrintOrder, error) {
	if len(in.FileData) == 0 || in.PaymentRef == "" || in.CustomerName == "" || in.CustomerEmail == "" {
		return nil, &ValidationError{Msg: "required fields are missing"}
	}

	if in.FileSize > MaxUploadSize {
		return nil, ErrPayloadTooLarge
	}

	valid, err := s.verifier.Verify(in.PaymentRef)
	if err != nil {
		log.Printf("payment verification failed for ref %q: %v", in.PaymentRef, err)
		return nil, ErrPaymentRejected
	}
	if !valid {
		return nil, ErrPaymentRejected
	}

	fileName := StoredFileName(in.FileName)
	if err := s.blobs.Save(fileName, in.FileData); err != nil {
		return nil, newPersistenceError("failed to store uploaded file", err)
	}

	customer, err := s.resolveCustomer(in)
	if err != nil {
		s.cleanupBlob(fileName)
		return nil, err
	}

	order := &models.PrintOrder{
		ID:           uuid.New(),
		FileName:     fileName,
		OriginalName: in.FileName,
		PaymentRef:   in.PaymentRef,
		Status:       models.StatusPending,
		UploadedAt:   time.Now(),
		CustomerID:   customer.ID,
	}

	created, err := s.store.CreateOrder(order)
	if err != nil {
		s.cleanupBlob(fileName)
		return nil, newPersistenceError("failed to create order", err)
	}
	created.Customer = customer

	if s.events != nil {
		if err := s.events.PublishOrderEvent(created.ID, "order_received",
			supabase.OrderReceivedPayload(created.ID, customer.Email)); err != nil {
			log.Printf("Warning: failed to publish order_received for %s: %v", created.ID, err)
		}
	}

	return created, nil
}

// resolveCustomer finds the customer by email or creates one. Losing a
// concurrent-create race on the email unique constraint is handled by
// re-running the lookup, not surfaced as an error.
func (s *UploadService) resolveCustomer(in SubmitInput) (*models.Customer, error) {
	customer, err := s.store.FindCustomerByEmail(in.CustomerEmail)
	if err != nil {
		return nil, newPersistenceError("failed to look up customer", err)
	}
	if customer != nil {
		return customer, nil
	}

	customer, err = s.store.CreateCustomer(in.CustomerName, in.CustomerEmail, in.CustomerPhone)
	if errors.Is(err, database.ErrDuplicateEmail) {
		customer, err = s.store.FindCustomerByEmail(in.CustomerEmail)
		if err != nil {
			return nil, newPersistenceError("failed to look up customer after duplicate insert", err)
		}
		if customer == nil {
			return nil, newPersistenceError("failed to resolve customer", errors.New("customer vanished after duplicate insert"))
		}
		return customer, nil
	}
	if err != nil {
		return nil, newPersistenceError("failed to create customer", err)
	}

	return customer, nil
}

// cleanupBlob is best-effort: its failure is logged, never escalated, since
// the primary failure already determines the response.
func (s *UploadService) cleanupBlob(name string) {
	if err := s.blobs.Delete(name); err != nil {
		log.Printf("Warning: failed to clean up blob %s: %v", name, err)
	}
}
