package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"printshop-backend/internal/database"
	"printshop-backend/internal/storage"
)

// DownloadService resolves an order to its stored bytes and the original
// user-supplied name to present them under.
type DownloadService struct {
	store OrderStore
	blobs storage.Store
}

func NewDownloadService(store OrderStore, blobs storage.Store) *DownloadService {
	return &DownloadService{
		store: store,
		blobs: blobs,
	}
}

func (s *DownloadService) Resolve(idStr string) ([]byte, string, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		// A malformed id cannot name an order.
		return nil, "", ErrNotFound
	}

	order, err := s.store.GetOrderByID(id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", newPersistenceError("failed to get order", err)
	}

	data, err := s.blobs.Read(order.FileName)
	if errors.Is(err, storage.ErrNotExist) {
		// Store and database disagree. Clients get a plain 404; the fault is
		// for operators.
		log.Printf("Warning: blob %s missing for order %s", order.FileName, order.ID)
		return nil, "", ErrBlobMissing
	}
	if err != nil {
		return nil, "", newPersistenceError("failed to read stored file", err)
	}

	return data, order.OriginalName, nil
}
