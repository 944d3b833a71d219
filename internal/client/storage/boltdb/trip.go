package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/tripkeeper/internal/client/storage"
	"github.com/iudanet/tripkeeper/internal/models"
)

const (
	keyTripDocument = "document"
	keyPendingSync  = "pending_sync"
)

// SaveTrip stores or replaces the trip document in BoltDB
func (s *Storage) SaveTrip(ctx context.Context, trip *models.TripDocument) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем документ в JSON
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to marshal trip document: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTrip)
		if bucket == nil {
			return fmt.Errorf("trip bucket not found")
		}

		// Документ один — храним под фиксированным ключом
		if err := bucket.Put([]byte(keyTripDocument), data); err != nil {
			return fmt.Errorf("failed to save trip document: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetTrip retrieves the trip document from BoltDB
// Returns storage.ErrTripNotFound if no document has been saved yet
func (s *Storage) GetTrip(ctx context.Context) (*models.TripDocument, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var trip *models.TripDocument

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTrip)
		if bucket == nil {
			return storage.ErrTripNotFound
		}

		data := bucket.Get([]byte(keyTripDocument))
		if data == nil {
			return storage.ErrTripNotFound
		}

		// Десериализуем
		trip = &models.TripDocument{}
		if err := json.Unmarshal(data, trip); err != nil {
			return fmt.Errorf("failed to unmarshal trip document: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return trip, nil
}

// SavePendingSync persists the pending-sync flag.
// The value is stored as the string "true" or "false".
func (s *Storage) SavePendingSync(ctx context.Context, pending bool) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	value := "false"
	if pending {
		value = "true"
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		if err := bucket.Put([]byte(keyPendingSync), []byte(value)); err != nil {
			return fmt.Errorf("failed to save pending sync flag: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetPendingSync retrieves the pending-sync flag
// Returns false if the flag has never been set
func (s *Storage) GetPendingSync(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	var pending bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(keyPendingSync))
		if data == nil {
			// Флаг еще не записывался — изменений нет
			return nil
		}

		// Любое значение кроме "true" трактуем как false
		pending = string(data) == "true"
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("failed to get pending sync flag: %w", err)
	}

	return pending, nil
}
