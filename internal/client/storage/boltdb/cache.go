package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/tripkeeper/internal/client/storage"
	"github.com/iudanet/tripkeeper/internal/models"
)

// SaveCacheEntry stores or replaces a cache entry under key
func (s *Storage) SaveCacheEntry(ctx context.Context, key string, entry *models.CacheEntry) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save cache entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetCacheEntry retrieves a cache entry by key
// Returns storage.ErrCacheMiss if no entry exists for the key
func (s *Storage) GetCacheEntry(ctx context.Context, key string) (*models.CacheEntry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entry *models.CacheEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return storage.ErrCacheMiss
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrCacheMiss
		}

		entry = &models.CacheEntry{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal cache entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}
