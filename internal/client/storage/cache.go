package storage

import (
	"context"

	"github.com/iudanet/tripkeeper/internal/models"
)

//go:generate moq -out cachestorage_mock.go . CacheStorage

// CacheStorage defines interface for caching remote responses on client.
// Entries never expire on write; staleness is decided by the reader.
type CacheStorage interface {
	// SaveCacheEntry stores or replaces a cache entry under key
	SaveCacheEntry(ctx context.Context, key string, entry *models.CacheEntry) error

	// GetCacheEntry retrieves a cache entry by key
	// Returns ErrCacheMiss if no entry exists for the key
	GetCacheEntry(ctx context.Context, key string) (*models.CacheEntry, error)
}
