package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketTrip      = []byte("trip")      // документ поездки
	bucketSyncState = []byte("syncstate") // флаг pending_sync
	bucketCache     = []byte("cache")     // кэш ответов внешних сервисов
)

var buckets = [][]byte{bucketTrip, bucketSyncState, bucketCache}

// Storage — локальное хранилище клиента поверх BoltDB: один файл на
// установку, чтения и записи не требуют сети.
type Storage struct {
	db *bbolt.DB
}

// New открывает файл dbPath и создает недостающие buckets.
// Timeout на flock: файл, занятый другим процессом клиента, дает
// ошибку вместо вечного ожидания.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close закрывает базу; последующие операции возвращают ErrStorageClosed
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
