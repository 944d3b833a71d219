package storage

import "errors"

var (
	// ErrTripNotFound — документ поездки еще не сохранялся
	ErrTripNotFound = errors.New("trip document not found")

	// ErrCacheMiss — в кэше нет записи по этому ключу
	ErrCacheMiss = errors.New("cache entry not found")

	// ErrStorageClosed — операция после Close
	ErrStorageClosed = errors.New("storage is closed")
)
