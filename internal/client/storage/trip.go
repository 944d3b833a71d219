package storage

import (
	"context"

	"github.com/iudanet/tripkeeper/internal/models"
)

//go:generate moq -out tripstorage_mock.go . TripStorage

// TripStorage defines interface for the local trip document store.
// The store holds a single whole document plus the sync bookkeeping
// that must survive application restarts.
type TripStorage interface {
	// SaveTrip stores or replaces the trip document
	SaveTrip(ctx context.Context, trip *models.TripDocument) error

	// GetTrip retrieves the trip document
	// Returns ErrTripNotFound if no document has been saved yet
	GetTrip(ctx context.Context) (*models.TripDocument, error)

	// SavePendingSync persists the pending-sync flag
	// The flag marks local changes that have not reached the remote yet
	SavePendingSync(ctx context.Context, pending bool) error

	// GetPendingSync retrieves the pending-sync flag
	// Returns false if the flag has never been set
	GetPendingSync(ctx context.Context) (bool, error)
}
