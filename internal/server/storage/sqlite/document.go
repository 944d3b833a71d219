package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/tripkeeper/internal/server/storage"
)

// SaveDocument replace-writes the stored document unconditionally.
// Таблица держит единственную строку: каждый push замещает предыдущий
// документ целиком, без сравнения версий — упорядочивание выполняют
// клиенты своими правилами согласования.
func (s *Storage) SaveDocument(ctx context.Context, doc *storage.Document) error {
	query := `
		INSERT INTO documents (
			id, trip_id, payload, client_version, pushed_at, received_at
		) VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			trip_id = excluded.trip_id,
			payload = excluded.payload,
			client_version = excluded.client_version,
			pushed_at = excluded.pushed_at,
			received_at = excluded.received_at
	`

	_, err := s.db.ExecContext(ctx, query,
		doc.TripID,
		doc.Payload,
		doc.ClientVersion,
		doc.PushedAt.Unix(),
		doc.ReceivedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

// GetDocument retrieves the stored document
// Returns ErrDocumentNotFound if nothing has been pushed yet
func (s *Storage) GetDocument(ctx context.Context) (*storage.Document, error) {
	query := `
		SELECT trip_id, payload, client_version, pushed_at, received_at
		FROM documents
		WHERE id = 1
	`

	doc := &storage.Document{}
	var pushedAt, receivedAt int64

	err := s.db.QueryRowContext(ctx, query).Scan(
		&doc.TripID,
		&doc.Payload,
		&doc.ClientVersion,
		&pushedAt,
		&receivedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	doc.PushedAt = unixToTime(pushedAt)
	doc.ReceivedAt = unixToTime(receivedAt)

	return doc, nil
}

func unixToTime(timestamp int64) time.Time {
	return time.Unix(timestamp, 0)
}
