package storage

import (
	"context"
	"time"
)

// Document — конверт хранимого документа: сырой JSON поездки плюс
// метаданные публикации. Сервер не разбирает содержимое — слияние
// выполняют клиенты, хранилище только замещает документ целиком.
type Document struct {
	TripID        string    // id документа (для логов)
	Payload       []byte    // документ как прислал клиент (JSON)
	ClientVersion string    // версия клиента, приславшего документ
	PushedAt      time.Time // момент отправки по часам клиента
	ReceivedAt    time.Time // момент приема по часам сервера
}

// DocumentStorage defines interface for trip document persistence
type DocumentStorage interface {
	// SaveDocument replace-writes the stored document unconditionally.
	// Last write wins: the store keeps exactly one document.
	SaveDocument(ctx context.Context, doc *Document) error

	// GetDocument retrieves the stored document
	// Returns ErrDocumentNotFound if nothing has been pushed yet
	GetDocument(ctx context.Context) (*Document, error)
}
