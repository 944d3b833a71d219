package remote

import (
	"context"

	"github.com/iudanet/tripkeeper/internal/models"
)

//go:generate moq -out channel_mock.go . Channel

// Channel определяет интерфейс канала обмена документом с удаленной стороной.
// Реализации: HTTP (request/response к tripkeeper-server) и Redis (pub/sub).
type Channel interface {
	// Send публикует документ целиком. Ответ удаленной стороны не
	// анализируется: подтверждением служит эхо документа через Pull
	// или подписку.
	Send(ctx context.Context, trip *models.TripDocument) error

	// Pull запрашивает текущий документ удаленной стороны.
	// Возвращает (nil, nil), если документа там еще нет.
	Pull(ctx context.Context) (*models.TripDocument, error)

	// Subscribe подписывается на изменения документа. onChange вызывается
	// на каждое полученное обновление. Возвращает функцию отписки.
	// Каналы без push-доставки возвращают ErrSubscriptionUnsupported.
	Subscribe(ctx context.Context, onChange func(trip *models.TripDocument)) (func(), error)
}
