package remote

import "errors"

// ErrSubscriptionUnsupported возвращается каналами без push-доставки (HTTP).
// Вызывающая сторона в этом случае переходит на явные pull-запросы.
var ErrSubscriptionUnsupported = errors.New("subscription is not supported by this channel")
