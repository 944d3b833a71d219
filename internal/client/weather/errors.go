package weather

import "errors"

// ErrRateLimited indicates that the weather provider throttled the request.
// Ошибки этого класса открывают circuit breaker — см. Guard.
var ErrRateLimited = errors.New("weather provider rate limit exceeded")
