package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// staleAfter определяет, сколько неактивный visitor живет до очистки
const staleAfter = 3 * time.Minute

// RateLimiter ограничивает частоту запросов по ключу (обычно IP адрес).
// Каждому ключу соответствует свой token bucket из golang.org/x/time/rate.
type RateLimiter struct {
	visitors map[string]*visitor
	logger   *slog.Logger
	cleanupC chan struct{}
	rps      rate.Limit
	burst    int
	mu       sync.Mutex
}

// visitor хранит limiter и время последнего обращения для ключа
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает новый rate limiter
// rps - скорость пополнения токенов (запросов в секунду)
// burst - максимальный размер всплеска
func NewRateLimiter(rps float64, burst int, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		logger:   logger,
		cleanupC: make(chan struct{}),
	}

	// Запускаем периодическую очистку неактивных visitors
	go rl.cleanupLoop()

	return rl
}

// cleanupLoop периодически удаляет неактивные записи для экономии памяти
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStale()
		case <-rl.cleanupC:
			return
		}
	}
}

// cleanupStale удаляет visitors, не появлявшихся дольше staleAfter
func (rl *RateLimiter) cleanupStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > staleAfter {
			delete(rl.visitors, key)
		}
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.cleanupC)
}

// getVisitor возвращает limiter для ключа, создавая его при необходимости
func (rl *RateLimiter) getVisitor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()

	return v.limiter
}

// Allow проверяет, разрешен ли запрос для данного ключа (обычно IP адрес)
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getVisitor(key).Allow()
}

// Middleware оборачивает handler проверкой лимита по IP клиента
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := getClientIP(r)

		if !rl.Allow(key) {
			rl.logger.Warn("Rate limit exceeded",
				"ip", key,
				"method", r.Method,
				"path", r.URL.Path,
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limit exceeded, please try again later"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	// Проверяем X-Forwarded-For (для прокси/load balancers)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Берем первый IP из списка (реальный клиент)
		if idx := strings.IndexByte(xff, ','); idx >= 0 {
			return strings.TrimSpace(xff[:idx])
		}
		return xff
	}

	// Проверяем X-Real-IP
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Отбрасываем порт: лимит действует на адрес, а не на соединение
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
