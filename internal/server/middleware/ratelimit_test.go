package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// almostNoRefill: пополнение практически нулевое, в тесте виден только
// стартовый burst
const almostNoRefill = 0.001

func doRequest(handler http.Handler, method, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestNewRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(10, 20, newJSONLogger(io.Discard))
	defer limiter.Stop()

	require.NotNil(t, limiter)
	assert.Equal(t, 20, limiter.burst)
	assert.NotNil(t, limiter.visitors)
	assert.NotNil(t, limiter.cleanupC)
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("burst is honored, next request is denied", func(t *testing.T) {
		limiter := NewRateLimiter(almostNoRefill, 3, newJSONLogger(io.Discard))
		defer limiter.Stop()

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("203.0.113.10"), "request %d within burst", i+1)
		}
		assert.False(t, limiter.Allow("203.0.113.10"))
	})

	t.Run("keys have independent buckets", func(t *testing.T) {
		limiter := NewRateLimiter(almostNoRefill, 1, newJSONLogger(io.Discard))
		defer limiter.Stop()

		assert.True(t, limiter.Allow("203.0.113.10"))
		assert.False(t, limiter.Allow("203.0.113.10"))

		// Исчерпанный лимит первого ключа не влияет на второй
		assert.True(t, limiter.Allow("203.0.113.11"))
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		// 20 rps: токен каждые 50ms
		limiter := NewRateLimiter(20, 2, newJSONLogger(io.Discard))
		defer limiter.Stop()

		assert.True(t, limiter.Allow("203.0.113.12"))
		assert.True(t, limiter.Allow("203.0.113.12"))
		assert.False(t, limiter.Allow("203.0.113.12"))

		time.Sleep(150 * time.Millisecond)

		assert.True(t, limiter.Allow("203.0.113.12"), "bucket should refill")
	})
}

func TestRateLimiter_Middleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"accepted"}`))
	})

	t.Run("denies with 429 JSON after burst", func(t *testing.T) {
		limiter := NewRateLimiter(almostNoRefill, 2, newJSONLogger(io.Discard))
		defer limiter.Stop()
		handler := limiter.Middleware(okHandler)

		for i := 0; i < 2; i++ {
			w := doRequest(handler, http.MethodPost, "/api/v1/trip", "203.0.113.20:40001")
			require.Equal(t, http.StatusOK, w.Code, "request %d within burst", i+1)
		}

		w := doRequest(handler, http.MethodPost, "/api/v1/trip", "203.0.113.20:40001")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "rate limit exceeded")
	})

	t.Run("limit is per address, not per connection", func(t *testing.T) {
		limiter := NewRateLimiter(almostNoRefill, 2, newJSONLogger(io.Discard))
		defer limiter.Stop()
		handler := limiter.Middleware(okHandler)

		// Два соединения с разными портами делят один bucket
		assert.Equal(t, http.StatusOK, doRequest(handler, http.MethodGet, "/api/v1/trip", "203.0.113.21:40001").Code)
		assert.Equal(t, http.StatusOK, doRequest(handler, http.MethodGet, "/api/v1/trip", "203.0.113.21:52310").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, http.MethodGet, "/api/v1/trip", "203.0.113.21:40001").Code)

		// Другой адрес не задет
		assert.Equal(t, http.StatusOK, doRequest(handler, http.MethodGet, "/api/v1/trip", "203.0.113.22:40001").Code)
	})
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xRealIP    string
		want       string
	}{
		{
			name:       "single forwarded address",
			remoteAddr: "172.16.0.1:40001",
			xff:        "198.51.100.7",
			want:       "198.51.100.7",
		},
		{
			name:       "forwarded chain keeps originating client",
			remoteAddr: "172.16.0.1:40001",
			xff:        "198.51.100.7, 172.16.0.2, 172.16.0.3",
			want:       "198.51.100.7",
		},
		{
			name:       "real-ip header without forwarded chain",
			remoteAddr: "172.16.0.1:40001",
			xRealIP:    "198.51.100.9",
			want:       "198.51.100.9",
		},
		{
			name:       "forwarded chain wins over real-ip",
			remoteAddr: "172.16.0.1:40001",
			xff:        "198.51.100.7",
			xRealIP:    "198.51.100.9",
			want:       "198.51.100.7",
		},
		{
			name:       "remote addr loses the port",
			remoteAddr: "198.51.100.11:52310",
			want:       "198.51.100.11",
		},
		{
			name:       "remote addr without port used verbatim",
			remoteAddr: "198.51.100.11",
			want:       "198.51.100.11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/trip", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}

			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}

func TestRateLimiter_CleanupStale(t *testing.T) {
	limiter := NewRateLimiter(10, 10, newJSONLogger(io.Discard))
	defer limiter.Stop()

	limiter.Allow("203.0.113.30")
	limiter.Allow("203.0.113.31")
	limiter.Allow("203.0.113.32")

	// Состариваем две записи и запускаем очистку напрямую,
	// не дожидаясь тикера
	limiter.mu.Lock()
	require.Len(t, limiter.visitors, 3)
	limiter.visitors["203.0.113.30"].lastSeen = time.Now().Add(-2 * staleAfter)
	limiter.visitors["203.0.113.31"].lastSeen = time.Now().Add(-2 * staleAfter)
	limiter.mu.Unlock()

	limiter.cleanupStale()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "203.0.113.32")
}

func TestRateLimiter_LogsDeniedRequests(t *testing.T) {
	var buf bytes.Buffer
	limiter := NewRateLimiter(almostNoRefill, 1, newJSONLogger(&buf))
	defer limiter.Stop()

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	require.Equal(t, http.StatusOK, doRequest(handler, http.MethodPost, "/api/v1/trip", "203.0.113.40:40001").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(handler, http.MethodPost, "/api/v1/trip", "203.0.113.40:40001").Code)

	entry := parseLogLine(t, &buf)
	assert.Equal(t, "Rate limit exceeded", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "203.0.113.40", entry["ip"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/trip", entry["path"])
}
