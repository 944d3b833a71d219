package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// responseWriter запоминает статус и объем ответа для access-лога
type responseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// LoggingMiddleware логирует каждый HTTP запрос: метод, путь, статус,
// длительность и размер ответа. Уровень записи зависит от класса статуса:
// 5xx — Error, 4xx — Warn, остальные — Info.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return LoggingWithSkip(logger, nil)
}

// LoggingWithSkip — то же самое, но перечисленные пути не логируются.
// Полезно для health check, который мониторинг дергает каждые пару секунд.
func LoggingWithSkip(logger *slog.Logger, skipPaths []string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			level := slog.LevelInfo
			switch {
			case wrapped.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case wrapped.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"status", wrapped.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"bytes_written", wrapped.written,
			)
		})
	}
}
