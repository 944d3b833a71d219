package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HealthResponse — ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// HealthHandler отвечает на проверки живости сервера
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler создает handler; version приходит из ldflags сборки
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// Health обрабатывает GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"Method Not Allowed"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := HealthResponse{Status: "ok", Version: h.version}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode health response", "error", err)
	}
}
