package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/tripkeeper/internal/server/storage"
	"github.com/iudanet/tripkeeper/pkg/api"
)

// DocumentStorage определяет интерфейс для работы с хранилищем документа
type DocumentStorage interface {
	SaveDocument(ctx context.Context, doc *storage.Document) error
	GetDocument(ctx context.Context) (*storage.Document, error)
}

// TripHandler serves the single trip document
type TripHandler struct {
	logger  *slog.Logger
	storage DocumentStorage
}

// NewTripHandler creates a new trip document handler
func NewTripHandler(logger *slog.Logger, storage DocumentStorage) *TripHandler {
	return &TripHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleTrip обрабатывает GET и POST запросы для документа поездки
func (h *TripHandler) HandleTrip(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		h.handlePush(w, r)
	default:
		h.sendError(w, http.StatusMethodNotAllowed, "")
	}
}

// handleGet обрабатывает GET /api/v1/trip
// Возвращает документ ровно в том виде, в котором его прислал клиент.
// Параметр t (обход промежуточных HTTP-кэшей) принимается и игнорируется.
func (h *TripHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := h.storage.GetDocument(r.Context())
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			h.sendError(w, http.StatusNotFound, "no trip document has been pushed yet")
			return
		}
		h.logger.Error("Failed to load document", "error", err)
		h.sendError(w, http.StatusInternalServerError, "")
		return
	}

	h.logger.Info("GET trip", "trip_id", doc.TripID, "received_at", doc.ReceivedAt)

	// Отдаем сохраненный JSON как есть, без повторной сериализации
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Payload); err != nil {
		h.logger.Error("Failed to write document", "error", err)
	}
}

// handlePush обрабатывает POST /api/v1/trip
// Замещает хранимый документ присланным без сравнения версий:
// упорядочивание правок — забота клиентов, сервер только хранит
func (h *TripHandler) handlePush(w http.ResponseWriter, r *http.Request) {
	var req api.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode push request", "error", err)
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Trip.ID == "" {
		h.sendError(w, http.StatusBadRequest, "trip document must have an id")
		return
	}

	payload, err := json.Marshal(req.Trip)
	if err != nil {
		h.logger.Error("Failed to marshal trip payload", "error", err)
		h.sendError(w, http.StatusInternalServerError, "")
		return
	}

	receivedAt := time.Now().UTC()
	doc := &storage.Document{
		TripID:        req.Trip.ID,
		Payload:       payload,
		ClientVersion: req.ClientVersion,
		PushedAt:      req.PushedAt,
		ReceivedAt:    receivedAt,
	}

	if err := h.storage.SaveDocument(r.Context(), doc); err != nil {
		h.logger.Error("Failed to save document", "error", err, "trip_id", doc.TripID)
		h.sendError(w, http.StatusInternalServerError, "")
		return
	}

	h.logger.Info("Trip document replaced",
		"trip_id", doc.TripID,
		"client_version", doc.ClientVersion,
		"last_synced", req.Trip.LastSynced)

	h.sendJSON(w, http.StatusOK, api.PushResponse{
		ReceivedAt: receivedAt,
		Status:     "accepted",
	})
}

// sendJSON пишет ответ в формате JSON
func (h *TripHandler) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// sendError пишет ответ с ошибкой в формате api.ErrorResponse
func (h *TripHandler) sendError(w http.ResponseWriter, status int, message string) {
	h.sendJSON(w, status, api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
