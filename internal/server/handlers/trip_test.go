package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tripkeeper/internal/server/storage"
	"github.com/iudanet/tripkeeper/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// mockDocumentStorage — хранилище в памяти с настраиваемыми ошибками
type mockDocumentStorage struct {
	doc       *storage.Document
	saveError error
	getError  error
	saved     []*storage.Document // Track all saved documents
}

func (m *mockDocumentStorage) SaveDocument(ctx context.Context, doc *storage.Document) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.saved = append(m.saved, doc)
	m.doc = doc
	return nil
}

func (m *mockDocumentStorage) GetDocument(ctx context.Context) (*storage.Document, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if m.doc == nil {
		return nil, storage.ErrDocumentNotFound
	}
	return m.doc, nil
}

func TestTripHandler_HandleTrip_MethodNotAllowed(t *testing.T) {
	logger := setupTestLogger()
	store := &mockDocumentStorage{}
	handler := NewTripHandler(logger, store)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/trip", nil)
	w := httptest.NewRecorder()
	handler.HandleTrip(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestTripHandler_HandleGet_NotFound(t *testing.T) {
	logger := setupTestLogger()
	store := &mockDocumentStorage{}
	handler := NewTripHandler(logger, store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trip", nil)
	w := httptest.NewRecorder()
	handler.HandleTrip(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var errResp api.ErrorResponse
	err := json.NewDecoder(w.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Equal(t, "Not Found", errResp.Error)
	assert.Equal(t, "no trip document has been pushed yet", errResp.Message)
}

func TestTripHandler_HandleGet_ReturnsStoredPayload(t *testing.T) {
	logger := setupTestLogger()

	payload := []byte(`{"id":"trip-1","name":"Iceland 2026","last_synced":"2026-06-01T10:00:00Z"}`)
	store := &mockDocumentStorage{
		doc: &storage.Document{
			TripID:     "trip-1",
			Payload:    payload,
			PushedAt:   time.Unix(1765000000, 0),
			ReceivedAt: time.Unix(1765000003, 0),
		},
	}
	handler := NewTripHandler(logger, store)

	// Параметр t (обход кэшей) должен приниматься и игнорироваться
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trip?t=1765000000000000000", nil)
	w := httptest.NewRecorder()
	handler.HandleTrip(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	// Тело — ровно тот JSON, что прислал клиент
	assert.Equal(t, payload, w.Body.Bytes())
}

func TestTripHandler_HandleGet_StorageError(t *testing.T) {
	logger := setupTestLogger()
	store := &mockDocumentStorage{getError: errors.New("disk failure")}
	handler := NewTripHandler(logger, store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trip", nil)
	w := httptest.NewRecorder()
	handler.HandleTrip(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTripHandler_HandlePush_Success(t *testing.T) {
	logger := setupTestLogger()
	store := &mockDocumentStorage{}
	handler := NewTripHandler(logger, store)

	pushReq := api.PushRequest{
		PushedAt:      time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
		ClientVersion: "1.2.0",
		Trip: api.Trip{
			ID:          "trip-1",
			Name:        "Iceland 2026",
			Destination: "Reykjavik",
			Budget:      4200,
			LastSynced:  "2026-06-01T10:00:00Z",
		},
	}

	body, err := json.Marshal(pushReq)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trip", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleTrip(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var pushResp api.PushResponse
	err = json.NewDecoder(w.Body).Decode(&pushResp)
	require.NoError(t, err)
	assert.Equal(t, "accepted", pushResp.Status)
	assert.False(t, pushResp.ReceivedAt.IsZero())

	// Документ сохранен вместе с метаданными публикации
	require.Len(t, store.saved, 1)
	saved := store.saved[0]
	assert.Equal(t, "trip-1", saved.TripID)
	assert.Equal(t, "1.2.0", saved.ClientVersion)
	assert.Equal(t, pushReq.PushedAt, saved.PushedAt)

	// Payload разбирается обратно в тот же документ
	var storedTrip api.Trip
	require.NoError(t, json.Unmarshal(saved.Payload, &storedTrip))
	assert.Equal(t, pushReq.Trip, storedTrip)
}

func TestTripHandler_HandlePush_ReplacesPrevious(t *testing.T) {
	logger := setupTestLogger()
	store := &mockDocumentStorage{}
	handler := NewTripHandler(logger, store)

	push := func(name string) {
		pushReq := api.PushRequest{
			PushedAt:      time.Now().UTC(),
			ClientVersion: "1.2.0",
			Trip:          api.Trip{ID: "trip-1", Name: name},
		}
		body, err := json.Marshal(pushReq)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/trip", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.HandleTrip(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	push("first")
	push("second")

	// Хранилище получило оба сохранения, текущим стал последний
	require.Len(t, store.saved, 2)

	var current api.Trip
	require.NoError(t, json.Unmarshal(store.doc.Payload, &current))
	assert.Equal(t, "second", current.Name)
}

func TestTripHandler_HandlePush_InvalidJSON(t *testing.T) {
	logger := setupTestLogger()
	store := &mockDocumentStorage{}
	handler := NewTripHandler(logger, store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trip", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()
	handler.HandleTrip(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.saved)
}

func TestTripHandler_HandlePush_MissingTripID(t *testing.T) {
	logger := setupTestLogger()
	store := &mockDocumentStorage{}
	handler := NewTripHandler(logger, store)

	pushReq := api.PushRequest{
		PushedAt:      time.Now().UTC(),
		ClientVersion: "1.2.0",
		Trip:          api.Trip{Name: "no id"},
	}
	body, err := json.Marshal(pushReq)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trip", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleTrip(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	assert.Equal(t, "trip document must have an id", errResp.Message)
	assert.Empty(t, store.saved)
}

func TestTripHandler_HandlePush_StorageError(t *testing.T) {
	logger := setupTestLogger()
	store := &mockDocumentStorage{saveError: errors.New("disk failure")}
	handler := NewTripHandler(logger, store)

	pushReq := api.PushRequest{
		PushedAt: time.Now().UTC(),
		Trip:     api.Trip{ID: "trip-1"},
	}
	body, err := json.Marshal(pushReq)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trip", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleTrip(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
