package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/tripkeeper/internal/models"
	"github.com/iudanet/tripkeeper/pkg/api"
)

// HTTPChannel представляет HTTP канал обмена с tripkeeper-server
type HTTPChannel struct {
	httpClient *http.Client
	baseURL    string
	version    string
}

// NewHTTPChannel создает новый HTTP канал.
// baseURL — адрес сервера, version подставляется в метаданные отправки.
func NewHTTPChannel(baseURL, version string) *HTTPChannel {
	return &HTTPChannel{
		baseURL: strings.TrimRight(baseURL, "/"),
		version: version,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send отправляет документ на сервер: POST /api/v1/trip.
// Отправка работает по принципу fire-and-forget: статус и тело ответа
// не анализируются, любой ответ сервера считается доставкой.
// Подтверждение придет эхом документа при следующем pull.
func (c *HTTPChannel) Send(ctx context.Context, trip *models.TripDocument) error {
	reqBody := api.PushRequest{
		PushedAt:      time.Now().UTC(),
		ClientVersion: c.version,
		Trip:          toWire(trip),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal push request: %w", err)
	}

	url := c.baseURL + "/api/v1/trip"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}

	// Дочитываем тело, чтобы соединение вернулось в пул
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return nil
}

// Pull запрашивает документ с сервера: GET /api/v1/trip?t=<unixnano>.
// Параметр t обходит промежуточные HTTP-кэши. Ответ принимается, только
// если разобрался как документ с непустым id — любой другой ответ
// (ошибка сервера, мусор, страница прокси) означает отсутствие документа.
func (c *HTTPChannel) Pull(ctx context.Context) (*models.TripDocument, error) {
	url := fmt.Sprintf("%s/api/v1/trip?t=%d", c.baseURL, time.Now().UnixNano())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var wire api.Trip
	if err := json.Unmarshal(respBody, &wire); err != nil {
		return nil, nil
	}
	if wire.ID == "" {
		return nil, nil
	}

	return fromWire(&wire), nil
}

// Subscribe не поддерживается HTTP каналом
func (c *HTTPChannel) Subscribe(ctx context.Context, onChange func(trip *models.TripDocument)) (func(), error) {
	return nil, ErrSubscriptionUnsupported
}
