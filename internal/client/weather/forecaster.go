package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

//go:generate moq -out forecaster_mock.go . Forecaster

// Forecast представляет сводку погоды для города
type Forecast struct {
	City        string    `json:"city"`        // город из ответа провайдера
	Temperature float64   `json:"temperature"` // температура, °C
	Description string    `json:"description"` // словесное описание ("light rain")
	Humidity    int       `json:"humidity"`    // влажность, %
	WindSpeed   float64   `json:"wind_speed"`  // ветер, м/с
	RetrievedAt time.Time `json:"retrieved_at"`
	Cached      bool      `json:"-"` // ответ взят из кэша, не из сети
}

// Forecaster defines interface for fetching weather from a remote provider
type Forecaster interface {
	// Forecast fetches current weather for a city.
	// Returns ErrRateLimited (possibly wrapped) when the provider throttles.
	Forecast(ctx context.Context, city string) (*Forecast, error)
}

// HTTPForecaster запрашивает погоду у OpenWeather-совместимого API
type HTTPForecaster struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewHTTPForecaster создает новый HTTP клиент погоды.
// endpoint — базовый URL метода current weather, apiKey — ключ квоты.
func NewHTTPForecaster(endpoint, apiKey string) *HTTPForecaster {
	return &HTTPForecaster{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// weatherResponse повторяет структуру ответа OpenWeather current weather
type weatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Forecast запрашивает текущую погоду: GET {endpoint}?q={city}&appid={key}
func (f *HTTPForecaster) Forecast(ctx context.Context, city string) (*Forecast, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", f.apiKey)
	query.Set("units", "metric")

	reqURL := f.endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
		// 403 у некоторых провайдеров означает исчерпанную квоту
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, ErrRateLimited)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("weather request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var wr weatherResponse
	if err := json.Unmarshal(respBody, &wr); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	forecast := &Forecast{
		City:        wr.Name,
		Temperature: wr.Main.Temp,
		Humidity:    wr.Main.Humidity,
		WindSpeed:   wr.Wind.Speed,
		RetrievedAt: time.Now().UTC(),
	}
	if len(wr.Weather) > 0 {
		forecast.Description = wr.Weather[0].Description
	}

	return forecast, nil
}
