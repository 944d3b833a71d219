package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPForecaster_Forecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Paris",
			"main": {"temp": 18.4, "humidity": 72},
			"weather": [{"description": "light rain"}],
			"wind": {"speed": 4.1}
		}`))
	}))
	defer server.Close()

	f := NewHTTPForecaster(server.URL, "test-key")
	forecast, err := f.Forecast(context.Background(), "Paris")

	require.NoError(t, err)
	require.NotNil(t, forecast)
	assert.Equal(t, "Paris", forecast.City)
	assert.Equal(t, 18.4, forecast.Temperature)
	assert.Equal(t, 72, forecast.Humidity)
	assert.Equal(t, "light rain", forecast.Description)
	assert.Equal(t, 4.1, forecast.WindSpeed)
	assert.False(t, forecast.RetrievedAt.IsZero())
	assert.False(t, forecast.Cached)
}

func TestHTTPForecaster_Forecast_RateLimited(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "too many requests", status: http.StatusTooManyRequests},
		{name: "quota exceeded", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"cod":429,"message":"quota"}`))
			}))
			defer server.Close()

			f := NewHTTPForecaster(server.URL, "test-key")
			forecast, err := f.Forecast(context.Background(), "Paris")

			// Троттлинг различим по классу ошибки
			assert.ErrorIs(t, err, ErrRateLimited)
			assert.Nil(t, forecast)
		})
	}
}

func TestHTTPForecaster_Forecast_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewHTTPForecaster(server.URL, "test-key")
	forecast, err := f.Forecast(context.Background(), "Paris")

	require.Error(t, err)
	// Серверная ошибка — не rate limit, breaker открывать не за что
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.Nil(t, forecast)
}

func TestHTTPForecaster_Forecast_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer server.Close()

	f := NewHTTPForecaster(server.URL, "test-key")
	forecast, err := f.Forecast(context.Background(), "Paris")

	assert.Error(t, err)
	assert.Nil(t, forecast)
}

func TestHTTPForecaster_Forecast_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	f := NewHTTPForecaster(server.URL, "test-key")
	forecast, err := f.Forecast(context.Background(), "Paris")

	assert.Error(t, err)
	assert.Nil(t, forecast)
}
