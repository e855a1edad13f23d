package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

func TestWeather_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"name": "Oslo",
			"weather": [{"main": "Clouds", "description": "overcast clouds"}],
			"main": {"temp": 5.3, "feels_like": 2.1, "humidity": 81},
			"wind": {"speed": 4.6},
			"cod": 200
		}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()

	client := NewWeather(srv.URL, "test-key", time.Second)
	snap, err := client.Current(context.Background(), 59.91, 10.75, domain.UnitCelsius)
	require.NoError(t, err)

	assert.Equal(t, "Oslo", snap.Location)
	assert.Equal(t, "Clouds", snap.Condition)
	assert.Equal(t, "overcast clouds", snap.Description)
	assert.InDelta(t, 5.3, snap.Temperature, 0.001)
	assert.Equal(t, domain.UnitCelsius, snap.Unit)
	assert.InDelta(t, 2.1, snap.FeelsLike, 0.001)
	assert.Equal(t, 81, snap.Humidity)
	assert.InDelta(t, 4.6, snap.WindSpeed, 0.001)
}

func TestWeather_CurrentImperialUnits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		_, err := w.Write([]byte(`{"name":"Chicago","weather":[{"main":"Clear"}],"main":{"temp":41},"cod":200}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()

	client := NewWeather(srv.URL, "test-key", time.Second)
	snap, err := client.Current(context.Background(), 41.88, -87.63, domain.UnitFahrenheit)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitFahrenheit, snap.Unit)
	assert.InDelta(t, 5.0, snap.TemperatureCelsius(), 0.001)
}

func TestWeather_CurrentErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		kind    error
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			kind: domain.ErrNetwork,
		},
		{
			name: "application-level error with http 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
			},
			kind: domain.ErrNetwork,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			kind: domain.ErrMalformed,
		},
		{
			name: "missing weather block",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"name":"Oslo","main":{"temp":5},"cod":200}`))
			},
			kind: domain.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewWeather(srv.URL, "test-key", time.Second)
			_, err := client.Current(context.Background(), 1, 2, domain.UnitCelsius)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestWeather_Forecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		_, err := w.Write([]byte(`{
			"cod": "200",
			"message": 0,
			"city": {"name": "Oslo"},
			"list": [
				{"dt": 1710154800, "main": {"temp": 4.2}, "weather": [{"main": "Rain", "description": "light rain"}]},
				{"dt": 1710165600, "main": {"temp": 6.1}, "weather": [{"main": "Clouds", "description": "few clouds"}]}
			]
		}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()

	client := NewWeather(srv.URL, "test-key", time.Second)
	series, err := client.Forecast(context.Background(), 59.91, 10.75, domain.UnitCelsius)
	require.NoError(t, err)

	assert.Equal(t, "Oslo", series.Location)
	assert.Equal(t, domain.UnitCelsius, series.Unit)
	require.Len(t, series.Samples, 2)
	assert.Equal(t, time.Unix(1710154800, 0), series.Samples[0].Time)
	assert.InDelta(t, 4.2, series.Samples[0].Temperature, 0.001)
	assert.Equal(t, "Rain", series.Samples[0].Condition)
	assert.Equal(t, "light rain", series.Samples[0].Description)
}

func TestWeather_ForecastErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind error
	}{
		{name: "string cod error", body: `{"cod": "401", "message": "Invalid API key"}`, kind: domain.ErrNetwork},
		{name: "empty list", body: `{"cod": "200", "message": 0, "list": []}`, kind: domain.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewWeather(srv.URL, "test-key", time.Second)
			_, err := client.Forecast(context.Background(), 1, 2, domain.UnitCelsius)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}
