package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

// Weather is an OpenWeatherMap-compatible client for current conditions
// and the multi-day forecast.
type Weather struct {
	baseURL string
	apiKey  string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewWeather creates a weather client for the given base URL and credential
func NewWeather(baseURL, apiKey string, timeout time.Duration) *Weather {
	return &Weather{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		circuit: newBreaker("weather"),
	}
}

// currentResp mirrors the provider's current conditions payload
type currentResp struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Cod     json.Number `json:"cod"`
	Message string      `json:"message"`
}

// forecastResp mirrors the provider's forecast payload
type forecastResp struct {
	Cod     json.Number `json:"cod"`
	Message interface{} `json:"message"` // number on success, string on error
	List    []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

// Current fetches current conditions for the coordinates in the given unit
func (w *Weather) Current(ctx context.Context, lat, lon float64, unit domain.TemperatureUnit) (*domain.WeatherSnapshot, error) {
	body, err := w.get(ctx, "/weather", lat, lon, unit)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var payload currentResp
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, domain.WrapFailure(domain.ErrMalformed, err, "decode current conditions")
	}

	// application-level status, e.g. bad credential with HTTP 200 proxies
	if cod, convErr := payload.Cod.Int64(); convErr == nil && cod != 0 && cod != http.StatusOK {
		return nil, domain.Failuref(domain.ErrNetwork, "weather api status %d: %s", cod, payload.Message)
	}
	if len(payload.Weather) == 0 {
		return nil, domain.Failuref(domain.ErrMalformed, "current conditions missing weather block")
	}

	return &domain.WeatherSnapshot{
		Location:    payload.Name,
		Condition:   payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
		Temperature: payload.Main.Temp,
		Unit:        unit,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}, nil
}

// Forecast fetches the multi-day forecast series for the coordinates
func (w *Weather) Forecast(ctx context.Context, lat, lon float64, unit domain.TemperatureUnit) (*domain.ForecastSeries, error) {
	body, err := w.get(ctx, "/forecast", lat, lon, unit)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var payload forecastResp
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, domain.WrapFailure(domain.ErrMalformed, err, "decode forecast")
	}

	// the forecast endpoint reports cod as a string
	if cod, convErr := payload.Cod.Int64(); convErr == nil && cod != 0 && cod != http.StatusOK {
		return nil, domain.Failuref(domain.ErrNetwork, "weather api status %d: %v", cod, payload.Message)
	}
	if len(payload.List) == 0 {
		return nil, domain.Failuref(domain.ErrMalformed, "forecast has no samples")
	}

	series := &domain.ForecastSeries{
		Location: payload.City.Name,
		Unit:     unit,
		Samples:  make([]domain.ForecastSample, 0, len(payload.List)),
	}
	for _, item := range payload.List {
		sample := domain.ForecastSample{
			Time:        time.Unix(item.Dt, 0),
			Temperature: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			sample.Condition = item.Weather[0].Main
			sample.Description = item.Weather[0].Description
		}
		series.Samples = append(series.Samples, sample)
	}
	return series, nil
}

func (w *Weather) get(ctx context.Context, endpoint string, lat, lon float64, unit domain.TemperatureUnit) (io.ReadCloser, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("appid", w.apiKey)
	values.Set("units", unit.APIUnits())

	u := fmt.Sprintf("%s%s?%s", w.baseURL, endpoint, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := doRequest(ctx, w.client, w.circuit, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
