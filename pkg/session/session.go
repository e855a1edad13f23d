// Package session is the state-orchestration core: it owns the session
// state, coordinates the weather and news fetches against the user
// settings, and derives the filtered, ordered article view consumers read.
// Consumers never mutate the state directly; every mutation flows through
// the settings store update or the coordinator fetch operations.
package session

import (
	"context"

	"github.com/moodfeed/moodfeed/pkg/domain"
	"github.com/moodfeed/moodfeed/pkg/location"
)

//go:generate moq -out mocks/weather.go -pkg mocks -skip-ensure -fmt goimports . WeatherProvider
//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsProvider
//go:generate moq -out mocks/locator.go -pkg mocks -skip-ensure -fmt goimports . Locator
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/kv.go -pkg mocks -skip-ensure -fmt goimports . KV

// WeatherProvider fetches current conditions and the forecast series
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64, unit domain.TemperatureUnit) (*domain.WeatherSnapshot, error)
	Forecast(ctx context.Context, lat, lon float64, unit domain.TemperatureUnit) (*domain.ForecastSeries, error)
}

// NewsProvider fetches current headlines for a category
type NewsProvider interface {
	TopHeadlines(ctx context.Context, category string) ([]domain.Article, error)
}

// Locator resolves the coordinates for weather fetches
type Locator interface {
	Locate(ctx context.Context) (location.Point, error)
}

// Extractor retrieves full article text for content enrichment
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// KV is the persistent key-value collaborator for settings
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Snapshot is the read-only projection of the session state. Weather and
// news are independent: either side may be absent at any time.
type Snapshot struct {
	Weather        *domain.WeatherSnapshot
	Forecast       *domain.ForecastSeries
	News           []domain.Article
	WeatherLoading bool
	NewsLoading    bool
	WeatherError   string
	NewsError      string
	Settings       domain.Settings
}
