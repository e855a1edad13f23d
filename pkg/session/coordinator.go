package session

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/moodfeed/moodfeed/pkg/domain"
	"github.com/moodfeed/moodfeed/pkg/mood"
)

// ErrFetchInProgress is returned when a fetch for the same resource is
// already outstanding. Duplicate fetches are rejected, not queued.
var ErrFetchInProgress = errors.New("fetch already in progress")

// Coordinator owns the session state and manages the two independent
// fetch resources. Each resource moves Idle -> Loading -> Ready|Failed and
// is re-enterable; a monotonic per-resource sequence guards against a stale
// result clobbering fresher data.
type Coordinator struct {
	weather   WeatherProvider
	news      NewsProvider
	locator   Locator
	extractor Extractor // optional, nil disables content enrichment
	settings  *SettingsStore

	extractMax        int
	extractConcurrent int

	mu             sync.Mutex
	weatherData    *domain.WeatherSnapshot
	forecastData   *domain.ForecastSeries
	newsData       []domain.Article // nil until the first successful fetch
	weatherLoading bool
	newsLoading    bool
	weatherErr     string
	newsErr        string
	categoryFilter string // empty means "all": fall back to preferences
	weatherSeq     uint64
	newsSeq        uint64
}

// Params holds coordinator dependencies and options
type Params struct {
	Weather           WeatherProvider
	News              NewsProvider
	Locator           Locator
	Extractor         Extractor
	Settings          *SettingsStore
	ExtractMax        int
	ExtractConcurrent int
}

// NewCoordinator creates a coordinator with empty state
func NewCoordinator(p Params) *Coordinator {
	if p.ExtractMax == 0 {
		p.ExtractMax = 10
	}
	if p.ExtractConcurrent == 0 {
		p.ExtractConcurrent = 5
	}
	return &Coordinator{
		weather:           p.Weather,
		news:              p.News,
		locator:           p.Locator,
		extractor:         p.Extractor,
		settings:          p.Settings,
		extractMax:        p.ExtractMax,
		extractConcurrent: p.ExtractConcurrent,
	}
}

// Settings exposes the settings store to consumers
func (c *Coordinator) Settings() *SettingsStore { return c.settings }

// FetchWeather fetches current conditions and the forecast concurrently.
// Both requests must succeed; the loading flag stays set until both have
// resolved. On failure previously held data stays in place and the error
// surfaces as a transient per-resource flag.
func (c *Coordinator) FetchWeather(ctx context.Context, lat, lon float64) error {
	c.mu.Lock()
	if c.weatherLoading {
		c.mu.Unlock()
		return ErrFetchInProgress
	}
	c.weatherSeq++
	seq := c.weatherSeq
	c.weatherLoading = true
	c.weatherErr = ""
	c.mu.Unlock()

	unit := c.settings.Get().TemperatureUnit

	var current *domain.WeatherSnapshot
	var forecast *domain.ForecastSeries

	// join, not a race: both sub-requests run concurrently and the loading
	// flag clears only after both resolve
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap, err := c.weather.Current(gctx, lat, lon, unit)
		if err != nil {
			return err
		}
		current = snap
		return nil
	})
	g.Go(func() error {
		series, err := c.weather.Forecast(gctx, lat, lon, unit)
		if err != nil {
			return err
		}
		forecast = series
		return nil
	})
	err := g.Wait()

	return c.applyWeather(seq, current, forecast, err)
}

// applyWeather commits a completed weather fetch under the sequence guard
func (c *Coordinator) applyWeather(seq uint64, current *domain.WeatherSnapshot, forecast *domain.ForecastSeries, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.weatherSeq {
		lgr.Printf("[DEBUG] discarding stale weather result, seq %d < %d", seq, c.weatherSeq)
		return nil
	}

	c.weatherLoading = false
	if err != nil {
		c.weatherErr = err.Error()
		lgr.Printf("[WARN] weather fetch failed: %v", err)
		return err
	}

	c.weatherData = current
	c.forecastData = forecast
	lgr.Printf("[INFO] weather updated for %s: %.1f %s, %s",
		current.Location, current.Temperature, current.Unit, current.Condition)
	return nil
}

// FetchNews fetches headlines, selecting the category as the explicit
// override if given, otherwise the first preferred category. On success the
// raw list is replaced wholesale.
func (c *Coordinator) FetchNews(ctx context.Context, categoryOverride string) error {
	c.mu.Lock()
	if c.newsLoading {
		c.mu.Unlock()
		return ErrFetchInProgress
	}
	c.newsSeq++
	seq := c.newsSeq
	c.newsLoading = true
	c.newsErr = ""
	c.mu.Unlock()

	category := categoryOverride
	if category == "" {
		if prefs := c.settings.Get().Categories; len(prefs) > 0 {
			category = prefs[0]
		}
	}

	articles, err := c.news.TopHeadlines(ctx, category)
	if err == nil && c.extractor != nil {
		c.enrich(ctx, articles)
	}

	return c.applyNews(seq, articles, err)
}

// applyNews commits a completed news fetch under the sequence guard
func (c *Coordinator) applyNews(seq uint64, articles []domain.Article, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.newsSeq {
		lgr.Printf("[DEBUG] discarding stale news result, seq %d < %d", seq, c.newsSeq)
		return nil
	}

	c.newsLoading = false
	if err != nil {
		c.newsErr = err.Error()
		lgr.Printf("[WARN] news fetch failed: %v", err)
		return err
	}

	c.newsData = articles
	lgr.Printf("[INFO] news updated, %d articles", len(articles))
	return nil
}

// enrich fills article content from the canonical URLs, best-effort
func (c *Coordinator) enrich(ctx context.Context, articles []domain.Article) {
	limit := c.extractMax
	if limit > len(articles) {
		limit = len(articles)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.extractConcurrent)

	for i := 0; i < limit; i++ {
		if articles[i].URL == "" || articles[i].Content != "" {
			continue
		}
		g.Go(func() error {
			text, err := c.extractor.Extract(gctx, articles[i].URL)
			if err != nil {
				lgr.Printf("[DEBUG] content extraction failed for %s: %v", articles[i].URL, err)
				return nil // enrichment is optional, keep the article as-is
			}
			articles[i].Content = text
			return nil
		})
	}
	_ = g.Wait()
}

// SetCategoryFilter changes the category filter and triggers exactly one
// news fetch. The value "all" (or empty) resets the filter: the fetch falls
// back to the preferred categories.
func (c *Coordinator) SetCategoryFilter(ctx context.Context, category string) error {
	if category == "all" {
		category = ""
	}
	if category != "" && !domain.ValidCategory(category) {
		return ErrUnknownCategory
	}

	c.mu.Lock()
	c.categoryFilter = category
	c.mu.Unlock()

	return c.FetchNews(ctx, category)
}

// Refresh resolves the location and re-fetches both resources. A location
// failure is soft: the weather fetch is skipped, news still loads. This is
// the consumer-driven refresh entry point; nothing here retries.
func (c *Coordinator) Refresh(ctx context.Context) error {
	var weatherErr error

	point, err := c.locator.Locate(ctx)
	if err != nil {
		lgr.Printf("[WARN] location unavailable, skipping weather fetch: %v", err)
	} else {
		weatherErr = c.FetchWeather(ctx, point.Latitude, point.Longitude)
	}

	c.mu.Lock()
	filter := c.categoryFilter
	c.mu.Unlock()

	newsErr := c.FetchNews(ctx, filter)
	return errors.Join(weatherErr, newsErr)
}

// ClearErrors clears both per-resource error flags
func (c *Coordinator) ClearErrors() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.weatherErr = ""
	c.newsErr = ""
}

// Snapshot returns a read-only copy of the current session state
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		WeatherLoading: c.weatherLoading,
		NewsLoading:    c.newsLoading,
		WeatherError:   c.weatherErr,
		NewsError:      c.newsErr,
		Settings:       c.settings.Get(),
	}
	if c.weatherData != nil {
		w := *c.weatherData
		snap.Weather = &w
	}
	if c.forecastData != nil {
		f := *c.forecastData
		f.Samples = append([]domain.ForecastSample(nil), c.forecastData.Samples...)
		snap.Forecast = &f
	}
	if c.newsData != nil {
		snap.News = append([]domain.Article(nil), c.newsData...)
	}
	return snap
}

// Derive composes the final article view: the raw list, mood-filtered when
// filtering is enabled and a weather snapshot is present, always stable
// sorted most recent first. It is a pure re-derivation of the current
// state, recomputed on every call.
func (c *Coordinator) Derive() []domain.Article {
	c.mu.Lock()
	news := c.newsData
	weather := c.weatherData
	c.mu.Unlock()

	if news == nil {
		return []domain.Article{}
	}

	articles := append([]domain.Article(nil), news...)

	if c.settings.Get().WeatherFiltering && weather != nil {
		profile := mood.Classify(weather.TemperatureCelsius())
		articles = mood.FilterRelevant(articles, profile.Keywords)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles
}

// DailyForecast aggregates the forecast series into per-day entries,
// excluding the current day
func (c *Coordinator) DailyForecast() []domain.DailyForecast {
	c.mu.Lock()
	series := c.forecastData
	c.mu.Unlock()

	if series == nil {
		return nil
	}
	return aggregateDaily(*series, timeNow())
}
