package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/moodfeed/moodfeed/pkg/config"
	"github.com/moodfeed/moodfeed/pkg/content"
	"github.com/moodfeed/moodfeed/pkg/location"
	"github.com/moodfeed/moodfeed/pkg/mood"
	"github.com/moodfeed/moodfeed/pkg/provider"
	"github.com/moodfeed/moodfeed/pkg/scheduler"
	"github.com/moodfeed/moodfeed/pkg/session"
	"github.com/moodfeed/moodfeed/pkg/store"
)

// Opts with all CLI options
type Opts struct {
	Config   string `short:"f" long:"config" env:"CONFIG" default:"moodfeed.yml" description:"config file"`
	Category string `short:"c" long:"category" description:"category filter, overrides preferred categories"`
	Watch    bool   `short:"w" long:"watch" description:"keep running and auto-refresh per settings"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)
	color.NoColor = opts.NoColor

	log.Printf("[INFO] starting moodfeed version %s", revision)

	// .env is optional, used to feed api keys into config expansion
	if err := godotenv.Load(); err != nil {
		log.Printf("[DEBUG] no .env file: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] moodfeed failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	kv, err := store.New(ctx, store.Config{
		DSN:             cfg.Storage.DSN,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Storage.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer kv.Close()

	settings := session.NewSettingsStore(kv)
	settings.LoadInitial(ctx)

	loc := locator(cfg)
	coordinator := session.NewCoordinator(session.Params{
		Weather:           provider.NewWeather(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout),
		News:              newsProvider(cfg),
		Locator:           loc,
		Extractor:         extractor(cfg),
		Settings:          settings,
		ExtractMax:        cfg.Extraction.MaxArticles,
		ExtractConcurrent: cfg.Extraction.MaxConcurrent,
	})

	if opts.Category != "" {
		// the filter change triggers its own news fetch, weather loads separately
		if err := coordinator.SetCategoryFilter(ctx, opts.Category); err != nil {
			return fmt.Errorf("set category filter: %w", err)
		}
		if point, lerr := loc.Locate(ctx); lerr != nil {
			log.Printf("[WARN] location unavailable, skipping weather fetch: %v", lerr)
		} else if werr := coordinator.FetchWeather(ctx, point.Latitude, point.Longitude); werr != nil {
			log.Printf("[WARN] weather fetch failed: %v", werr)
		}
	} else if err := coordinator.Refresh(ctx); err != nil {
		log.Printf("[WARN] refresh incomplete: %v", err)
	}

	printView(coordinator)

	if !opts.Watch {
		return nil
	}

	userSettings := settings.Get()
	if !userSettings.AutoRefresh {
		log.Printf("[INFO] auto refresh disabled in settings, watch mode exits")
		return nil
	}

	sched := scheduler.New(coordinator,
		time.Duration(userSettings.RefreshInterval)*time.Minute, cfg.News.Timeout+cfg.Weather.Timeout)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer sched.Stop()

	<-ctx.Done()
	log.Print("[INFO] shutdown complete")
	return nil
}

// newsProvider picks the API client when a key is configured, the RSS
// source otherwise
func newsProvider(cfg *config.Config) session.NewsProvider {
	if cfg.News.APIKey != "" {
		return provider.NewNews(cfg.News.BaseURL, cfg.News.APIKey, cfg.News.Country, cfg.News.Timeout)
	}
	return provider.NewRSS(cfg.News.Feeds, cfg.News.Timeout)
}

func locator(cfg *config.Config) session.Locator {
	if cfg.Location.City != "" {
		return location.NewGeocoder(cfg.Location.City)
	}
	return location.NewFixed(cfg.Location.Latitude, cfg.Location.Longitude, "default")
}

func extractor(cfg *config.Config) session.Extractor {
	if !cfg.Extraction.Enabled {
		return nil
	}
	return content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent)
}

// printView renders the derived state: weather summary, daily forecast and
// the filtered headline list
func printView(c *session.Coordinator) {
	snap := c.Snapshot()

	if snap.Weather != nil {
		w := snap.Weather
		profile := mood.Classify(w.TemperatureCelsius())
		color.New(color.FgCyan, color.Bold).Printf("%s: %.0f° %s (feels like %.0f°, humidity %d%%, wind %.1f)\n",
			w.Location, w.Temperature, w.Description, w.FeelsLike, w.Humidity, w.WindSpeed)
		color.New(color.FgCyan).Printf("mood band: %s\n", profile.Band)
	}
	if snap.WeatherError != "" {
		color.New(color.FgRed).Printf("weather unavailable: %s\n", snap.WeatherError)
	}

	for _, day := range c.DailyForecast() {
		fmt.Printf("  %s  %3.0f°  %s\n", day.Date.Format("Mon Jan 2"), day.Temperature, day.Condition)
	}

	if snap.NewsError != "" {
		color.New(color.FgRed).Printf("news unavailable: %s\n", snap.NewsError)
	}

	fmt.Println()
	for i, article := range c.Derive() {
		color.New(color.Bold).Printf("%2d. %s\n", i+1, article.Title)
		if article.Source != "" || !article.PublishedAt.IsZero() {
			color.New(color.FgWhite).Printf("    %s  %s\n", article.Source, article.PublishedAt.Format("2006-01-02 15:04"))
		}
	}
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
