package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Weather struct {
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://api.openweathermap.org/data/2.5,description=Weather API base URL"`
		APIKey  string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=Weather API access credential (can use environment variable)"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
	} `yaml:"weather" json:"weather" jsonschema:"description=Weather provider configuration"`

	News struct {
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://newsapi.org/v2,description=News API base URL"`
		APIKey  string        `yaml:"api_key" json:"api_key" jsonschema:"description=News API access credential (can use environment variable)"`
		Country string        `yaml:"country" json:"country" jsonschema:"default=us,description=Country code for top headlines"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
		Feeds   []string      `yaml:"feeds" json:"feeds" jsonschema:"description=RSS feed URLs used as news source when no API key is set"`
	} `yaml:"news" json:"news" jsonschema:"description=News provider configuration"`

	Location struct {
		Latitude  float64 `yaml:"latitude" json:"latitude" jsonschema:"default=40.7128,description=Fallback latitude"`
		Longitude float64 `yaml:"longitude" json:"longitude" jsonschema:"default=-74.006,description=Fallback longitude"`
		City      string  `yaml:"city" json:"city" jsonschema:"description=City name to geocode instead of fixed coordinates"`
	} `yaml:"location" json:"location" jsonschema:"description=Location provider configuration"`

	Storage struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:moodfeed.db?cache=shared&mode=rwc,description=Settings database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=4,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=2,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"storage" json:"storage" jsonschema:"description=Settings persistence configuration"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article content extraction configuration"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enrich fetched articles with extracted content"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Maximum concurrent extractions"`
	MaxArticles   int           `yaml:"max_articles" json:"max_articles" jsonschema:"default=10,description=Extract content for at most this many articles per fetch"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Moodfeed/1.0,description=User agent for HTTP requests"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Weather.BaseURL == "" {
		c.Weather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if c.Weather.Timeout == 0 {
		c.Weather.Timeout = 15 * time.Second
	}

	if c.News.BaseURL == "" {
		c.News.BaseURL = "https://newsapi.org/v2"
	}
	if c.News.Country == "" {
		c.News.Country = "us"
	}
	if c.News.Timeout == 0 {
		c.News.Timeout = 15 * time.Second
	}

	if c.Location.Latitude == 0 && c.Location.Longitude == 0 {
		// default location, used when no city is configured
		c.Location.Latitude = 40.7128
		c.Location.Longitude = -74.0060
	}

	if c.Storage.DSN == "" {
		c.Storage.DSN = "file:moodfeed.db?cache=shared&mode=rwc"
	}
	if c.Storage.MaxOpenConns == 0 {
		c.Storage.MaxOpenConns = 4
	}
	if c.Storage.MaxIdleConns == 0 {
		c.Storage.MaxIdleConns = 2
	}
	if c.Storage.ConnMaxLifetime == 0 {
		c.Storage.ConnMaxLifetime = 3600
	}

	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.MaxConcurrent == 0 {
		c.Extraction.MaxConcurrent = 5
	}
	if c.Extraction.MaxArticles == 0 {
		c.Extraction.MaxArticles = 10
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Moodfeed/1.0"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Weather.APIKey == "" {
		return fmt.Errorf("weather.api_key is required")
	}
	if cfg.News.APIKey == "" && len(cfg.News.Feeds) == 0 {
		return fmt.Errorf("either news.api_key or news.feeds is required")
	}
	if cfg.Weather.Timeout < time.Second {
		return fmt.Errorf("weather.timeout must be at least 1 second")
	}
	if cfg.News.Timeout < time.Second {
		return fmt.Errorf("news.timeout must be at least 1 second")
	}
	if cfg.Extraction.Enabled && cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction.timeout must be at least 1 second")
	}
	return nil
}
