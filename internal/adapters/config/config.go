package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Cache   CacheConfig
	News    NewsConfig
	Prices  PricesConfig
	Logging LoggingConfig
}

// ServerConfig represents HTTP server parameters
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

// CORSConfig represents the browser origin allow-list
type CORSConfig struct {
	WebOrigin string `envconfig:"WEB_ORIGIN" default:"http://localhost:3002"`
}

// CacheConfig represents the fetch memo cache parameters
type CacheConfig struct {
	TTL time.Duration `envconfig:"CACHE_TTL" default:"60s"`
}

// NewsConfig represents headline feed parameters
type NewsConfig struct {
	Timeout  time.Duration `envconfig:"NEWS_TIMEOUT" default:"8s"`
	MaxItems int           `envconfig:"NEWS_MAX_ITEMS" default:"15"`
}

// PricesConfig represents price history parameters
type PricesConfig struct {
	Timeout    time.Duration `envconfig:"PRICES_TIMEOUT" default:"8s"`
	WindowDays int           `envconfig:"PRICES_WINDOW_DAYS" default:"35"`
	MaxPoints  int           `envconfig:"PRICES_MAX_POINTS" default:"30"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive")
	}
	if c.News.Timeout <= 0 || c.Prices.Timeout <= 0 {
		return fmt.Errorf("fetch timeouts must be positive")
	}
	if c.News.MaxItems < 1 {
		return fmt.Errorf("news max items must be at least 1")
	}
	if c.Prices.MaxPoints < 1 {
		return fmt.Errorf("price max points must be at least 1")
	}
	if c.Prices.WindowDays < c.Prices.MaxPoints {
		return fmt.Errorf("price window must cover at least max points days")
	}
	return nil
}
