// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/logging"
	"github.com/tomtom215/skillmatch/internal/recommend"
)

// Config holds all application configuration.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	src, err := catalog.NewSource(ctx, cfg.Catalog.SourceConfig())
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Scraper   ScraperConfig   `koanf:"scraper"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogConfig locates the assessment catalog.
type CatalogConfig struct {
	// Location is a local CSV path or an s3://bucket/key URL.
	Location string `koanf:"location"`

	// ReloadInterval is how often the source is polled for changes.
	// Zero disables polling; manual reloads still work.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	S3 S3Config `koanf:"s3"`
}

// S3Config holds optional S3 client overrides. Empty fields fall back to the
// AWS default credential chain and region.
type S3Config struct {
	Endpoint        string `koanf:"endpoint"`
	Region          string `koanf:"region"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
	UsePathStyle    bool   `koanf:"use_path_style"`
}

// SourceConfig converts to the catalog package's source settings.
func (c CatalogConfig) SourceConfig() catalog.SourceConfig {
	return catalog.SourceConfig{
		Location: c.Location,
		S3: catalog.S3Config{
			Endpoint:        c.S3.Endpoint,
			Region:          c.S3.Region,
			AccessKeyID:     c.S3.AccessKeyID,
			SecretAccessKey: c.S3.SecretAccessKey,
			UsePathStyle:    c.S3.UsePathStyle,
		},
	}
}

// RecommendConfig holds ranking engine settings.
type RecommendConfig struct {
	DefaultTopK   int    `koanf:"default_top_k"`
	MaxTopK       int    `koanf:"max_top_k"`
	PrimaryCode   string `koanf:"primary_code"`
	SecondaryCode string `koanf:"secondary_code"`
}

// EngineConfig converts to the recommend package's configuration.
func (c RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		DefaultTopK:   c.DefaultTopK,
		MaxTopK:       c.MaxTopK,
		PrimaryCode:   c.PrimaryCode,
		SecondaryCode: c.SecondaryCode,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// LoggerConfig converts to the logging package's configuration.
func (c LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Level
	cfg.Format = c.Format
	cfg.Caller = c.Caller
	return cfg
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// ScraperConfig holds catalog scraper settings.
type ScraperConfig struct {
	// BaseURL contains one %d verb for the listing offset.
	BaseURL   string        `koanf:"base_url"`
	Pages     int           `koanf:"pages"`
	PageSize  int           `koanf:"page_size"`
	Delay     time.Duration `koanf:"delay"`
	Timeout   time.Duration `koanf:"timeout"`
	Output    string        `koanf:"output"`
	UserAgent string        `koanf:"user_agent"`
}

// PageURL returns the listing URL for page i.
func (c ScraperConfig) PageURL(i int) string {
	return fmt.Sprintf(c.BaseURL, i*c.PageSize)
}

// Load reads configuration with the following precedence:
//  1. Built-in defaults
//  2. Config file (CONFIG_PATH or the default search paths)
//  3. Environment variables
//
// See LoadWithKoanf for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
