// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/skillmatch/internal/recommend/category"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateScraper(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
	return nil
}

// validateCatalog validates the catalog location and reload settings
func (c *Config) validateCatalog() error {
	loc := strings.TrimSpace(c.Catalog.Location)
	if loc == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if strings.HasPrefix(loc, "s3://") {
		if err := validateS3Location(loc); err != nil {
			return fmt.Errorf("CATALOG_PATH is invalid: %w", err)
		}
	}
	if c.Catalog.ReloadInterval < 0 {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must not be negative")
	}
	if c.Catalog.S3.Endpoint != "" {
		if err := validateHTTPURL(c.Catalog.S3.Endpoint, "S3_ENDPOINT"); err != nil {
			return err
		}
	}
	if (c.Catalog.S3.AccessKeyID == "") != (c.Catalog.S3.SecretAccessKey == "") {
		return fmt.Errorf("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY must be set together")
	}
	return nil
}

// validateRecommend validates top_k bounds and balance codes
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultTopK <= 0 {
		return fmt.Errorf("RECOMMEND_TOP_K must be positive, got %d", r.DefaultTopK)
	}
	if r.MaxTopK < r.DefaultTopK {
		return fmt.Errorf("RECOMMEND_MAX_TOP_K (%d) must be >= RECOMMEND_TOP_K (%d)", r.MaxTopK, r.DefaultTopK)
	}
	for _, code := range []string{r.PrimaryCode, r.SecondaryCode} {
		if len(code) != 1 || !category.HasCode(code) {
			return fmt.Errorf("recommend balance code %q must be one of %s", code, category.Codes)
		}
	}
	return nil
}

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if err := validateHTTPURL(origin, "CORS_ORIGINS"); err != nil {
			return err
		}
	}
	return c.validateRateLimits()
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	if len(c.Security.CORSOrigins) == 0 {
		return true
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true when a production deployment allows any origin.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// IsProduction reports whether ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateScraper validates scraper paging settings
func (c *Config) validateScraper() error {
	s := c.Scraper
	if strings.Count(s.BaseURL, "%d") != 1 {
		return fmt.Errorf("SCRAPER_BASE_URL must contain exactly one %%d offset verb")
	}
	if err := validateHTTPURL(s.PageURL(0), "SCRAPER_BASE_URL"); err != nil {
		return err
	}
	if s.Pages < 1 {
		return fmt.Errorf("SCRAPER_PAGES must be at least 1, got %d", s.Pages)
	}
	if s.PageSize < 1 {
		return fmt.Errorf("SCRAPER_PAGE_SIZE must be at least 1, got %d", s.PageSize)
	}
	if s.Delay < 0 {
		return fmt.Errorf("SCRAPER_DELAY must not be negative")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("scraper timeout must be positive")
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

var validEnvironments = map[string]bool{
	"development": true,
	"production":  true,
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}
