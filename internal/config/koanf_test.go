// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateConfig points CONFIG_PATH at dir and runs the test from dir so the
// default search paths and .env lookups stay inside it.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	for key := range envMappings {
		key = strings.ToUpper(key)
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Catalog.Location != "SHL_Scraped_Assessments.csv" {
		t.Errorf("Catalog.Location = %q", cfg.Catalog.Location)
	}
	if cfg.Recommend.DefaultTopK != 10 || cfg.Recommend.MaxTopK != 50 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Scraper.Pages != 34 || cfg.Scraper.PageSize != 12 || cfg.Scraper.Delay != 1500*time.Millisecond {
		t.Errorf("Scraper = %+v", cfg.Scraper)
	}
	if got := cfg.Scraper.PageURL(2); got != "https://www.shl.com/products/product-catalog/?start=24&type=1&type=1" {
		t.Errorf("PageURL(2) = %q", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"CATALOG_PATH", "catalog.location"},
		{"CATALOG_RELOAD_INTERVAL", "catalog.reload_interval"},
		{"S3_USE_PATH_STYLE", "catalog.s3.use_path_style"},
		{"RECOMMEND_TOP_K", "recommend.default_top_k"},
		{"LOG_LEVEL", "logging.level"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"SCRAPER_DELAY", "scraper.delay"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolateConfig(t)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	t.Run("default path in working directory", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("{}"), 0o600); err != nil {
			t.Fatal(err)
		}
		if got := findConfigFile(); got != "config.yml" {
			t.Errorf("findConfigFile() = %q, want config.yml", got)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		custom := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("{}"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv(ConfigPathEnvVar, custom)
		if got := findConfigFile(); got != custom {
			t.Errorf("findConfigFile() = %q, want %q", got, custom)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateConfig(t)

	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_PATH", "s3://catalogs/shl.csv")
	t.Setenv("RECOMMEND_TOP_K", "5")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("SCRAPER_DELAY", "2s")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Catalog.Location != "s3://catalogs/shl.csv" {
		t.Errorf("Catalog.Location = %q", cfg.Catalog.Location)
	}
	if cfg.Recommend.DefaultTopK != 5 {
		t.Errorf("Recommend.DefaultTopK = %d, want 5", cfg.Recommend.DefaultTopK)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Scraper.Delay != 2*time.Second {
		t.Errorf("Scraper.Delay = %v, want 2s", cfg.Scraper.Delay)
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := isolateConfig(t)

	configContent := `
server:
  port: 8888
  host: "127.0.0.1"

catalog:
  location: "/data/catalog.csv"
  reload_interval: 0s

recommend:
  default_top_k: 8
  max_top_k: 20

logging:
  level: "warn"
`
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Catalog.Location != "/data/catalog.csv" || cfg.Catalog.ReloadInterval != 0 {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Recommend.DefaultTopK != 8 || cfg.Recommend.MaxTopK != 20 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	// Environment overrides the file.
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfDotEnv(t *testing.T) {
	dir := isolateConfig(t)

	if err := os.WriteFile(filepath.Join(dir, DotEnvFile), []byte("HTTP_PORT=7001\nLOG_FORMAT=console\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("Server.Port = %d, want 7001 from .env", cfg.Server.Port)
	}
	// Variables already present win over .env.
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	isolateConfig(t)
	t.Setenv("HTTP_PORT", "70000")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() should fail validation for an out-of-range port")
	}
}

func TestWatchConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	if err := WatchConfigFile(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatalf("WatchConfigFile() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("callback not invoked after file change")
	}
}
