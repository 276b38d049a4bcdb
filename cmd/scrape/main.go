// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Command scrape downloads the public product catalog listing and writes it
// as a catalog CSV.
//
//	scrape -out SHL_Scraped_Assessments.csv -pages 34
//
// Defaults come from the scraper section of the configuration (SCRAPER_*
// environment variables or config.yaml).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/tomtom215/skillmatch/internal/config"
	"github.com/tomtom215/skillmatch/internal/logging"
	"github.com/tomtom215/skillmatch/internal/scraper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.LoggerConfig())

	out := flag.String("out", cfg.Scraper.Output, "output CSV path")
	pages := flag.Int("pages", cfg.Scraper.Pages, "number of listing pages")
	delay := flag.Duration("delay", cfg.Scraper.Delay, "minimum delay between page requests")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sc, err := scraper.New(scraper.Config{
		BaseURL:   cfg.Scraper.BaseURL,
		Pages:     *pages,
		PageSize:  cfg.Scraper.PageSize,
		Delay:     *delay,
		Timeout:   cfg.Scraper.Timeout,
		UserAgent: cfg.Scraper.UserAgent,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid scraper configuration")
	}

	rows, err := sc.Run(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("Scrape failed")
	}

	if err := writeFile(*out, rows); err != nil {
		logging.Fatal().Err(err).Str("path", *out).Msg("Failed to write catalog")
	}
	logging.Info().Int("records", len(rows)).Str("path", *out).Msg("Catalog written")
}

// writeFile writes rows to a temporary file next to path and renames it
// into place, so readers polling path never see a partial catalog.
func writeFile(path string, rows []scraper.Row) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".scrape-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after rename

	if err := scraper.WriteCSV(tmp, rows); err != nil {
		tmp.Close() //nolint:errcheck,gosec // write error takes precedence
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
