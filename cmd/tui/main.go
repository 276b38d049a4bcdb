// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Command tui is an interactive terminal client that queries the configured
// catalog in-process.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/config"
	"github.com/tomtom215/skillmatch/internal/logging"
	"github.com/tomtom215/skillmatch/internal/recommender"
	"github.com/tomtom215/skillmatch/internal/tui"
)

func main() {
	topK := flag.Int("k", tui.DefaultTopK, "results per query")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	// Log lines would corrupt the terminal UI.
	logCfg := cfg.Logging.LoggerConfig()
	logCfg.Level = "disabled"
	logging.Init(logCfg)

	ctx := context.Background()

	src, err := catalog.NewSource(ctx, cfg.Catalog.SourceConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog source: %v\n", err)
		os.Exit(1)
	}
	cat, version, err := catalog.Load(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		os.Exit(1)
	}
	rec, err := recommender.New(cat, cfg.Recommend.EngineConfig(), logging.Logger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "build recommender: %v\n", err)
		os.Exit(1)
	}

	summary := fmt.Sprintf("%d assessments from %s (%s)", cat.Len(), src, version)
	m := tui.New(ctx, rec.WithVersion(version), summary).WithTopK(*topK)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}
