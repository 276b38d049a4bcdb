// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/skillmatch/docs" // Register swagger docs
	"github.com/tomtom215/skillmatch/internal/api"
	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/config"
	"github.com/tomtom215/skillmatch/internal/logging"
	"github.com/tomtom215/skillmatch/internal/recommender"
	"github.com/tomtom215/skillmatch/internal/supervisor"
	"github.com/tomtom215/skillmatch/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.LoggerConfig())

	logging.Info().
		Str("catalog", cfg.Catalog.Location).
		Dur("reload_interval", cfg.Catalog.ReloadInterval).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Skillmatch with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := catalog.NewSource(ctx, cfg.Catalog.SourceConfig())
	if err != nil {
		logging.Fatal().Err(err).Str("location", cfg.Catalog.Location).Msg("Failed to open catalog source")
	}

	holder := recommender.NewHolder(nil)
	catalogService := services.NewCatalogService(src, holder, services.CatalogServiceConfig{
		ReloadInterval: cfg.Catalog.ReloadInterval,
		Recommend:      cfg.Recommend.EngineConfig(),
	}, logging.Logger())

	// Load before serving so the first requests do not see 503. A failure
	// here is retried by the catalog service under the supervisor.
	if err := catalogService.Reload(ctx); err != nil {
		logging.Warn().Err(err).Msg("Initial catalog load failed, will retry")
	}

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS is configured with wildcard origin (CORS_ORIGINS=*). Set explicit origins in production.")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (RATE_LIMIT_DISABLED=true)")
	}

	handler := api.NewHandler(holder, catalogService, cfg)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(catalogService)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logging.Logger()))

	watchConfig()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The root supervisor returns once ctx is canceled and every service
	// has stopped or missed the shutdown timeout.
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
	if len(unstopped) > 0 {
		os.Exit(1)
	}
}

// watchConfig re-applies logging settings when the config file changes.
func watchConfig() {
	path := config.FilePath()
	if path == "" {
		return
	}
	err := config.WatchConfigFile(path, func() {
		next, err := config.Load()
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Ignoring invalid config change")
			return
		}
		logging.Init(next.Logging.LoggerConfig())
		logging.Info().Str("level", next.Logging.Level).Msg("Logging configuration reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
	}
}
