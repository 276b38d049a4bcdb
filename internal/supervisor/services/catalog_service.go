// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/metrics"
	"github.com/tomtom215/skillmatch/internal/recommend"
	"github.com/tomtom215/skillmatch/internal/recommender"
)

// defaultLoadTimeout bounds a single catalog load and index build.
const defaultLoadTimeout = 2 * time.Minute

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	// ReloadInterval is how often the source version is polled.
	// Zero disables polling; Reload still works.
	ReloadInterval time.Duration

	// LoadTimeout bounds each load. Default: 2m.
	LoadTimeout time.Duration

	// Recommend configures every recommender the service builds.
	Recommend *recommend.Config
}

// CatalogService keeps the served recommender in step with the catalog
// source.
//
// On start it loads the catalog if the holder is empty. It then polls
// Source.Stat and rebuilds when the version changes. A failed rebuild keeps
// the previous recommender serving.
type CatalogService struct {
	source catalog.Source
	holder *recommender.Holder
	config CatalogServiceConfig
	logger zerolog.Logger
	name   string

	// mu serializes reloads from the poll loop and the API.
	mu      sync.Mutex
	version catalog.Version
}

// NewCatalogService creates a catalog service publishing into holder.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(src catalog.Source, holder *recommender.Holder, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = defaultLoadTimeout
	}
	s := &CatalogService{
		source: src,
		holder: holder,
		config: cfg,
		logger: logger.With().Str("service", "catalog").Logger(),
		name:   "catalog-service",
	}
	if current := holder.Load(); current != nil {
		s.version = current.Version()
	}
	return s
}

// Serve implements the suture.Service interface.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("source", s.source.String()).
		Dur("reload_interval", s.config.ReloadInterval).
		Msg("catalog service starting")

	if s.holder.Load() == nil {
		if err := s.Reload(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial catalog load failed (will retry on schedule)")
		}
	}

	if s.config.ReloadInterval <= 0 {
		<-ctx.Done()
		s.logger.Info().Msg("catalog service shutting down")
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.ReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.checkForChanges(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled catalog reload failed")
			}
		}
	}
}

// checkForChanges reloads when the source version differs from the served one.
func (s *CatalogService) checkForChanges(ctx context.Context) error {
	statCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()

	v, err := s.source.Stat(statCtx)
	if err != nil {
		metrics.RecordCatalogReload(metrics.ReloadError)
		return fmt.Errorf("stat %s: %w", s.source, err)
	}

	if v == s.Version() && s.holder.Load() != nil {
		metrics.RecordCatalogReload(metrics.ReloadUnchanged)
		return nil
	}

	s.logger.Info().Str("from", string(s.Version())).Str("to", string(v)).Msg("catalog version changed")
	return s.Reload(ctx)
}

// Reload loads the catalog, builds a recommender and installs it.
func (s *CatalogService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()

	start := time.Now()
	cat, version, err := catalog.Load(loadCtx, s.source)
	if err != nil {
		metrics.RecordCatalogReload(metrics.ReloadError)
		return err
	}

	rec, err := recommender.New(cat, s.config.Recommend, s.logger)
	if err != nil {
		metrics.RecordCatalogReload(metrics.ReloadError)
		return fmt.Errorf("build recommender: %w", err)
	}
	rec = rec.WithVersion(version)

	s.holder.Swap(rec)
	s.version = version

	metrics.RecordCatalogLoad(cat.Len(), rec.Engine().VocabularySize())
	metrics.RecordCatalogReload(metrics.ReloadSuccess)

	s.logger.Info().
		Int("records", cat.Len()).
		Int("vocabulary", rec.Engine().VocabularySize()).
		Str("version", string(version)).
		Dur("duration", time.Since(start)).
		Msg("catalog loaded")

	return nil
}

// Version returns the version of the served catalog.
func (s *CatalogService) Version() catalog.Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// String returns the service name for logging.
func (s *CatalogService) String() string {
	return s.name
}
