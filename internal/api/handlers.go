// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/skillmatch/internal/config"
	"github.com/tomtom215/skillmatch/internal/recommender"
)

// defaultRequestTimeout applies when the configuration leaves it unset.
const defaultRequestTimeout = 30 * time.Second

// Reloader forces a catalog rebuild. The catalog service implements it.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and decoding helpers
//   - handlers_health.go: health endpoints
//   - handlers_recommend.go: recommendation endpoints
//   - handlers_catalog.go: catalog statistics and reload
type Handler struct {
	holder    *recommender.Holder
	reloader  Reloader
	config    *config.Config
	timeout   time.Duration
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// reloader may be nil, in which case POST /api/v1/catalog/reload answers 501.
//
// Example:
//
//	handler := api.NewHandler(holder, catalogService, cfg)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(holder *recommender.Holder, reloader Reloader, cfg *config.Config) *Handler {
	timeout := defaultRequestTimeout
	if cfg != nil && cfg.Server.Timeout > 0 {
		timeout = cfg.Server.Timeout
	}
	if holder == nil {
		holder = recommender.NewHolder(nil)
	}
	return &Handler{
		holder:    holder,
		reloader:  reloader,
		config:    cfg,
		timeout:   timeout,
		startTime: time.Now(),
	}
}
