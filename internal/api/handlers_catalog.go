// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/skillmatch/internal/logging"
)

// CatalogStats handles GET /api/v1/catalog
//
// @Summary Get catalog statistics
// @Description Returns record count, vocabulary size, source version and load time of the served catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=CatalogStats} "Catalog statistics"
// @Failure 503 {object} APIResponse "No catalog loaded"
// @Router /api/v1/catalog [get]
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	rec, err := h.holder.Get()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, CodeNotReady, "Catalog not loaded", nil)
		return
	}

	engine := rec.Engine()
	respondSuccess(w, r, http.StatusOK, CatalogStats{
		Records:        rec.Catalog().Len(),
		VocabularySize: engine.VocabularySize(),
		Version:        string(rec.Version()),
		LoadedAt:       rec.LoadedAt(),
		Rerankers:      engine.Rerankers(),
	}, Metadata{})
}

// ReloadCatalog handles POST /api/v1/catalog/reload
//
// @Summary Reload the catalog
// @Description Re-reads the catalog source and swaps in a new recommender. The previous catalog keeps serving if the reload fails.
// @Tags Catalog
// @Produce json
// @Success 202 {object} APIResponse{data=CatalogStats} "Catalog reloaded"
// @Failure 500 {object} APIResponse "Reload failed"
// @Failure 501 {object} APIResponse "Reload not available"
// @Router /api/v1/catalog/reload [post]
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if h.reloader == nil {
		respondError(w, http.StatusNotImplemented, CodeNotImplemented, ErrReloadUnavailable.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.reloader.Reload(ctx); err != nil {
		respondError(w, http.StatusInternalServerError, CodeReloadError, "Catalog reload failed: "+err.Error(), err)
		return
	}

	logging.Ctx(r.Context()).Info().Msg("Catalog reloaded via API")

	rec, err := h.holder.Get()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, CodeNotReady, "Catalog not loaded", err)
		return
	}
	respondSuccess(w, r, http.StatusAccepted, CatalogStats{
		Records:        rec.Catalog().Len(),
		VocabularySize: rec.Engine().VocabularySize(),
		Version:        string(rec.Version()),
		LoadedAt:       rec.LoadedAt(),
		Rerankers:      rec.Engine().Rerankers(),
	}, Metadata{})
}
