// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package api

import (
	"net/http"
	"time"
)

// Health handles health check requests
//
// The process is healthy once it serves HTTP; catalog_loaded reports whether
// a recommender is installed.
//
// @Summary Get service health status
// @Description Returns "ok" with catalog size, load time and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status: "ok",
		Uptime: time.Since(h.startTime).Seconds(),
	}
	if rec := h.holder.Load(); rec != nil {
		loadedAt := rec.LoadedAt()
		status.CatalogLoaded = true
		status.CatalogRecords = rec.Catalog().Len()
		status.LoadedAt = &loadedAt
	}

	respondSuccess(w, r, http.StatusOK, status, Metadata{})
}
