// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/skillmatch/internal/logging"
	"github.com/tomtom215/skillmatch/internal/metrics"
	"github.com/tomtom215/skillmatch/internal/recommend"
	"github.com/tomtom215/skillmatch/internal/recommender"
)

// Recommend handles POST /api/v1/recommend and POST /recommend
//
// @Summary Recommend assessments for a query
// @Description Ranks the catalog against a free-text query or job description and returns up to top_k assessments,
// @Description balanced between knowledge (K) and personality (P) tests.
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Query and options"
// @Success 200 {object} APIResponse{data=RecommendData} "Ranked assessments"
// @Failure 400 {object} APIResponse "Empty query or invalid request"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Failure 503 {object} APIResponse "No catalog loaded"
// @Failure 504 {object} APIResponse "Request timed out"
// @Router /api/v1/recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidJSON, "Invalid request body: "+err.Error(), nil)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		metrics.RecordRecommendation(time.Since(start), 0, true)
		respondError(w, http.StatusBadRequest, CodeEmptyQuery, ErrEmptyQuery.Error(), nil)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	rec, err := h.holder.Get()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, CodeNotReady, "Catalog not loaded", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	requestID := logging.RequestIDFromContext(r.Context())
	result, err := rec.Query(ctx, recommender.Query{
		Text:      req.Query,
		TopK:      h.resolveTopK(req.TopK),
		RequestID: requestID,
		TestTypes: req.TestType,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			respondError(w, http.StatusGatewayTimeout, CodeTimeout, "Recommendation timed out", err)
			return
		}
		respondError(w, http.StatusInternalServerError, CodeRecommendError, "Failed to generate recommendations", err)
		return
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(elapsed, len(result.Items), false)

	logging.Ctx(r.Context()).Debug().
		Int("results", len(result.Items)).
		Int("top_k", result.Metadata.TopK).
		Dur("duration", elapsed).
		Msg("Recommendation served")

	respondSuccess(w, r, http.StatusOK, RecommendData{
		RecommendedAssessments: result.Items,
	}, Metadata{
		RequestID:       requestID,
		QueryTimeMS:     elapsed.Milliseconds(),
		TotalCandidates: result.Metadata.CatalogSize,
	})
}

// resolveTopK applies the configured default when the request omits top_k
// and caps it at the configured maximum. The engine uses whatever it is
// given, so this is the only place either limit applies.
func (h *Handler) resolveTopK(topK int) int {
	defaults := recommend.DefaultConfig()
	def, maxK := defaults.DefaultTopK, defaults.MaxTopK
	if h.config != nil && h.config.Recommend.DefaultTopK > 0 {
		def = h.config.Recommend.DefaultTopK
		maxK = max(h.config.Recommend.MaxTopK, def)
	}
	if topK <= 0 {
		return def
	}
	return min(topK, maxK)
}
