// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package api

import (
	"time"

	"github.com/tomtom215/skillmatch/internal/recommend/render"
)

// APIResponse is the standard envelope for every JSON response.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: server time when the response was generated
//   - RequestID: the X-Request-ID of the request
//   - QueryTimeMS: ranking time in milliseconds
//   - TotalCandidates: catalog records scored for the query
type Metadata struct {
	Timestamp       time.Time `json:"timestamp"`
	RequestID       string    `json:"request_id,omitempty"`
	QueryTimeMS     int64     `json:"query_time_ms,omitempty"`
	TotalCandidates int       `json:"total_candidates,omitempty"`
}

// APIError is a structured error payload.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendRequest is the body of POST /api/v1/recommend.
type RecommendRequest struct {
	Query    string   `json:"query" validate:"max=10000" example:"Java developer who can collaborate with business teams"`
	TopK     int      `json:"top_k" validate:"omitempty,min=1,max=100" example:"10"`
	TestType []string `json:"test_type,omitempty" validate:"omitempty,max=8,dive,testcode" example:"K"`
}

// RecommendData is the data payload of a recommendation response.
type RecommendData struct {
	RecommendedAssessments []render.ClientRecord `json:"recommended_assessments"`
}

// HealthStatus is the data payload of the health endpoints.
type HealthStatus struct {
	Status         string     `json:"status"`
	CatalogLoaded  bool       `json:"catalog_loaded"`
	CatalogRecords int        `json:"catalog_records"`
	LoadedAt       *time.Time `json:"loaded_at,omitempty"`
	Uptime         float64    `json:"uptime_seconds"`
}

// CatalogStats is the data payload of GET /api/v1/catalog.
type CatalogStats struct {
	Records        int       `json:"records"`
	VocabularySize int       `json:"vocabulary_size"`
	Version        string    `json:"version,omitempty"`
	LoadedAt       time.Time `json:"loaded_at"`
	Rerankers      []string  `json:"rerankers"`
}
