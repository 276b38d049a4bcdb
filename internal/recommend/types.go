// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package recommend

import (
	"context"
	"sort"
	"time"

	"github.com/tomtom215/skillmatch/internal/catalog"
)

// ScoredRecord is a catalog record scored against one query.
// It is created per request and never shared between requests.
type ScoredRecord struct {
	// Record is the catalog record, unchanged.
	Record catalog.Record `json:"record"`

	// Score is the cosine similarity, finite, in [0,1], rounded to 4 decimals.
	Score float64 `json:"score"`

	// Category is the resolved category: the stored value when it names a
	// code, otherwise the inferred code or "-".
	Category string `json:"category"`
}

// Request is a recommendation request.
type Request struct {
	// Query is free text such as a job description.
	Query string `json:"query"`

	// TopK is the maximum number of results. Zero or negative returns none.
	TopK int `json:"top_k"`

	// RequestID is propagated to logs and response metadata.
	RequestID string `json:"request_id,omitempty"`
}

// Response holds ranked results and metadata.
type Response struct {
	// Items are sorted by score, descending, with unique URLs.
	Items []ScoredRecord `json:"items"`

	// TotalCandidates is the number of catalog records scored.
	TotalCandidates int `json:"total_candidates"`

	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID   string    `json:"request_id,omitempty"`
	TopK        int       `json:"top_k"`
	Rerankers   []string  `json:"rerankers,omitempty"`
	CatalogSize int       `json:"catalog_size"`
	EmptyQuery  bool      `json:"empty_query,omitempty"`
	LatencyMS   int64     `json:"latency_ms"`
	Timestamp   time.Time `json:"timestamp"`
}

// Reranker reorders or filters a ranked list.
type Reranker interface {
	// Name returns the reranker identifier.
	Name() string

	// Rerank receives items sorted by score, descending, and returns at most
	// k items. Implementations must not modify the input slice.
	Rerank(ctx context.Context, items []ScoredRecord, k int) []ScoredRecord
}

// Metrics are cumulative engine counters.
type Metrics struct {
	RequestCount    int64 `json:"request_count"`
	EmptyQueryCount int64 `json:"empty_query_count"`
	ErrorCount      int64 `json:"error_count"`
}

// SortByScore stable-sorts items by score, descending. Equal scores keep
// their relative order.
func SortByScore(items []ScoredRecord) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}
