// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/recommend/category"
	"github.com/tomtom215/skillmatch/internal/recommend/textindex"
)

// ErrNilCatalog is returned by NewEngine when no catalog is given.
var ErrNilCatalog = errors.New("recommend: nil catalog")

// Engine scores a fixed catalog against queries. It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
	index   *textindex.Index

	rerankers []Reranker
	rrMu      sync.RWMutex

	requestCount    atomic.Int64
	emptyQueryCount atomic.Int64
	errorCount      atomic.Int64
}

// NewEngine validates cfg and fits the text index over the catalog names.
// A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	index := textindex.Fit(cat.Names())

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
		index:   index,
	}
	e.logger.Debug().
		Int("records", cat.Len()).
		Int("vocabulary", index.VocabularySize()).
		Dur("fit_time", time.Since(start)).
		Msg("text index fitted")
	return e, nil
}

// RegisterReranker appends rr to the post-processing chain.
func (e *Engine) RegisterReranker(rr Reranker) {
	e.rrMu.Lock()
	defer e.rrMu.Unlock()

	e.rerankers = append(e.rerankers, rr)
	e.logger.Debug().Str("reranker", rr.Name()).Msg("registered reranker")
}

// Rerankers returns the names of the registered rerankers, in order.
func (e *Engine) Rerankers() []string {
	e.rrMu.RLock()
	defer e.rrMu.RUnlock()

	names := make([]string, len(e.rerankers))
	for i, rr := range e.rerankers {
		names[i] = rr.Name()
	}
	return names
}

// ScoreAll scores every catalog record against query, in catalog order.
// The returned slice is freshly allocated and owned by the caller.
func (e *Engine) ScoreAll(query string) []ScoredRecord {
	scores := e.index.Similarity(e.index.Transform(query))

	out := make([]ScoredRecord, e.catalog.Len())
	for i := range out {
		rec := e.catalog.At(i)
		out[i] = ScoredRecord{
			Record:   rec,
			Score:    normalizeScore(scores[i]),
			Category: category.Resolve(rec.Category, rec.URL, rec.Name),
		}
	}
	return out
}

// Recommend returns at most TopK records ranked for req.Query. TopK is used
// as given: zero or negative yields an empty result, and no upper cap is
// applied. An empty or whitespace-only query also yields an empty result and
// no error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	logger := e.logger.With().Str("request_id", req.RequestID).Int("top_k", req.TopK).Logger()

	if strings.TrimSpace(req.Query) == "" {
		e.emptyQueryCount.Add(1)
		logger.Debug().Msg("empty query")
		resp := e.buildResponse(req, []ScoredRecord{}, start)
		resp.Metadata.EmptyQuery = true
		return resp, nil
	}

	if req.TopK <= 0 {
		logger.Debug().Msg("non-positive top_k")
		return e.buildResponse(req, []ScoredRecord{}, start), nil
	}

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("recommend: %w", err)
	}

	items := e.ScoreAll(req.Query)
	SortByScore(items)
	items = e.applyRerankers(ctx, items, req.TopK)
	if len(items) > req.TopK {
		items = items[:req.TopK]
	}

	resp := e.buildResponse(req, items, start)
	logger.Debug().
		Int("candidates", resp.TotalCandidates).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")
	return resp, nil
}

func (e *Engine) applyRerankers(ctx context.Context, items []ScoredRecord, k int) []ScoredRecord {
	e.rrMu.RLock()
	rerankers := e.rerankers
	e.rrMu.RUnlock()

	for _, rr := range rerankers {
		items = rr.Rerank(ctx, items, k)
	}
	return items
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponse(req Request, items []ScoredRecord, start time.Time) *Response {
	return &Response{
		Items:           items,
		TotalCandidates: e.catalog.Len(),
		Metadata: ResponseMetadata{
			RequestID:   req.RequestID,
			TopK:        req.TopK,
			Rerankers:   e.Rerankers(),
			CatalogSize: e.catalog.Len(),
			LatencyMS:   time.Since(start).Milliseconds(),
			Timestamp:   time.Now(),
		},
	}
}

// Catalog returns the catalog the engine was built over.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// VocabularySize returns the number of indexed terms.
func (e *Engine) VocabularySize() int {
	return e.index.VocabularySize()
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// GetMetrics returns the cumulative counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount:    e.requestCount.Load(),
		EmptyQueryCount: e.emptyQueryCount.Load(),
		ErrorCount:      e.errorCount.Load(),
	}
}

// normalizeScore maps non-finite values to 0, clamps to [0,1] and rounds
// to 4 decimal places.
func normalizeScore(s float64) float64 {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0
	}
	if s > 1 {
		s = 1
	}
	return math.Round(s*1e4) / 1e4
}
