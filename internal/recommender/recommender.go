// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package recommender assembles the ranking engine, the diversity balance and
// the result formatter into the single query surface used by the HTTP API,
// the evaluation tool and the terminal UI.
//
// A Recommender is immutable. Catalog changes are served by building a new
// Recommender and installing it in a Holder.
package recommender

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/recommend"
	"github.com/tomtom215/skillmatch/internal/recommend/render"
	"github.com/tomtom215/skillmatch/internal/recommend/reranking"
)

// Query is a recommendation request.
type Query struct {
	Text      string
	TopK      int
	RequestID string

	// TestTypes, when non-empty, keeps only results carrying at least one
	// of these codes. It is applied after ranking.
	TestTypes []string
}

// Result is a rendered recommendation list with its engine metadata.
type Result struct {
	Items    []render.ClientRecord      `json:"items"`
	Metadata recommend.ResponseMetadata `json:"metadata"`
}

// Recommender answers queries against one catalog snapshot.
type Recommender struct {
	engine   *recommend.Engine
	version  catalog.Version
	loadedAt time.Time
}

// New builds a Recommender over cat with the balance reranker registered.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cat *catalog.Catalog, cfg *recommend.Config, logger zerolog.Logger) (*Recommender, error) {
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	engine, err := recommend.NewEngine(cat, cfg, logger)
	if err != nil {
		return nil, err
	}
	engine.RegisterReranker(reranking.NewBalance(cfg.PrimaryCode, cfg.SecondaryCode))

	return &Recommender{engine: engine, loadedAt: time.Now()}, nil
}

// WithVersion returns a copy of r tagged with the catalog version it serves.
func (r *Recommender) WithVersion(v catalog.Version) *Recommender {
	clone := *r
	clone.version = v
	return &clone
}

// Recommend returns up to topK rendered records for query. An empty query
// or a topK of zero or less returns an empty slice.
func (r *Recommender) Recommend(ctx context.Context, query string, topK int) ([]render.ClientRecord, error) {
	res, err := r.Query(ctx, Query{Text: query, TopK: topK})
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

// Query runs q and returns rendered items with metadata.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (r *Recommender) Query(ctx context.Context, q Query) (*Result, error) {
	resp, err := r.engine.Recommend(ctx, recommend.Request{
		Query:     q.Text,
		TopK:      q.TopK,
		RequestID: q.RequestID,
	})
	if err != nil {
		return nil, err
	}

	items := render.RenderAll(resp.Items)
	if len(q.TestTypes) > 0 {
		items = FilterCodes(items, q.TestTypes)
	}
	return &Result{Items: items, Metadata: resp.Metadata}, nil
}

// Catalog returns the served catalog.
func (r *Recommender) Catalog() *catalog.Catalog {
	return r.engine.Catalog()
}

// Engine exposes the underlying engine for metrics and diagnostics.
func (r *Recommender) Engine() *recommend.Engine {
	return r.engine
}

// Version returns the catalog version, empty when unknown.
func (r *Recommender) Version() catalog.Version {
	return r.version
}

// LoadedAt returns when the recommender was built.
func (r *Recommender) LoadedAt() time.Time {
	return r.loadedAt
}

// FilterCodes keeps items whose test types include any of codes,
// case-insensitively.
func FilterCodes(items []render.ClientRecord, codes []string) []render.ClientRecord {
	want := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			want[c] = struct{}{}
		}
	}
	if len(want) == 0 {
		return items
	}

	out := make([]render.ClientRecord, 0, len(items))
	for i := range items {
		for _, tt := range items[i].TestType {
			if _, ok := want[strings.ToUpper(tt)]; ok {
				out = append(out, items[i])
				break
			}
		}
	}
	return out
}
