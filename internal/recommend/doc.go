// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package recommend implements the ranking engine for assessment
// recommendations.
//
// # Pipeline
//
// A Recommend call runs entirely in memory:
//
//  1. The query is transformed into the catalog's TF-IDF space (textindex).
//  2. Every record is scored by cosine similarity, rounded to 4 decimals.
//  3. Each record's category is resolved (category), on a request-scoped copy.
//  4. Records are stable-sorted by score, descending.
//  5. Registered rerankers run in order; the production chain is the
//     K/P diversity balance from the reranking package.
//  6. The list is truncated to top_k.
//
// # Determinism
//
// Recommend is a pure function of (catalog, query, top_k). Ties keep catalog
// order through the stable sort, so identical calls yield identical output.
//
// # Thread Safety
//
// The engine never mutates its catalog or index after NewEngine. Rerankers
// should be registered before the engine is shared; Recommend may then be
// called from any number of goroutines. A catalog change is served by a new
// engine, never by editing this one.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), logger)
//	engine.RegisterReranker(reranking.NewBalance("K", "P"))
//	resp, err := engine.Recommend(ctx, recommend.Request{Query: q, TopK: 10})
package recommend
