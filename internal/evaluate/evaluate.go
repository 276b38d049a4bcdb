// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package evaluate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/skillmatch/internal/logging"
	"github.com/tomtom215/skillmatch/internal/recommend/render"
)

// DefaultK is the cutoff used when K is not positive.
const DefaultK = 10

// Recommender is the query side of a recommender.
type Recommender interface {
	Recommend(ctx context.Context, query string, topK int) ([]render.ClientRecord, error)
}

// Options tunes Run.
type Options struct {
	// PerRow scores each labeled row with its single URL instead of
	// grouping rows by query.
	PerRow bool
}

// QueryResult is the outcome for one query (or one row with PerRow).
type QueryResult struct {
	Query     string
	Relevant  []string
	Predicted []string
	Hits      int
	Recall    float64
}

// Report summarizes an evaluation run.
type Report struct {
	K          int
	Results    []QueryResult
	MeanRecall float64
}

// NormalizeURL trims and lower-cases a URL for comparison.
func NormalizeURL(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// RecallAtK returns the share of relevant URLs found in the first k
// predictions. Both sides are compared as sets. It returns 0 when relevant
// is empty or k is not positive.
func RecallAtK(predicted, relevant []string, k int) float64 {
	hits, total := countHits(predicted, relevant, k)
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// countHits returns the matches within the first k predictions and the
// number of distinct relevant URLs.
func countHits(predicted, relevant []string, k int) (hits, total int) {
	rel := urlSet(relevant)
	if len(rel) == 0 || k <= 0 {
		return 0, len(rel)
	}
	if k > len(predicted) {
		k = len(predicted)
	}
	for u := range urlSet(predicted[:k]) {
		if _, ok := rel[u]; ok {
			hits++
		}
	}
	return hits, len(rel)
}

func urlSet(urls []string) map[string]struct{} {
	set := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if n := NormalizeURL(u); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

type group struct {
	query    string
	relevant []string
}

func groupPairs(pairs []Labeled, perRow bool) []group {
	if perRow {
		out := make([]group, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, group{query: p.Query, relevant: []string{p.URL}})
		}
		return out
	}

	pos := make(map[string]int)
	var out []group
	for _, p := range pairs {
		i, ok := pos[p.Query]
		if !ok {
			i = len(out)
			pos[p.Query] = i
			out = append(out, group{query: p.Query})
		}
		out[i].relevant = append(out[i].relevant, p.URL)
	}
	return out
}

// Run queries rec for every labeled query and computes Recall@k. A k that
// is not positive uses DefaultK. A recommender error stops the run.
func Run(ctx context.Context, rec Recommender, pairs []Labeled, k int, opts Options) (*Report, error) {
	if rec == nil {
		return nil, errors.New("evaluate: nil recommender")
	}
	if k <= 0 {
		k = DefaultK
	}

	logger := logging.Ctx(ctx)
	report := &Report{K: k}
	var sum float64

	for _, g := range groupPairs(pairs, opts.PerRow) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, err := rec.Recommend(ctx, g.query, k)
		if err != nil {
			return nil, fmt.Errorf("recommend %q: %w", g.query, err)
		}

		predicted := make([]string, 0, len(items))
		for i := range items {
			predicted = append(predicted, items[i].URL)
		}

		hits, total := countHits(predicted, g.relevant, k)
		var recall float64
		if total > 0 {
			recall = float64(hits) / float64(total)
		}
		result := QueryResult{
			Query:     g.query,
			Relevant:  g.relevant,
			Predicted: predicted,
			Hits:      hits,
			Recall:    recall,
		}
		report.Results = append(report.Results, result)
		sum += recall

		logger.Debug().
			Str("query", g.query).
			Int("hits", result.Hits).
			Float64("recall", recall).
			Msg("Evaluated query")
	}

	if n := len(report.Results); n > 0 {
		report.MeanRecall = sum / float64(n)
	}
	return report, nil
}
