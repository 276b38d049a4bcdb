// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package reranking

import (
	"context"
	"strings"

	"github.com/tomtom215/skillmatch/internal/recommend"
	"github.com/tomtom215/skillmatch/internal/recommend/category"
)

// Balance implements the two-quota diversity reranker.
type Balance struct {
	primary   string
	secondary string
}

// NewBalance creates a Balance for the given category codes. Codes are
// upper-cased here; resolved categories are matched against them
// case-sensitively, so a stored "k" lands in the remainder bucket.
func NewBalance(primary, secondary string) *Balance {
	return &Balance{primary: strings.ToUpper(primary), secondary: strings.ToUpper(secondary)}
}

// Name returns the reranker identifier.
func (b *Balance) Name() string {
	return "kp_balance"
}

// Rerank applies the quotas to items, which must be sorted by score.
func (b *Balance) Rerank(_ context.Context, items []recommend.ScoredRecord, k int) []recommend.ScoredRecord {
	if k <= 0 || len(items) == 0 {
		return []recommend.ScoredRecord{}
	}
	half := k / 2

	prim := b.take(items, half, func(c string) bool { return category.Contains(c, b.primary) })
	sec := b.take(items, half, func(c string) bool { return category.Contains(c, b.secondary) })
	rest := b.take(items, max(0, k-len(prim)-len(sec)), func(c string) bool {
		return !category.Contains(c, b.primary) && !category.Contains(c, b.secondary)
	})

	combined := make([]recommend.ScoredRecord, 0, len(prim)+len(sec)+len(rest))
	seen := make(map[string]struct{}, cap(combined))
	for _, group := range [][]recommend.ScoredRecord{prim, sec, rest} {
		for _, it := range group {
			if _, dup := seen[it.Record.URL]; dup {
				continue
			}
			seen[it.Record.URL] = struct{}{}
			combined = append(combined, it)
		}
	}

	recommend.SortByScore(combined)
	if len(combined) > k {
		combined = combined[:k]
	}
	return combined
}

// take returns copies of the first n items whose category satisfies match.
func (b *Balance) take(items []recommend.ScoredRecord, n int, match func(string) bool) []recommend.ScoredRecord {
	if n <= 0 {
		return nil
	}
	out := make([]recommend.ScoredRecord, 0, n)
	for _, it := range items {
		if !match(it.Category) {
			continue
		}
		out = append(out, it)
		if len(out) == n {
			break
		}
	}
	return out
}

var _ recommend.Reranker = (*Balance)(nil)
