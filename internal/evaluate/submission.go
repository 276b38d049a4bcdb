// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package evaluate

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM prefixes submission files so spreadsheet tools detect UTF-8.
const utf8BOM = "\ufeff"

// SubmissionHeader is the header row of a submission file.
var SubmissionHeader = []string{"Query", "Assessment_Url"}

// SubmissionRow is one predicted (query, URL) pair.
type SubmissionRow struct {
	Query string
	URL   string
}

// Submission collects the top k recommendations for every query, in query
// order then rank order.
func Submission(ctx context.Context, rec Recommender, queries []string, k int) ([]SubmissionRow, error) {
	if k <= 0 {
		k = DefaultK
	}
	var rows []SubmissionRow
	for _, q := range queries {
		items, err := rec.Recommend(ctx, q, k)
		if err != nil {
			return nil, fmt.Errorf("recommend %q: %w", q, err)
		}
		for i := range items {
			rows = append(rows, SubmissionRow{Query: q, URL: items[i].URL})
		}
	}
	return rows, nil
}

// WriteSubmission writes rows as a BOM-prefixed CSV.
func WriteSubmission(w io.Writer, rows []SubmissionRow) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	records := make([][]string, 0, len(rows)+1)
	records = append(records, SubmissionHeader)
	for _, r := range rows {
		records = append(records, []string{r.Query, r.URL})
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write submission: %w", err)
	}
	return nil
}
