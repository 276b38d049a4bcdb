// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package evaluate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/recommend/render"
)

// Labeled set column names after catalog.NormalizeColumn.
const (
	ColumnQuery = "Query"
	ColumnURL   = catalog.ColumnURL
	ColumnName  = catalog.ColumnName
)

var (
	// ErrMissingColumns is returned when the labeled set lacks Query or
	// Assessment_url.
	ErrMissingColumns = errors.New("labeled set must have Query and Assessment_url columns")

	// ErrNoQueryColumn is returned when a query file has no Query column.
	ErrNoQueryColumn = errors.New("query file must have a Query column")
)

// Labeled is one (query, relevant URL) pair.
type Labeled struct {
	Query string
	URL   string

	// Name is the assessment name when the set carries one.
	Name string
}

// LoadLabeled reads a labeled CSV. Header names are normalized, so
// "query", "Assessment_url" and "assessment url" are all accepted.
// Rows with an empty query or URL are dropped.
func LoadLabeled(r io.Reader) ([]Labeled, error) {
	table, err := catalog.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("read labeled set: %w", err)
	}

	queryCol, urlCol, nameCol := -1, -1, -1
	for i, col := range catalog.NormalizeHeader(table.Header) {
		switch col {
		case ColumnQuery:
			if queryCol < 0 {
				queryCol = i
			}
		case ColumnURL:
			if urlCol < 0 {
				urlCol = i
			}
		case ColumnName:
			if nameCol < 0 {
				nameCol = i
			}
		}
	}
	if queryCol < 0 || urlCol < 0 {
		return nil, ErrMissingColumns
	}

	out := make([]Labeled, 0, len(table.Rows))
	for _, row := range table.Rows {
		l := Labeled{
			Query: strings.TrimSpace(cell(row, queryCol)),
			URL:   strings.TrimSpace(cell(row, urlCol)),
			Name:  strings.TrimSpace(cell(row, nameCol)),
		}
		if l.Query == "" || l.URL == "" {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// LoadQueries reads the distinct non-empty values of the Query column, in
// file order. Other columns are ignored.
func LoadQueries(r io.Reader) ([]string, error) {
	table, err := catalog.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}
	col := -1
	for i, name := range catalog.NormalizeHeader(table.Header) {
		if name == ColumnQuery {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, ErrNoQueryColumn
	}

	pairs := make([]Labeled, 0, len(table.Rows))
	for _, row := range table.Rows {
		if q := strings.TrimSpace(cell(row, col)); q != "" {
			pairs = append(pairs, Labeled{Query: q})
		}
	}
	return Queries(pairs), nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Queries returns the distinct queries in first-seen order.
func Queries(pairs []Labeled) []string {
	seen := make(map[string]struct{}, len(pairs))
	var out []string
	for _, p := range pairs {
		if _, ok := seen[p.Query]; ok {
			continue
		}
		seen[p.Query] = struct{}{}
		out = append(out, p.Query)
	}
	return out
}

// CatalogFromLabeled builds a catalog of the labeled URLs, first occurrence
// wins. Records without a name get one derived from the URL slug, so the
// index has text to match. Categories are left for inference.
func CatalogFromLabeled(pairs []Labeled) *catalog.Catalog {
	records := make([]catalog.Record, 0, len(pairs))
	for _, p := range pairs {
		name := p.Name
		if name == "" {
			name = render.DisplayName(p.URL, "")
		}
		records = append(records, catalog.Record{
			Name:     name,
			URL:      p.URL,
			Category: catalog.UnknownCategory,
		})
	}
	return catalog.New(records)
}
