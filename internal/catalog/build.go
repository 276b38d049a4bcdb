// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package catalog

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNilTable is returned by Build when given a nil table.
var ErrNilTable = errors.New("catalog: nil table")

// Table is schema-free tabular input: a header row and data rows.
// Rows may be shorter or longer than the header.
type Table struct {
	Header []string
	Rows   [][]string
}

var durationPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Build validates and normalizes t into a Catalog.
//
// The header is normalized with NormalizeColumn before the required
// columns are checked. When Test_Type is absent every record is given
// UnknownCategory. Duplicate URLs are dropped, first occurrence wins.
func Build(t *Table) (*Catalog, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	index := make(map[string]int, len(t.Header))
	for i, col := range NormalizeHeader(t.Header) {
		if col == "" {
			continue
		}
		if _, exists := index[col]; !exists {
			index[col] = i
		}
	}
	if err := checkRequired(index); err != nil {
		return nil, err
	}

	cell := func(row []string, col string) (string, bool) {
		i, ok := index[col]
		if !ok {
			return "", false
		}
		if i >= len(row) {
			return "", true
		}
		return cleanCell(row[i]), true
	}

	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		if isBlankRow(row) {
			continue
		}
		name, _ := cell(row, ColumnName)
		url, _ := cell(row, ColumnURL)

		category, ok := cell(row, ColumnTestType)
		if !ok || category == "" {
			category = UnknownCategory
		}

		rec := Record{
			Name:     name,
			URL:      url,
			Category: category,
		}
		rec.RemoteSupport, _ = cell(row, ColumnRemote)
		rec.AdaptiveSupport, _ = cell(row, ColumnAdaptive)
		rec.Description, _ = cell(row, ColumnDescription)
		if raw, _ := cell(row, ColumnDuration); raw != "" {
			rec.Duration = parseDuration(raw)
		}
		records = append(records, rec)
	}

	return New(records), nil
}

// parseDuration extracts the first number from text such as
// "Approximate Completion Time in minutes = 30".
func parseDuration(raw string) *float64 {
	m := durationPattern.FindString(raw)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &v
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
