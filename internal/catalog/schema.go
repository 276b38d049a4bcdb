// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalized column names.
const (
	ColumnName        = "Assessment_Name"
	ColumnURL         = "Assessment_Url"
	ColumnTestType    = "Test_Type"
	ColumnRemote      = "Remote_Testing"
	ColumnAdaptive    = "Adaptive_Irt"
	ColumnDescription = "Description"
	ColumnDuration    = "Duration"
)

// RequiredColumns must be present in every catalog table.
var RequiredColumns = []string{ColumnName, ColumnURL}

// ErrSchema is matched by every *SchemaError via errors.Is.
var ErrSchema = errors.New("catalog schema error")

// SchemaError reports required columns missing from a catalog table.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// Is makes errors.Is(err, ErrSchema) succeed for schema errors.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NormalizeColumn trims name, joins words with "_" and title-cases each part.
func NormalizeColumn(name string) string {
	name = strings.ReplaceAll(cleanCell(name), " ", "_")
	if name == "" {
		return ""
	}
	caser := cases.Title(language.Und)
	parts := strings.Split(name, "_")
	for i, p := range parts {
		parts[i] = caser.String(p)
	}
	return strings.Join(parts, "_")
}

// NormalizeHeader applies NormalizeColumn to every header cell.
func NormalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = NormalizeColumn(h)
	}
	return out
}

// checkRequired returns a *SchemaError when any required column is absent
// from the normalized column index.
func checkRequired(index map[string]int) error {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
