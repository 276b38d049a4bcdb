// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package catalog

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	t.Parallel()

	input := "\ufeffAssessment_Name,Assessment_Url,Test_Type\n" +
		"\"Java 8 (New)\",https://example.com/java-8-new/,K\n" +
		"Ragged,https://example.com/ragged\n"

	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if table.Header[0] != "Assessment_Name" {
		t.Errorf("Header[0] = %q, BOM should be stripped", table.Header[0])
	}
	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if len(table.Rows[1]) != 2 {
		t.Errorf("ragged row length = %d, want 2", len(table.Rows[1]))
	}
}

func TestReadCSV_Empty(t *testing.T) {
	t.Parallel()

	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("ReadCSV(\"\") error = %v, want ErrEmptyTable", err)
	}
}

func TestWriteCSV_RoundTripThroughBuild(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteCSV(&buf, &Table{
		Header: []string{"Assessment_Name", "Assessment_Url", "Test_Type"},
		Rows:   [][]string{{"Python (New)", "https://example.com/python-new/", "K"}},
	})
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	table, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	cat, err := Build(table)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cat.Len() != 1 || cat.At(0).Name != "Python (New)" {
		t.Errorf("unexpected catalog %+v", cat.Records())
	}
}
