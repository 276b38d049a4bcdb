// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package render turns scored records into client-facing results.
package render

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/tomtom215/skillmatch/internal/recommend"
	"github.com/tomtom215/skillmatch/internal/recommend/category"
)

// FallbackName is used when neither the URL nor the record yield a name.
const FallbackName = "SHL Assessment"

// NotAvailable is the default for absent support flags.
const NotAvailable = "-"

var (
	separatorPattern = regexp.MustCompile(`[-_]+`)
	newWordPattern   = regexp.MustCompile(`\bNew\b`)
)

// ClientRecord is one recommendation as returned to clients.
type ClientRecord struct {
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	TestType      []string `json:"test_type"`
	RemoteTesting string   `json:"remote_testing"`
	AdaptiveIRT   string   `json:"adaptive_irt"`
	Description   string   `json:"description,omitempty"`
	Duration      *float64 `json:"duration,omitempty"`
	Score         float64  `json:"score"`
}

// Render converts a scored record.
//
//nolint:gocritic // hugeParam: ScoredRecord passed by value for immutability
func Render(r recommend.ScoredRecord) ClientRecord {
	return ClientRecord{
		Name:          DisplayName(r.Record.URL, r.Record.Name),
		URL:           r.Record.URL,
		TestType:      category.Split(r.Category),
		RemoteTesting: orDefault(r.Record.RemoteSupport),
		AdaptiveIRT:   orDefault(r.Record.AdaptiveSupport),
		Description:   r.Record.Description,
		Duration:      r.Record.Duration,
		Score:         r.Score,
	}
}

// RenderAll converts items in order.
func RenderAll(items []recommend.ScoredRecord) []ClientRecord {
	out := make([]ClientRecord, len(items))
	for i := range items {
		out[i] = Render(items[i])
	}
	return out
}

// DisplayName derives a readable name from the last path segment of rawURL,
// falling back to storedName and then FallbackName.
func DisplayName(rawURL, storedName string) string {
	if name := nameFromURL(rawURL); name != "" && !strings.EqualFold(name, "nan") {
		return name
	}
	if s := strings.TrimSpace(storedName); s != "" && !strings.EqualFold(s, "nan") {
		return s
	}
	return FallbackName
}

func nameFromURL(rawURL string) string {
	decoded, err := url.PathUnescape(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	decoded = strings.TrimRight(decoded, "/")
	segment := decoded[strings.LastIndex(decoded, "/")+1:]

	segment = strings.TrimSpace(separatorPattern.ReplaceAllString(segment, " "))
	if segment == "" {
		return ""
	}
	return newWordPattern.ReplaceAllString(titleCase(segment), "– New")
}

// titleCase upper-cases every cased letter that does not follow another
// cased letter and lower-cases the rest, so "opq32r" becomes "Opq32R" and
// "3d" becomes "3D".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && prevCased:
			r = unicode.ToLower(r)
		case cased:
			r = unicode.ToTitle(r)
		}
		b.WriteRune(r)
		prevCased = cased
	}
	return b.String()
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}
