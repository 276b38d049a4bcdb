// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package evaluate measures recommendation quality against a labeled set of
// (query, relevant assessment URL) pairs and writes submission files.
//
// Recall@K is |set(top K predicted) ∩ set(relevant)| / |relevant|. URLs are
// compared trimmed and lower-cased. By default all rows sharing a query
// form one relevant set; Options.PerRow scores every row on its own with a
// single relevant URL.
package evaluate
