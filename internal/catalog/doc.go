// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package catalog holds the validated, in-memory table of assessment records
// that the recommender indexes.
//
// # Input
//
// Catalogs arrive as schema-free tables (typically CSV exports of the product
// catalog). Column names are normalized once at the boundary:
//
//	" assessment name " -> "Assessment_Name"
//	"Assessment_url"    -> "Assessment_Url"
//	"Adaptive_IRT"      -> "Adaptive_Irt"
//
// Assessment_Name and Assessment_Url are required; every other column is
// optional. A table without them fails with a *SchemaError.
//
// # Identity
//
// The URL is the record identity. Duplicate URLs are dropped during Build and
// the first occurrence wins.
//
// # Immutability
//
// A Catalog is never modified after Build. Reloading produces a new Catalog;
// callers swap whole instances rather than editing records in place.
//
// # Sources
//
// Source abstracts where the CSV lives. FileSource reads the local
// filesystem; S3Source reads an S3-compatible bucket. Both report a Version
// token so the reload service can detect changes without re-reading.
package catalog
