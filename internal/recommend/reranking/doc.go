// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package reranking provides post-scoring rerankers for the recommend engine.
//
// # Diversity Balance
//
// Balance guarantees representation for two category codes, by default
// K (knowledge and skills) and P (personality and behaviour). For a result
// size k with half = k/2:
//
//  1. the first half items whose category contains the primary code,
//  2. the first half items whose category contains the secondary code,
//  3. the first k - |1| - |2| items containing neither (never negative),
//
// are taken independently from the full score-sorted list, concatenated
// in that order, deduplicated by URL keeping the first occurrence,
// stable-sorted by score and truncated to k.
//
// A record whose category names both codes, such as "K, P", is eligible for
// both quotas in the same call; the duplicate is removed by URL.
//
// Rerankers never modify their input slice.
package reranking
