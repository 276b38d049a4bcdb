// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package category resolves assessment category codes.
//
// A stored category is trusted when it already names one of the codes
// A, B, C, D, E, K, P or S. Otherwise the code is inferred from keywords in
// the record's URL and name using an ordered table; the first code in table
// order with any matching keyword wins. Nothing here caches: resolution is a
// pure function called once per record per request.
package category

import (
	"strings"
)

// Unresolved is returned when no keyword matches.
const Unresolved = "-"

// Codes recognised in stored categories, in tie-break order.
const Codes = "ABCDEKPS"

// Rule maps one category code to its keywords.
type Rule struct {
	Code     string
	Keywords []string
}

// Rules is the ordered keyword table. Order is significant: when keywords
// from several codes match, the earliest rule wins.
var Rules = []Rule{
	{"A", []string{"aptitude", "ability", "numerical", "verbal", "reasoning", "logic", "analytical"}},
	{"B", []string{"situational", "judgement", "judgment", "biodata", "scenario", "context"}},
	{"C", []string{"competency", "competencies", "skills profile", "behavioral competency"}},
	{"D", []string{"development", "360", "feedback", "growth", "coach", "learning"}},
	{"E", []string{"assessment", "exercise", "simulation", "case study", "task"}},
	{"K", []string{"python", "java", "sql", "excel", "technical", "knowledge", "skill", "coding",
		"developer", "automata", "test", "data", "it", "software"}},
	{"P", []string{"personality", "behavior", "behaviour", "opq", "leadership", "communication",
		"team", "interpersonal", "values", "emotional", "traits", "motivation"}},
	{"S", []string{"simulation", "roleplay", "virtual", "scenario-based"}},
}

var keywordMatcher = buildMatcher(Rules)

func buildMatcher(rules []Rule) *matcher {
	var kws []keyword
	for rank, rule := range rules {
		for _, w := range rule.Keywords {
			kws = append(kws, keyword{text: w, rank: rank})
		}
	}
	return newMatcher(kws)
}

// Resolve returns stored unchanged when it names a recognised code, and
// otherwise infers a code from url and name.
func Resolve(stored, url, name string) string {
	if HasCode(stored) {
		return stored
	}
	return Infer(url + " " + name)
}

// HasCode reports whether s contains any recognised code letter,
// case-insensitively.
func HasCode(s string) bool {
	return strings.ContainsAny(strings.ToUpper(s), Codes)
}

// Infer returns the first code in table order whose keywords occur in text,
// or Unresolved.
func Infer(text string) string {
	rank, ok := keywordMatcher.minRank(strings.ToLower(text))
	if !ok {
		return Unresolved
	}
	return Rules[rank].Code
}

// Keywords returns the keywords found in text, for diagnostics.
func Keywords(text string) []string {
	return keywordMatcher.matches(strings.ToLower(text))
}

// Contains reports whether category contains code. The match is
// case-sensitive: a stored "k" does not contain "K".
func Contains(category, code string) bool {
	if code == "" {
		return false
	}
	return strings.Contains(category, code)
}

// Split breaks a category such as "K, P" into its codes. Empty parts are
// dropped; the unresolved sentinel yields a single "-".
func Split(category string) []string {
	parts := strings.Split(category, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
