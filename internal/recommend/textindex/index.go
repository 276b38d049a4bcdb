// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package textindex implements the TF-IDF vector space built over catalog
// names.
//
// Weights use raw term counts and the smoothed inverse document frequency
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
//
// and every row is L2-normalized, so cosine similarity reduces to a sparse
// dot product. An Index is immutable after Fit and safe for concurrent use.
package textindex

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Tokens are maximal runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vector is a sparse vector with ascending term indices.
type Vector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether v has no non-zero component.
func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// Index is a fitted TF-IDF vector space.
type Index struct {
	vocab map[string]int
	terms []string
	idf   []float64
	rows  []Vector
}

// Fit builds the vocabulary and document matrix over docs. Empty documents
// still occupy a row (the zero vector).
func Fit(docs []string) *Index {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokenized[i] = Tokenize(doc)
		seen := make(map[string]struct{}, len(tokenized[i]))
		for _, tok := range tokenized[i] {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	idx := &Index{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
		rows:  make([]Vector, len(docs)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		idx.vocab[term] = i
		idx.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	for i, toks := range tokenized {
		idx.rows[i] = idx.vectorize(toks)
	}
	return idx
}

// Tokenize lower-cases text, splits it into word tokens and drops stop words.
func Tokenize(text string) []string {
	text = strings.ToLower(norm.NFKC.String(text))
	raw := tokenPattern.FindAllString(text, -1)
	out := raw[:0]
	for _, tok := range raw {
		if IsStopWord(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Transform maps text into the fitted space. Unknown terms are ignored.
func (x *Index) Transform(text string) Vector {
	return x.vectorize(Tokenize(text))
}

func (x *Index) vectorize(tokens []string) Vector {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if i, ok := x.vocab[tok]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	v := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for i := range counts {
		v.Indices = append(v.Indices, i)
	}
	sort.Ints(v.Indices)

	var sumSq float64
	for _, i := range v.Indices {
		w := float64(counts[i]) * x.idf[i]
		v.Values = append(v.Values, w)
		sumSq += w * w
	}
	if l2 := math.Sqrt(sumSq); l2 > 0 {
		for j := range v.Values {
			v.Values[j] /= l2
		}
	}
	return v
}

// Similarity returns the cosine similarity between q and every document,
// in document order. Zero vectors score 0 and non-finite results become 0.
func (x *Index) Similarity(q Vector) []float64 {
	scores := make([]float64, len(x.rows))
	if q.IsZero() {
		return scores
	}
	for i, row := range x.rows {
		scores[i] = finite(dot(q, row))
	}
	return scores
}

// Cosine returns the cosine similarity of two arbitrary sparse vectors.
func Cosine(a, b Vector) float64 {
	na, nb := math.Sqrt(dot(a, a)), math.Sqrt(dot(b, b))
	if na == 0 || nb == 0 {
		return 0
	}
	return finite(dot(a, b) / (na * nb))
}

func dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Len returns the number of indexed documents.
func (x *Index) Len() int { return len(x.rows) }

// VocabularySize returns the number of distinct terms.
func (x *Index) VocabularySize() int { return len(x.terms) }

// Terms returns the vocabulary in index order.
func (x *Index) Terms() []string {
	out := make([]string, len(x.terms))
	copy(out, x.terms)
	return out
}

// IDF returns the inverse document frequency of term and whether it is known.
func (x *Index) IDF(term string) (float64, bool) {
	i, ok := x.vocab[term]
	if !ok {
		return 0, false
	}
	return x.idf[i], true
}
