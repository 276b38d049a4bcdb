// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package category

import "strings"

// matcher is a case-insensitive Aho-Corasick automaton. It is built once by
// newMatcher and read-only afterwards, so concurrent searches need no lock.
//
// Each pattern carries an integer rank; minRank returns the smallest rank
// among all patterns occurring anywhere in the text, which is the
// first-match-in-declaration-order answer the keyword table needs without
// scanning the text once per keyword.
type matcher struct {
	root  *acNode
	ranks []int
	texts []string
}

type acNode struct {
	children map[rune]*acNode
	failure  *acNode
	output   []int // pattern indices ending here, including via failure links
}

type keyword struct {
	text string
	rank int
}

func newACNode() *acNode {
	return &acNode{children: make(map[rune]*acNode)}
}

func newMatcher(keywords []keyword) *matcher {
	m := &matcher{root: newACNode()}
	for _, kw := range keywords {
		if kw.text == "" {
			continue
		}
		m.insert(len(m.ranks), strings.ToLower(kw.text))
		m.ranks = append(m.ranks, kw.rank)
		m.texts = append(m.texts, kw.text)
	}
	m.buildFailureLinks()
	return m
}

func (m *matcher) insert(index int, text string) {
	node := m.root
	for _, ch := range text {
		next := node.children[ch]
		if next == nil {
			next = newACNode()
			node.children[ch] = next
		}
		node = next
	}
	node.output = append(node.output, index)
}

// buildFailureLinks runs a BFS over the trie, linking every node to its
// longest proper suffix that is also a trie path.
func (m *matcher) buildFailureLinks() {
	queue := make([]*acNode, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.failure = m.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = m.root
				continue
			}
			child.failure = fail.children[ch]
			child.output = append(child.output, child.failure.output...)
		}
	}
}

// minRank returns the smallest rank of any pattern found in text, and false
// when nothing matches. text must already be lower-cased.
func (m *matcher) minRank(text string) (int, bool) {
	best, found := 0, false
	node := m.root
	for _, ch := range text {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = m.root
			continue
		}
		node = node.children[ch]
		for _, idx := range node.output {
			if r := m.ranks[idx]; !found || r < best {
				best, found = r, true
			}
		}
		if found && best == 0 {
			break
		}
	}
	return best, found
}

// matches returns every keyword occurring in text, in scan order.
func (m *matcher) matches(text string) []string {
	var out []string
	node := m.root
	for _, ch := range text {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = m.root
			continue
		}
		node = node.children[ch]
		for _, idx := range node.output {
			out = append(out, m.texts[idx])
		}
	}
	return out
}
