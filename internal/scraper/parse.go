// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package scraper

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/tomtom215/skillmatch/internal/catalog"
)

// Column headers written by WriteCSV.
var Header = []string{"Assessment_Name", "Assessment_Url", "Remote_Testing", "Adaptive_IRT", "Test_Type"}

// skipKeywords mark pre-packaged job solutions.
var skipKeywords = []string{"solution", "bundle", "package", "suite"}

var whitespace = regexp.MustCompile(`\s+`)

const (
	yesClass = "-yes"
	keyClass = "product-catalogue__key"
)

// Row is one scraped assessment.
type Row struct {
	Name          string
	URL           string
	RemoteTesting string
	AdaptiveIRT   string
	TestType      string
}

// Record returns the row as CSV cells in Header order.
func (r Row) Record() []string {
	return []string{r.Name, r.URL, r.RemoteTesting, r.AdaptiveIRT, r.TestType}
}

// ParsePage extracts assessment rows from the first table of an HTML page.
// A page without a table yields no rows.
func ParsePage(r io.Reader, siteRoot *url.URL) ([]Row, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	table := findFirst(doc, func(n *html.Node) bool { return isElement(n, "table") })
	if table == nil {
		return nil, nil
	}

	trs := findAll(table, func(n *html.Node) bool { return isElement(n, "tr") })
	if len(trs) <= 1 {
		return nil, nil
	}

	var rows []Row
	for _, tr := range trs[1:] {
		if row, ok := parseRow(tr, siteRoot); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func parseRow(tr *html.Node, siteRoot *url.URL) (Row, bool) {
	cols := findAll(tr, func(n *html.Node) bool { return isElement(n, "td") })
	if len(cols) < 4 {
		return Row{}, false
	}

	link := findFirst(cols[0], func(n *html.Node) bool { return isElement(n, "a") })
	if link == nil {
		return Row{}, false
	}
	href := strings.TrimSpace(attr(link, "href"))
	if href == "" {
		return Row{}, false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return Row{}, false
	}
	resolved := siteRoot.ResolveReference(ref).String()

	lower := strings.ToLower(resolved)
	for _, kw := range skipKeywords {
		if strings.Contains(lower, kw) {
			return Row{}, false
		}
	}

	var types []string
	for _, span := range findAll(cols[3], func(n *html.Node) bool { return isElement(n, "span") && hasClass(n, keyClass) }) {
		if t := strings.TrimSpace(textContent(span)); t != "" {
			types = append(types, t)
		}
	}
	testType := catalog.UnknownCategory
	if len(types) > 0 {
		testType = strings.Join(types, ", ")
	}

	return Row{
		Name:          cleanText(textContent(link)),
		URL:           resolved,
		RemoteTesting: yesNo(cols[1]),
		AdaptiveIRT:   yesNo(cols[2]),
		TestType:      testType,
	}, true
}

func yesNo(cell *html.Node) string {
	if findFirst(cell, func(n *html.Node) bool { return isElement(n, "span") && hasClass(n, yesClass) }) != nil {
		return "Yes"
	}
	return "No"
}

func cleanText(s string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// findFirst returns the first descendant of n, in document order, matching
// match.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant of n matching match, in document order.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var f func(*html.Node)
	f = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if match(c) {
				out = append(out, c)
			}
			f(c)
		}
	}
	f(n)
	return out
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return sb.String()
}
