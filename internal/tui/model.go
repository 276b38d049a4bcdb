// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package tui is an interactive terminal client for the recommender.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomtom215/skillmatch/internal/recommend/render"
)

// DefaultTopK is the number of results requested per query.
const DefaultTopK = 10

// Recommender is the query side used by the terminal client.
type Recommender interface {
	Recommend(ctx context.Context, query string, topK int) ([]render.ClientRecord, error)
}

// Model is the Bubble Tea model for the terminal client.
type Model struct {
	ctx       context.Context
	service   Recommender
	topK      int
	input     textinput.Model
	viewport  viewport.Model
	results   []render.ClientRecord
	summary   string
	status    string
	cursor    int
	ready     bool
	lastQuery string
}

// New creates a model. summary is shown under the title, typically the
// catalog size and version.
func New(ctx context.Context, service Recommender, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Describe the role and press Enter"
	ti.Focus()
	ti.CharLimit = 10000
	return Model{
		ctx:      ctx,
		service:  service,
		topK:     DefaultTopK,
		input:    ti,
		viewport: viewport.New(0, 0),
		summary:  summary,
		status:   "Catalog loaded. Type a query.",
	}
}

// WithTopK sets the number of results per query.
func (m Model) WithTopK(k int) Model {
	if k > 0 {
		m.topK = k
	}
	return m
}

// Results returns the results of the last query.
func (m Model) Results() []render.ClientRecord { return m.results }

// Cursor returns the selected result index.
func (m Model) Cursor() int { return m.cursor }

// Status returns the status line.
func (m Model) Status() string { return m.status }

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // title, summary, status, spacer
		vh := msg.Height - reserved
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = maxInt(3, vh-rh)
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			m.runQuery(strings.TrimSpace(m.input.Value()))
			return m, nil
		case "down":
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) runQuery(q string) {
	if q == "" {
		m.status = "Empty query provided"
		return
	}
	res, err := m.service.Recommend(m.ctx, q, m.topK)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.results = nil
	} else {
		m.status = fmt.Sprintf("%d results for %q", len(res), q)
		m.results = res
		m.lastQuery = q
	}
	m.cursor = 0
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
}

// View renders the layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("Skillmatch")
	summary := summaryStyle.Render(m.summary)
	results := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return "No results yet."
	}
	var b strings.Builder
	for i, r := range m.results {
		marker := "  "
		line := fmt.Sprintf("%2d. %s  [%s]  %.4f", i+1, r.Name, strings.Join(r.TestType, ","), r.Score)
		if i == m.cursor {
			marker = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
		if i == m.cursor {
			b.WriteString("    " + urlStyle.Render(r.URL) + "\n")
		}
	}
	return b.String()
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	urlStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
