// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomtom215/skillmatch/internal/recommend/render"
)

type fakeService struct {
	items []render.ClientRecord
	err   error
	query string
	topK  int
}

func (f *fakeService) Recommend(_ context.Context, query string, topK int) ([]render.ClientRecord, error) {
	f.query, f.topK = query, topK
	return f.items, f.err
}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model)
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := New(context.Background(), &fakeService{}, "4 assessments")
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
	m = sized(m)
	if !strings.Contains(m.View(), "Skillmatch") || !strings.Contains(m.View(), "4 assessments") {
		t.Errorf("View() missing header or summary:\n%s", m.View())
	}
}

func TestModel_EnterRunsQuery(t *testing.T) {
	svc := &fakeService{items: []render.ClientRecord{
		{Name: "Java – New", URL: "https://x/java-new/", TestType: []string{"K"}, Score: 0.9},
		{Name: "OPQ32r", URL: "https://x/opq32r/", TestType: []string{"P"}, Score: 0.1},
	}}
	m := sized(New(context.Background(), svc, "").WithTopK(5))
	m.input.SetValue("  java developer ")

	m, _ = press(t, m, tea.KeyEnter)
	if svc.query != "java developer" || svc.topK != 5 {
		t.Errorf("Recommend called with (%q, %d)", svc.query, svc.topK)
	}
	if len(m.Results()) != 2 || m.Cursor() != 0 {
		t.Fatalf("results=%d cursor=%d", len(m.Results()), m.Cursor())
	}
	if !strings.Contains(m.Status(), "2 results") {
		t.Errorf("Status() = %q", m.Status())
	}
	if !strings.Contains(m.View(), "Java – New") {
		t.Errorf("View() should list results:\n%s", m.View())
	}
}

func TestModel_CursorWraps(t *testing.T) {
	svc := &fakeService{items: []render.ClientRecord{{URL: "a"}, {URL: "b"}, {URL: "c"}}}
	m := sized(New(context.Background(), svc, ""))
	m.input.SetValue("q")
	m, _ = press(t, m, tea.KeyEnter)

	m, _ = press(t, m, tea.KeyDown)
	if m.Cursor() != 1 {
		t.Errorf("after down cursor = %d, want 1", m.Cursor())
	}
	m, _ = press(t, m, tea.KeyUp)
	m, _ = press(t, m, tea.KeyUp)
	if m.Cursor() != 2 {
		t.Errorf("after up twice cursor = %d, want 2", m.Cursor())
	}
}

func TestModel_EmptyQueryAndErrors(t *testing.T) {
	svc := &fakeService{err: errors.New("boom")}
	m := sized(New(context.Background(), svc, ""))

	m, _ = press(t, m, tea.KeyEnter)
	if m.Status() != "Empty query provided" || svc.query != "" {
		t.Errorf("empty query: status=%q query=%q", m.Status(), svc.query)
	}

	m.input.SetValue("java")
	m, _ = press(t, m, tea.KeyEnter)
	if !strings.Contains(m.Status(), "boom") || len(m.Results()) != 0 {
		t.Errorf("error query: status=%q results=%d", m.Status(), len(m.Results()))
	}
}

func TestModel_Quit(t *testing.T) {
	m := sized(New(context.Background(), &fakeService{}, ""))
	_, cmd := press(t, m, tea.KeyCtrlC)
	if cmd == nil {
		t.Fatal("Ctrl+C should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Ctrl+C should quit")
	}
}
