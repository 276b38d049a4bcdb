// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/config"
	"github.com/tomtom215/skillmatch/internal/recommend/render"
	"github.com/tomtom215/skillmatch/internal/recommender"
)

// =====================================================
// Test Fixtures
// =====================================================

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Record{
		{Name: "Java Programming Test", URL: "https://www.shl.com/products/view/java-new", Category: "-"},
		{Name: "Core Java Advanced", URL: "https://www.shl.com/products/view/core-java-advanced", Category: "K"},
		{Name: "Leadership Personality Questionnaire", URL: "https://www.shl.com/products/view/opq32", Category: "P"},
		{Name: "Verbal Reasoning", URL: "https://www.shl.com/products/view/verify-verbal", Category: "A"},
	})
}

func testHolder(t *testing.T) *recommender.Holder {
	t.Helper()
	rec, err := recommender.New(testCatalog(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("recommender.New() error = %v", err)
	}
	return recommender.NewHolder(rec.WithVersion("v1"))
}

type fakeReloader struct {
	err   error
	calls int
}

func (f *fakeReloader) Reload(_ context.Context) error {
	f.calls++
	return f.err
}

func newTestServer(t *testing.T, holder *recommender.Holder, reloader Reloader, mw *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{Timeout: 5 * time.Second}}
	if reloader == nil {
		return NewRouter(NewHandler(holder, nil, cfg), NewChiMiddleware(mw)).SetupChi()
	}
	return NewRouter(NewHandler(holder, reloader, cfg), NewChiMiddleware(mw)).SetupChi()
}

type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
	Error    *APIError       `json:"error"`
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
		}
	}
	return rec, env
}

// =====================================================
// Health
// =====================================================

func TestHealth(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)

	for _, path := range []string{"/health", "/api/v1/health"} {
		rec, env := doRequest(t, h, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", path, rec.Code)
		}
		var status HealthStatus
		if err := json.Unmarshal(env.Data, &status); err != nil {
			t.Fatal(err)
		}
		if status.Status != "ok" {
			t.Errorf("%s: status = %q, want ok", path, status.Status)
		}
		if !status.CatalogLoaded || status.CatalogRecords != 4 {
			t.Errorf("%s: catalog = %v/%d, want loaded/4", path, status.CatalogLoaded, status.CatalogRecords)
		}
	}
}

func TestHealth_NoCatalog(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, recommender.NewHolder(nil), nil, nil)
	rec, env := doRequest(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var status HealthStatus
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatal(err)
	}
	if status.CatalogLoaded || status.LoadedAt != nil {
		t.Errorf("expected no catalog, got %+v", status)
	}
}

// =====================================================
// Recommend
// =====================================================

func TestRecommend_Success(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)

	for _, path := range []string{"/api/v1/recommend", "/recommend"} {
		rec, env := doRequest(t, h, http.MethodPost, path, `{"query":"java developer","top_k":2}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, body %s", path, rec.Code, rec.Body.String())
		}
		if env.Status != "success" {
			t.Errorf("%s: envelope status = %q", path, env.Status)
		}

		var data RecommendData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatal(err)
		}
		if len(data.RecommendedAssessments) == 0 || len(data.RecommendedAssessments) > 2 {
			t.Fatalf("%s: got %d results, want 1..2", path, len(data.RecommendedAssessments))
		}
		first := data.RecommendedAssessments[0]
		if first.Name != "Java – New" {
			t.Errorf("%s: first name = %q, want %q", path, first.Name, "Java – New")
		}
		if env.Metadata.TotalCandidates != 4 {
			t.Errorf("%s: total_candidates = %d, want 4", path, env.Metadata.TotalCandidates)
		}
		if env.Metadata.RequestID == "" || env.Metadata.RequestID != rec.Header().Get("X-Request-ID") {
			t.Errorf("%s: request_id = %q, header %q", path, env.Metadata.RequestID, rec.Header().Get("X-Request-ID"))
		}
	}
}

func TestRecommend_DefaultTopK(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)
	rec, env := doRequest(t, h, http.MethodPost, "/api/v1/recommend", `{"query":"java personality reasoning"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var data RecommendData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, item := range data.RecommendedAssessments {
		if seen[item.URL] {
			t.Errorf("duplicate url %s", item.URL)
		}
		seen[item.URL] = true
	}
}

func TestRecommend_TopKFromConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Server:    config.ServerConfig{Timeout: 5 * time.Second},
		Recommend: config.RecommendConfig{DefaultTopK: 2, MaxTopK: 3},
	}
	h := NewRouter(NewHandler(testHolder(t), nil, cfg), NewChiMiddleware(nil)).SetupChi()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"omitted uses default", `{"query":"java personality reasoning"}`, 2},
		{"above max is capped", `{"query":"java personality reasoning","top_k":50}`, 3},
		{"within range", `{"query":"java personality reasoning","top_k":1}`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := doRequest(t, h, http.MethodPost, "/api/v1/recommend", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			var data RecommendData
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatal(err)
			}
			if got := len(data.RecommendedAssessments); got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecommend_TestTypeFilter(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)
	rec, env := doRequest(t, h, http.MethodPost, "/api/v1/recommend",
		`{"query":"java leadership personality","top_k":4,"test_type":["p"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var data RecommendData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.RecommendedAssessments) == 0 {
		t.Fatal("expected P results")
	}
	for _, item := range data.RecommendedAssessments {
		if !hasCode(item, "P") {
			t.Errorf("item %s has codes %v, want P", item.URL, item.TestType)
		}
	}
}

func hasCode(item render.ClientRecord, code string) bool {
	for _, c := range item.TestType {
		if c == code {
			return true
		}
	}
	return false
}

func TestRecommend_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"empty query", `{"query":"   "}`, http.StatusBadRequest, CodeEmptyQuery},
		{"missing body", ``, http.StatusBadRequest, CodeEmptyQuery},
		{"malformed json", `{"query":`, http.StatusBadRequest, CodeInvalidJSON},
		{"top_k too large", `{"query":"java","top_k":1000}`, http.StatusBadRequest, CodeValidation},
		{"negative top_k", `{"query":"java","top_k":-1}`, http.StatusBadRequest, CodeValidation},
		{"unknown test type", `{"query":"java","test_type":["Z"]}`, http.StatusBadRequest, CodeValidation},
	}

	h := newTestServer(t, testHolder(t), nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := doRequest(t, h, http.MethodPost, "/api/v1/recommend", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Status != "error" || env.Error == nil {
				t.Fatalf("expected error envelope, got %+v", env)
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestRecommend_EmptyQueryMessage(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)
	_, env := doRequest(t, h, http.MethodPost, "/recommend", `{"query":""}`)
	if env.Error == nil || env.Error.Message != "Empty query provided" {
		t.Errorf("error = %+v, want message %q", env.Error, "Empty query provided")
	}
}

func TestRecommend_NotReady(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, recommender.NewHolder(nil), nil, nil)
	rec, env := doRequest(t, h, http.MethodPost, "/api/v1/recommend", `{"query":"java"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if env.Error == nil || env.Error.Code != CodeNotReady {
		t.Errorf("error = %+v, want %s", env.Error, CodeNotReady)
	}
}

func TestRecommend_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)
	rec, _ := doRequest(t, h, http.MethodGet, "/api/v1/recommend", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

// =====================================================
// Catalog
// =====================================================

func TestCatalogStats(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)
	rec, env := doRequest(t, h, http.MethodGet, "/api/v1/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var stats CatalogStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Records != 4 {
		t.Errorf("records = %d, want 4", stats.Records)
	}
	if stats.VocabularySize == 0 {
		t.Error("vocabulary_size should be > 0")
	}
	if stats.Version != "v1" {
		t.Errorf("version = %q, want v1", stats.Version)
	}
	if len(stats.Rerankers) != 1 || stats.Rerankers[0] != "kp_balance" {
		t.Errorf("rerankers = %v, want [kp_balance]", stats.Rerankers)
	}
}

func TestCatalogStats_NotReady(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, recommender.NewHolder(nil), nil, nil)
	rec, _ := doRequest(t, h, http.MethodGet, "/api/v1/catalog", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestReloadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		reloader := &fakeReloader{}
		h := newTestServer(t, testHolder(t), reloader, nil)
		rec, _ := doRequest(t, h, http.MethodPost, "/api/v1/catalog/reload", "")
		if rec.Code != http.StatusAccepted {
			t.Errorf("status = %d, want 202", rec.Code)
		}
		if reloader.calls != 1 {
			t.Errorf("Reload called %d times, want 1", reloader.calls)
		}
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		reloader := &fakeReloader{err: errors.New("catalog schema error: missing columns")}
		h := newTestServer(t, testHolder(t), reloader, nil)
		rec, env := doRequest(t, h, http.MethodPost, "/api/v1/catalog/reload", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if env.Error == nil || !strings.Contains(env.Error.Message, "missing columns") {
			t.Errorf("error = %+v, want reload cause", env.Error)
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		t.Parallel()
		h := newTestServer(t, testHolder(t), nil, nil)
		rec, _ := doRequest(t, h, http.MethodPost, "/api/v1/catalog/reload", "")
		if rec.Code != http.StatusNotImplemented {
			t.Errorf("status = %d, want 501", rec.Code)
		}
	})
}

// =====================================================
// Router
// =====================================================

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)
	rec, env := doRequest(t, h, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want NOT_FOUND", env.Error)
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "skillmatch_") {
		t.Error("metrics output should contain skillmatch_ series")
	}
}

func TestRouter_RequestIDPropagation(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-id-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "client-id-123" {
		t.Errorf("X-Request-ID = %q, want client-id-123", got)
	}
}
