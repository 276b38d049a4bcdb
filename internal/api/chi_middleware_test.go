// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/skillmatch/internal/config"
)

// =====================================================
// ChiMiddleware Configuration Tests
// =====================================================

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m == nil || m.config == nil {
		t.Fatal("NewChiMiddleware returned nil config")
	}
	if len(m.config.CORSAllowedOrigins) != 1 || m.config.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v, want [*]", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSAllowCredentials {
		t.Error("credentials must be off by default")
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestNewChiMiddlewareFromConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromConfig(config.SecurityConfig{
		CORSOrigins:     []string{"https://app.example.com"},
		RateLimitReqs:   20,
		RateLimitWindow: 30 * time.Second,
	})
	if len(m.config.CORSAllowedOrigins) != 1 {
		t.Errorf("CORSAllowedOrigins = %v", m.config.CORSAllowedOrigins)
	}
	if !m.config.CORSAllowCredentials {
		t.Error("explicit origins should allow credentials")
	}
	if m.config.RateLimitRequests != 20 || m.config.RateLimitWindow != 30*time.Second {
		t.Errorf("rate limit = %d/%v", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

// =====================================================
// CORS Middleware Tests
// =====================================================

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		origins     []string
		credentials bool
		origin      string
		wantAllowed bool
		wantCreds   bool
	}{
		{"wildcard allows any origin", []string{"*"}, false, "https://any.example.com", true, false},
		{"empty list allows any origin", nil, false, "https://any.example.com", true, false},
		{"wildcard never sends credentials", []string{"*"}, true, "https://any.example.com", true, false},
		{"explicit origin allowed", []string{"https://app.example.com"}, true, "https://app.example.com", true, true},
		{"explicit origin rejects others", []string{"https://app.example.com"}, true, "https://evil.example.com", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultChiMiddlewareConfig()
			cfg.CORSAllowedOrigins = tt.origins
			cfg.CORSAllowCredentials = tt.credentials
			handler := NewChiMiddleware(cfg).CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			allowOrigin := rec.Header().Get("Access-Control-Allow-Origin")
			if got := allowOrigin != ""; got != tt.wantAllowed {
				t.Errorf("Access-Control-Allow-Origin = %q, allowed = %v, want %v", allowOrigin, got, tt.wantAllowed)
			}
			creds := rec.Header().Get("Access-Control-Allow-Credentials") == "true"
			if creds != tt.wantCreds {
				t.Errorf("Access-Control-Allow-Credentials = %v, want %v", creds, tt.wantCreds)
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, testHolder(t), nil, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommend", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("preflight should be answered with Access-Control-Allow-Origin")
	}
}

// =====================================================
// Rate Limit Middleware Tests
// =====================================================

func TestRateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	h := newTestServer(t, testHolder(t), nil, cfg)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last, _ = doRequest(t, h, http.MethodPost, "/api/v1/recommend", `{"query":"java"}`)
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last.Code)
	}

	// Health is outside the limited group.
	rec, _ := doRequest(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	h := newTestServer(t, testHolder(t), nil, cfg)

	for i := 0; i < 3; i++ {
		rec, _ := doRequest(t, h, http.MethodPost, "/api/v1/recommend", `{"query":"java"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}
}
