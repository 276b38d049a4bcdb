// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/metrics"
)

// maxPageBytes bounds a single listing page.
const maxPageBytes = 8 << 20

// Page fetch results, used as metric labels.
const (
	ResultSuccess      = "success"
	ResultHTTPError    = "http_error"
	ResultNetworkError = "network_error"
	ResultCircuitOpen  = "circuit_open"
	ResultParseError   = "parse_error"
)

// ErrHTTPStatus is wrapped by fetch errors for non-200 responses.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// Config contains scraper configuration
type Config struct {
	// BaseURL contains one %d verb that receives page*PageSize.
	BaseURL   string
	Pages     int
	PageSize  int
	Delay     time.Duration
	Timeout   time.Duration
	UserAgent string

	// BreakerFailures is the number of consecutive failed pages that
	// opens the circuit. Default: 5
	BreakerFailures uint32

	// BreakerCooldown is how long the circuit stays open. Default: 30s
	BreakerCooldown time.Duration
}

// DefaultConfig returns the production listing settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "https://www.shl.com/products/product-catalog/?start=%d&type=1&type=1",
		Pages:           34,
		PageSize:        12,
		Delay:           1500 * time.Millisecond,
		Timeout:         20 * time.Second,
		UserAgent:       "skillmatch-scraper/1.0",
		BreakerFailures: 5,
		BreakerCooldown: 30 * time.Second,
	}
}

// PageURL returns the listing URL for page i.
func (c Config) PageURL(i int) string {
	return fmt.Sprintf(c.BaseURL, i*c.PageSize)
}

// Scraper handles listing scraping operations
type Scraper struct {
	config   Config
	client   *http.Client
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[[]byte]
	siteRoot *url.URL
	logger   zerolog.Logger
}

// New creates a Scraper. The site root used to resolve relative links is
// the scheme and host of the first page URL.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, logger zerolog.Logger) (*Scraper, error) {
	defaults := DefaultConfig()
	if cfg.Pages <= 0 {
		return nil, fmt.Errorf("pages must be positive, got %d", cfg.Pages)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", cfg.PageSize)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = defaults.BreakerFailures
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = defaults.BreakerCooldown
	}

	first, err := url.Parse(cfg.PageURL(0))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if first.Scheme != "http" && first.Scheme != "https" {
		return nil, fmt.Errorf("base URL must be http or https")
	}

	limit := rate.Inf
	if cfg.Delay > 0 {
		limit = rate.Every(cfg.Delay)
	}

	return &Scraper{
		config:   cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(limit, 1),
		breaker:  newBreaker(cfg.BreakerFailures, cfg.BreakerCooldown),
		siteRoot: &url.URL{Scheme: first.Scheme, Host: first.Host, Path: "/"},
		logger:   logger.With().Str("component", "scraper").Logger(),
	}, nil
}

// Run scrapes every listing page and returns URL-unique rows in page order.
// Failed pages are logged and skipped; only context cancellation aborts.
func (s *Scraper) Run(ctx context.Context) ([]Row, error) {
	seen := make(map[string]struct{})
	var rows []Row

	for page := 0; page < s.config.Pages; page++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return rows, err
		}

		pageURL := s.config.PageURL(page)
		pageRows, result, err := s.scrapePage(ctx, pageURL)
		metrics.RecordScraperPage(result, len(pageRows))
		if err != nil {
			if ctx.Err() != nil {
				return rows, ctx.Err()
			}
			s.logger.Warn().Err(err).Str("url", pageURL).Str("result", result).Msg("Skipping listing page")
			continue
		}

		added := 0
		for _, row := range pageRows {
			if _, dup := seen[row.URL]; dup {
				continue
			}
			seen[row.URL] = struct{}{}
			rows = append(rows, row)
			added++
		}
		s.logger.Info().
			Int("page", page+1).
			Int("pages", s.config.Pages).
			Int("rows", added).
			Str("url", pageURL).
			Msg("Fetched listing page")
	}

	s.logger.Info().Int("total", len(rows)).Msg("Scrape complete")
	return rows, nil
}

func (s *Scraper) scrapePage(ctx context.Context, pageURL string) ([]Row, string, error) {
	body, err := s.breaker.Execute(func() ([]byte, error) {
		return s.fetch(ctx, pageURL)
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return nil, ResultCircuitOpen, err
		case errors.Is(err, ErrHTTPStatus):
			return nil, ResultHTTPError, err
		default:
			return nil, ResultNetworkError, err
		}
	}

	rows, err := ParsePage(bytes.NewReader(body), s.siteRoot)
	if err != nil {
		return nil, ResultParseError, err
	}
	return rows, ResultSuccess, nil
}

func (s *Scraper) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.config.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrHTTPStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// Table converts rows to a catalog table with the scraper header.
func Table(rows []Row) *catalog.Table {
	t := &catalog.Table{
		Header: append([]string(nil), Header...),
		Rows:   make([][]string, len(rows)),
	}
	for i, r := range rows {
		t.Rows[i] = r.Record()
	}
	return t
}

// WriteCSV writes rows as a catalog CSV.
func WriteCSV(w io.Writer, rows []Row) error {
	return catalog.WriteCSV(w, Table(rows))
}
