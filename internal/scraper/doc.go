// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

/*
Package scraper builds the assessment catalog CSV from the paginated
product-catalog listing.

Each listing page is fetched through a circuit breaker (sony/gobreaker) and
paced by a token-bucket limiter (x/time/rate). Pages that fail are skipped;
the run continues with the next page. The first <table> of each page is
parsed with x/net/html:

	cell 0   first <a>: name and href (resolved against the site root)
	cell 1   span.-yes present: Remote_Testing "Yes", else "No"
	cell 2   span.-yes present: Adaptive_IRT "Yes", else "No"
	cell 3   span.product-catalogue__key texts: Test_Type, joined with ", "

Rows whose URL mentions a solution, bundle, package or suite are pre-packaged
job solutions and are skipped. Rows are de-duplicated by URL, first wins.

Usage:

	s, err := scraper.New(scraper.DefaultConfig(), logger)
	rows, err := s.Run(ctx)
	err = scraper.WriteCSV(f, rows)
*/
package scraper
