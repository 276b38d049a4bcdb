// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package api

import "errors"

// Error codes returned in APIError.Code.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidJSON    = "INVALID_JSON"
	CodeEmptyQuery     = "EMPTY_QUERY"
	CodeNotReady       = "NOT_READY"
	CodeTimeout        = "TIMEOUT"
	CodeRecommendError = "RECOMMEND_ERROR"
	CodeReloadError    = "RELOAD_ERROR"
	CodeNotImplemented = "NOT_IMPLEMENTED"
)

// Common API errors
var (
	// ErrEmptyQuery is returned when the query is blank after trimming.
	ErrEmptyQuery = errors.New("Empty query provided") //nolint:staticcheck // message is part of the public API

	// ErrReloadUnavailable indicates no reloader was wired into the handler.
	ErrReloadUnavailable = errors.New("catalog reload is not available")
)
