// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is created on first use with
WithRequiredStructEnabled, json tag field naming and one custom rule:

	testcode   a single assessment category code (A B C D E K P S), any case

ValidateStruct returns a *RequestValidationError whose ToAPIError produces
the VALIDATION_ERROR payload used by the HTTP API:

	type RecommendRequest struct {
	    Query    string   `json:"query" validate:"max=10000"`
	    TopK     int      `json:"top_k" validate:"omitempty,min=1,max=100"`
	    TestType []string `json:"test_type" validate:"omitempty,dive,testcode"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	    return
	}
*/
package validation
