// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

/*
Package api provides the HTTP REST API layer for Skillmatch.

Key Components:

  - Router: Chi route configuration and middleware stack
  - Handler: request handlers for health, recommendation and catalog endpoints
  - Response formatting: the status/data/metadata/error envelope
  - Rate limiting: per-IP limits on the recommend routes (go-chi/httprate)
  - CORS: configured origins via go-chi/cors

Routes:

	GET  /health                  liveness plus catalog size
	GET  /api/v1/health           alias of /health
	POST /recommend               root path kept for existing clients
	POST /api/v1/recommend        ranked assessments for a free-text query
	GET  /api/v1/catalog          catalog statistics
	POST /api/v1/catalog/reload   force a catalog reload
	GET  /metrics                 Prometheus exposition
	GET  /swagger/*               Swagger UI

Response Format:

All JSON responses share one envelope:

	{
	  "status": "success",
	  "data": {"recommended_assessments": [...]},
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 3}
	}

Errors set "status" to "error" and carry an "error" object with a
machine-readable code:

	VALIDATION_ERROR   request body failed validation (400)
	INVALID_JSON       request body is not valid JSON (400)
	EMPTY_QUERY        query is blank (400)
	NOT_READY          no catalog loaded yet (503)
	TIMEOUT            recommendation exceeded the request timeout (504)
	RECOMMEND_ERROR    recommendation failed (500)
	RELOAD_ERROR       catalog reload failed (500)

Usage Example:

	holder := recommender.NewHolder(rec)
	handler := api.NewHandler(holder, catalogService, cfg)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))
	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())

Thread Safety:

Handlers hold no per-request state. The recommender is read through an
atomic holder, so a catalog reload never blocks in-flight requests.
*/
package api
