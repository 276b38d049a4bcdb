// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

/*
Package main is the entry point for the Skillmatch HTTP server.

The server loads an assessment catalog, fits a TF-IDF index over the
assessment names and answers free-text job descriptions with a ranked,
category-balanced list of assessments.

# Application Architecture

	RootSupervisor ("skillmatch")
	├── DataSupervisor ("data-layer")
	│   └── catalog-service (initial load, change polling, manual reload)
	└── APISupervisor ("api-layer")
	    └── http-server (chi router)

Startup order:

 1. Configuration: Koanf v2 with .env, config file and environment
 2. Logging: zerolog with JSON or console output
 3. Catalog source: local CSV file or S3 object
 4. Catalog service: builds the recommender and publishes it to the holder
 5. HTTP server: chi router with CORS, rate limiting and metrics
 6. Supervisor tree: Suture v4 restarts failed services

Requests that arrive before the first catalog load get 503 CATALOG_NOT_READY.

# Configuration

Priority: environment variables > config file > defaults.

	HTTP_PORT=8000                       # listen port
	HTTP_HOST=0.0.0.0
	CATALOG_PATH=SHL_Scraped_Assessments.csv   # or s3://bucket/key
	CATALOG_RELOAD_INTERVAL=1m           # 0 disables polling
	RECOMMEND_TOP_K=10
	LOG_LEVEL=info                       # trace, debug, info, warn, error
	LOG_FORMAT=json                      # json or console
	CORS_ORIGINS=*
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

When a config file is in use, edits to it re-apply the logging settings
without a restart.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to 10s before the process exits.

# Example Usage

	CATALOG_PATH=./catalog.csv LOG_FORMAT=console ./server

	curl -s localhost:8000/recommend -d '{"query":"Java developer with SQL"}'
*/
package main
