// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

/*
Package config provides layered configuration loading for skillmatch.

Configuration is assembled with Koanf v2 from three sources, later sources
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file, found through CONFIG_PATH or the default paths
 3. Environment variables, mapped explicitly by envTransformFunc

A .env file in the working directory is loaded into the process environment
first, when present.

# Sections

  - server: HTTP listen address and request timeout
  - catalog: catalog location (file path or s3://bucket/key), reload interval
    and S3 client settings
  - recommend: default and maximum top_k, balance codes
  - logging: level, format, caller
  - security: CORS origins and rate limiting
  - scraper: catalog listing URL, paging and politeness delay

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT
	CATALOG_PATH, CATALOG_RELOAD_INTERVAL
	S3_ENDPOINT, S3_REGION, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY, S3_USE_PATH_STYLE
	RECOMMEND_TOP_K, RECOMMEND_MAX_TOP_K
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, RATE_LIMIT_DISABLED
	SCRAPER_BASE_URL, SCRAPER_PAGES, SCRAPER_PAGE_SIZE, SCRAPER_DELAY

Config is immutable after Load and safe for concurrent reads.
*/
package config
