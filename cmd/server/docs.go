// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// @title Skillmatch API
// @version 1.0
// @description Recommends assessments for a free-text job description or query.
// @description
// @description Candidates are ranked by TF-IDF cosine similarity over assessment names,
// @description then balanced between knowledge (K) and personality (P) assessments.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit on /recommend: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "EMPTY_QUERY",
// @description     "message": "Empty query provided"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/skillmatch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks
//
// @tag.name Recommend
// @tag.description Assessment recommendations
//
// @tag.name Catalog
// @tag.description Catalog statistics and reload
package main
