// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Package docs registers the Swagger 2.0 document served under /swagger/.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/skillmatch"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Returns \"ok\" with catalog size, load time and uptime",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get service health status",
                "responses": {
                    "200": {
                        "description": "Health status retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.HealthStatus"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/recommend": {
            "post": {
                "description": "Ranks the catalog against a free-text query or job description and returns up to top_k assessments,\nbalanced between knowledge (K) and personality (P) tests.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommend"],
                "summary": "Recommend assessments for a query",
                "parameters": [
                    {
                        "description": "Query and options",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.RecommendRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Ranked assessments",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.RecommendData"}}}
                            ]
                        }
                    },
                    "400": {"description": "Empty query or invalid request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "No catalog loaded", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "504": {"description": "Request timed out", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/v1/catalog": {
            "get": {
                "description": "Returns record count, vocabulary size, source version and load time of the served catalog",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Get catalog statistics",
                "responses": {
                    "200": {
                        "description": "Catalog statistics",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.CatalogStats"}}}
                            ]
                        }
                    },
                    "503": {"description": "No catalog loaded", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/v1/catalog/reload": {
            "post": {
                "description": "Re-reads the catalog source and swaps in a new recommender. The previous catalog keeps serving if the reload fails.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Reload the catalog",
                "responses": {
                    "202": {
                        "description": "Catalog reloaded",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.CatalogStats"}}}
                            ]
                        }
                    },
                    "500": {"description": "Reload failed", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "501": {"description": "Reload not available", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {}},
                "message": {"type": "string"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "metadata": {"$ref": "#/definitions/api.Metadata"},
                "status": {"type": "string"}
            }
        },
        "api.Metadata": {
            "type": "object",
            "properties": {
                "query_time_ms": {"type": "integer"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"},
                "total_candidates": {"type": "integer"}
            }
        },
        "api.RecommendRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "maxLength": 10000, "example": "Java developer who can collaborate with business teams"},
                "test_type": {"type": "array", "maxItems": 8, "items": {"type": "string"}, "example": ["K"]},
                "top_k": {"type": "integer", "maximum": 100, "minimum": 1, "example": 10}
            }
        },
        "api.RecommendData": {
            "type": "object",
            "properties": {
                "recommended_assessments": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/render.ClientRecord"}
                }
            }
        },
        "api.HealthStatus": {
            "type": "object",
            "properties": {
                "catalog_loaded": {"type": "boolean"},
                "catalog_records": {"type": "integer"},
                "loaded_at": {"type": "string"},
                "status": {"type": "string"},
                "uptime_seconds": {"type": "number"}
            }
        },
        "api.CatalogStats": {
            "type": "object",
            "properties": {
                "loaded_at": {"type": "string"},
                "records": {"type": "integer"},
                "rerankers": {"type": "array", "items": {"type": "string"}},
                "version": {"type": "string"},
                "vocabulary_size": {"type": "integer"}
            }
        },
        "render.ClientRecord": {
            "type": "object",
            "properties": {
                "adaptive_irt": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "number"},
                "name": {"type": "string"},
                "remote_testing": {"type": "string"},
                "score": {"type": "number"},
                "test_type": {"type": "array", "items": {"type": "string"}},
                "url": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Skillmatch API",
	Description:      "Recommends assessment products for free-text hiring queries using TF-IDF ranking with knowledge/personality balancing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
