// Package docs registers the OpenAPI document served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Application health",
                "responses": {
                    "200": {"description": "Aggregated component health", "schema": {"type": "object"}}
                }
            }
        },
        "/spots": {
            "get": {
                "produces": ["application/json"],
                "tags": ["spots"],
                "summary": "Get all spots",
                "responses": {
                    "200": {"description": "List of spots with current weather", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spots"],
                "summary": "Create spot",
                "parameters": [
                    {"name": "spot", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created spot", "schema": {"type": "object"}},
                    "400": {"description": "Invalid request body or coordinates out of range", "schema": {"type": "object"}}
                }
            }
        },
        "/spots/from-city": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spots"],
                "summary": "Create spot from city name",
                "parameters": [
                    {"name": "spot", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created spot", "schema": {"type": "object"}},
                    "404": {"description": "City not found", "schema": {"type": "object"}}
                }
            }
        },
        "/spots/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["spots"],
                "summary": "Get spot by id",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Spot data", "schema": {"type": "object"}},
                    "404": {"description": "Spot not found", "schema": {"type": "object"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spots"],
                "summary": "Update spot",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "spot", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Updated spot", "schema": {"type": "object"}},
                    "404": {"description": "Spot not found", "schema": {"type": "object"}}
                }
            },
            "delete": {
                "tags": ["spots"],
                "summary": "Delete spot",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Spot removed successfully"},
                    "404": {"description": "Spot not found", "schema": {"type": "object"}}
                }
            }
        },
        "/spots/{id}/weather": {
            "get": {
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Get current weather for a spot",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "name": "refresh", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Current weather record", "schema": {"type": "object"}},
                    "404": {"description": "Spot or weather not found", "schema": {"type": "object"}},
                    "429": {"description": "Upstream rate limit exceeded", "schema": {"type": "object"}}
                }
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Force-refresh weather for a spot",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Newly fetched weather record", "schema": {"type": "object"}},
                    "404": {"description": "Spot not found", "schema": {"type": "object"}}
                }
            }
        },
        "/spots/{id}/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Get weather history for a spot",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Time-ordered weather records", "schema": {"type": "array", "items": {"type": "object"}}},
                    "400": {"description": "Days out of range", "schema": {"type": "object"}},
                    "404": {"description": "Spot not found", "schema": {"type": "object"}}
                }
            }
        },
        "/weather/batch": {
            "get": {
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Fetch weather for every spot",
                "parameters": [
                    {"type": "boolean", "name": "refresh", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Mapping from spot id to record or null", "schema": {"type": "object"}}
                }
            }
        },
        "/geocoding/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Search cities",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "required": true},
                    {"type": "string", "name": "country", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Geocoding candidates in relevance order", "schema": {"type": "array", "items": {"type": "object"}}},
                    "400": {"description": "Missing query", "schema": {"type": "object"}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Weather Spots API",
	Description:      "Tracks geographic spots and proxies current and historical weather for them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
