// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Store unreachable"}
                }
            }
        },
        "/hello": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hello"],
                "summary": "Describe the request",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/hello.ResponseBody"}}
                }
            }
        },
        "/spaces": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["spaces"],
                "summary": "Get one space by id or list all spaces",
                "parameters": [{"type": "string", "name": "id", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Space"}},
                    "400": {"description": "Invalid space ID format", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Space not found", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spaces"],
                "summary": "Create a space",
                "parameters": [{"name": "space", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.CreateSpaceRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.CreatedResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spaces"],
                "summary": "Update a space",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query", "required": true},
                    {"name": "space", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.CreateSpaceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Space"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["spaces"],
                "summary": "Delete a space (admins only)",
                "parameters": [{"type": "string", "name": "id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Space": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "location": {"type": "string"},
                "ward": {"type": "string"},
                "photoUrl": {"type": "string"}
            }
        },
        "services.CreateSpaceRequest": {
            "type": "object",
            "properties": {
                "location": {"type": "string"},
                "ward": {"type": "string"},
                "photoUrl": {"type": "string"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "missingFields": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.CreatedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "spaceId": {"type": "string"},
                "space": {"$ref": "#/definitions/models.Space"}
            }
        },
        "hello.ResponseBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "table_name": {"type": "string"},
                "runtime": {"type": "string"},
                "event_info": {
                    "type": "object",
                    "properties": {
                        "http_method": {"type": "string"},
                        "path": {"type": "string"},
                        "query_params": {"type": "object"}
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Space Finder API",
	Description:      "Local server for the space finder Lambda functions",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
