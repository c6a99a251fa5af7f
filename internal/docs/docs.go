// Package docs registra en swag el documento OpenAPI servido en /swagger/.
// Refleja las anotaciones de domain/pets y domain/inquiries; se regenera con
//
//	swag init -g cmd/api/main.go -o internal/docs --parseInternal
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
        "/inquiries": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["inquiries"],
                "summary": "List inquiries (policy Inquiries.Read)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/inquiries.V1"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Details"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inquiries"],
                "summary": "Create an inquiry",
                "parameters": [{"description": "Inquiry", "name": "inquiry", "in": "body", "required": true, "schema": {"$ref": "#/definitions/inquiries.V1"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/inquiries.V1"}, "headers": {"Location": {"type": "string", "description": "/api/v1/inquiry/{id}"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/problem.Details"}}
                }
            }
        },
        "/inquiry/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["inquiries"],
                "summary": "Get an inquiry (policy Inquiries.Read)",
                "parameters": [{"type": "string", "description": "Inquiry ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inquiries.V1"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Details"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inquiries"],
                "summary": "Replace an inquiry (policy Inquiries.Write)",
                "parameters": [
                    {"type": "string", "description": "Inquiry ID", "name": "id", "in": "path", "required": true},
                    {"description": "Inquiry", "name": "inquiry", "in": "body", "required": true, "schema": {"$ref": "#/definitions/inquiries.V1"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inquiries.V1"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/problem.Details"}}
                }
            }
        },
        "/pet/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Get a pet",
                "parameters": [{"type": "string", "description": "Pet ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.V1"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Details"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Replace a pet (policy Pets.Write)",
                "parameters": [
                    {"type": "string", "description": "Pet ID", "name": "id", "in": "path", "required": true},
                    {"description": "Pet", "name": "pet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.V1"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.V1"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/problem.Details"}}
                }
            }
        },
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "List pets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.V1"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Create a pet (policy Pets.Write)",
                "parameters": [{"description": "Pet", "name": "pet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.V1"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.V1"}, "headers": {"Location": {"type": "string", "description": "/api/v1/pet/{id}"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem.Details"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/problem.Details"}}
                }
            }
        }
    },
    "definitions": {
        "inquiries.V1": {
            "type": "object",
            "required": ["email", "name", "petId"],
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "message": {"type": "string"},
                "name": {"type": "string"},
                "petId": {"type": "string"}
            }
        },
        "pets.V1": {
            "type": "object",
            "required": ["kind", "name"],
            "properties": {
                "birthday": {"type": "string", "format": "date-time"},
                "breed": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "name": {"type": "string"},
                "photos": {"type": "array", "items": {"type": "string", "format": "uri-reference"}},
                "status": {"type": "string", "enum": ["unavailable", "available", "adopted"], "default": "unavailable"}
            }
        },
        "problem.Details": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "instance": {"type": "string"},
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Shelter API",
	Description:      "Pets and adoption inquiries for the animal shelter.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
