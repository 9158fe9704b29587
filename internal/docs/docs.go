// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {"tags": ["system"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/auth/sign-up": {
            "post": {
                "tags": ["auth"], "summary": "Sign up",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/credentials"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "409": {"description": "Username taken"}}
            }
        },
        "/auth/sign-in": {
            "post": {
                "tags": ["auth"], "summary": "Sign in",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/credentials"}}],
                "responses": {"200": {"description": "token"}, "401": {"description": "Invalid username or password"}}
            }
        },
        "/api/v1/expenses": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List expenses, newest first",
                "produces": ["application/json"],
                "responses": {"200": {"description": "count, expenses"}, "401": {"description": "Unauthorized"}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Add expense",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddExpenseRequest"}}],
                "responses": {"201": {"description": "count, expense"}, "400": {"description": "Invalid input"}}
            }
        },
        "/api/v1/expenses/summary": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Totals by category and month", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/expenses/export": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Download ledger as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV"}}}
        },
        "/api/v1/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List categories", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/ws": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Live dashboard (WebSocket)", "responses": {"101": {"description": "Switching Protocols"}}}
        }
    },
    "definitions": {
        "credentials": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.AddExpenseRequest": {
            "type": "object",
            "required": ["category", "amount"],
            "properties": {
                "date": {"type": "string", "example": "2024-01-05"},
                "category": {"type": "string", "enum": ["Food", "Transport", "Bills", "Shopping", "Other"]},
                "description": {"type": "string", "example": "lunch"},
                "amount": {"type": "string", "example": "12.50"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Expense Tracker API",
	Description:      "Per-user expense ledger with signup/login.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
