// Package docs registers the OpenAPI description served under /swagger.
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
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new account",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}],
                "responses": {"200": {"description": "account", "schema": {"$ref": "#/definitions/User"}}, "400": {"description": "invalid or duplicate email"}}
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Check credentials and email a one-time code",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {"200": {"description": "OTP sent"}, "401": {"description": "invalid credentials"}}
            }
        },
        "/verify-otp": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange a one-time code for a session token",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyOTPRequest"}}],
                "responses": {"200": {"description": "session", "schema": {"$ref": "#/definitions/Session"}}, "400": {"description": "invalid or expired code"}}
            }
        },
        "/me": {
            "get": {"tags": ["auth"], "security": [{"Bearer": []}], "summary": "Current user", "responses": {"200": {"description": "user", "schema": {"$ref": "#/definitions/User"}}}}
        },
        "/logout": {
            "post": {"tags": ["auth"], "summary": "Acknowledge a client-side logout", "responses": {"200": {"description": "ok"}}}
        },
        "/exam/create": {
            "post": {"tags": ["exam"], "security": [{"Bearer": []}], "summary": "Create an exam", "responses": {"200": {"description": "exam", "schema": {"$ref": "#/definitions/Exam"}}, "400": {"description": "invalid payload"}}}
        },
        "/exam/list": {
            "get": {"tags": ["exam"], "security": [{"Bearer": []}], "summary": "List exams", "responses": {"200": {"description": "exams", "schema": {"type": "array", "items": {"$ref": "#/definitions/Exam"}}}}}
        },
        "/exam/{id}": {
            "get": {"tags": ["exam"], "security": [{"Bearer": []}], "summary": "Get an exam", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "exam", "schema": {"$ref": "#/definitions/Exam"}}, "404": {"description": "not found"}}}
        },
        "/exam/update/{id}": {
            "put": {"tags": ["exam"], "security": [{"Bearer": []}], "summary": "Replace an exam's title, questions and options", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "exam", "schema": {"$ref": "#/definitions/Exam"}}, "403": {"description": "not the creator"}, "404": {"description": "not found"}}}
        },
        "/exam/delete/{id}": {
            "delete": {"tags": ["exam"], "security": [{"Bearer": []}], "summary": "Delete an exam", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "deleted"}, "404": {"description": "not found"}}}
        },
        "/exam/results/{examId}": {
            "get": {"tags": ["results"], "security": [{"Bearer": []}], "summary": "Scores of every attempt at an exam", "parameters": [{"in": "path", "name": "examId", "type": "string", "required": true}], "responses": {"200": {"description": "results"}, "404": {"description": "not found"}}}
        },
        "/exam/drafts": {
            "post": {"tags": ["exam"], "security": [{"Bearer": []}], "summary": "Generate question drafts", "responses": {"200": {"description": "drafts"}, "403": {"description": "students may not request drafts"}, "503": {"description": "drafts not configured"}}}
        },
        "/studentexam/submit": {
            "post": {"tags": ["results"], "security": [{"Bearer": []}], "summary": "Submit answers", "parameters": [{"in": "query", "name": "studentId", "type": "string", "required": true}], "responses": {"200": {"description": "score"}, "403": {"description": "not the caller"}, "404": {"description": "exam not found"}}}
        },
        "/studentexam/results/{studentId}": {
            "get": {"tags": ["results"], "security": [{"Bearer": []}], "summary": "A student's results", "parameters": [{"in": "path", "name": "studentId", "type": "string", "required": true}], "responses": {"200": {"description": "results"}}}
        }
    },
    "definitions": {
        "RegisterRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string", "enum": ["Student", "Teacher", "Admin"]}}},
        "LoginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "VerifyOTPRequest": {"type": "object", "properties": {"email": {"type": "string"}, "otp": {"type": "string"}}},
        "User": {"type": "object", "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}}},
        "Session": {"type": "object", "properties": {"token": {"type": "string"}, "id": {"type": "string"}, "username": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}}},
        "Option": {"type": "object", "properties": {"id": {"type": "string"}, "text": {"type": "string"}}},
        "Question": {"type": "object", "properties": {"id": {"type": "string"}, "text": {"type": "string"}, "marks": {"type": "integer"}, "correctOptionId": {"type": "string"}, "options": {"type": "array", "items": {"$ref": "#/definitions/Option"}}}},
        "Exam": {"type": "object", "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "createdById": {"type": "string"}, "createdAt": {"type": "string"}, "questions": {"type": "array", "items": {"$ref": "#/definitions/Question"}}}}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Exam Portal API",
	Description:      "OTP login, exam authoring, submissions and results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
