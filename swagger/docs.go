// Package swagger registers the OpenAPI document served under /swagger.
package swagger

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
    "security": [{"Bearer": []}],
    "paths": {
        "/resources": {
            "get": {
                "summary": "Available rooms and projectors",
                "parameters": [{"name": "kind", "in": "query", "type": "string", "enum": ["room_key", "projector"]}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "unknown kind"}}
            }
        },
        "/schedule/overlaps": {
            "get": {
                "summary": "Teaching slots overlapping a window",
                "parameters": [
                    {"name": "weekday", "in": "query", "type": "string", "required": true},
                    {"name": "from", "in": "query", "type": "string", "required": true, "description": "HH:MM"},
                    {"name": "to", "in": "query", "type": "string", "required": true, "description": "HH:MM"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "bad weekday or time"}}
            }
        },
        "/reservations": {
            "get": {
                "summary": "List reservations newest first",
                "parameters": [
                    {"name": "scope", "in": "query", "type": "string", "enum": ["own", "all"]},
                    {"name": "status", "in": "query", "type": "string", "enum": ["pending", "approved", "rejected", "completed", "cancelled"]},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "scope all needs admin"}}
            },
            "post": {
                "summary": "Submit a reservation",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitRequest"}}],
                "responses": {"201": {"description": "pending reservation"}, "400": {"description": "validation error"}}
            }
        },
        "/reservations/summary": {
            "get": {
                "summary": "Counts per observed status",
                "parameters": [{"name": "scope", "in": "query", "type": "string", "enum": ["own", "all"]}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reservations/{id}": {
            "get": {
                "summary": "Reservation detail",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "not yours"}, "404": {"description": "not found"}}
            }
        },
        "/reservations/{id}/cancel": {
            "post": {
                "summary": "Cancel a pending reservation",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "cancelled"}, "403": {"description": "not the requester"}, "409": {"description": "not pending"}}
            }
        },
        "/reservations/{id}/decision": {
            "post": {
                "summary": "Approve or reject a pending reservation",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecisionRequest"}}
                ],
                "responses": {"200": {"description": "decided"}, "400": {"description": "annotation missing"}, "403": {"description": "admin only"}, "409": {"description": "not pending"}}
            }
        },
        "/notifications": {
            "get": {
                "summary": "Own decision notifications",
                "parameters": [{"name": "limit", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "SubmitRequest": {
            "type": "object",
            "required": ["kind", "resourceId", "purpose", "startAt", "endAt"],
            "properties": {
                "kind": {"type": "string", "enum": ["room_key", "projector"]},
                "resourceId": {"type": "string", "format": "uuid"},
                "purpose": {"type": "string"},
                "startAt": {"type": "string", "format": "date-time"},
                "endAt": {"type": "string", "format": "date-time"}
            }
        },
        "DecisionRequest": {
            "type": "object",
            "required": ["outcome"],
            "properties": {
                "outcome": {"type": "string", "enum": ["approved", "rejected"]},
                "annotation": {"type": "string"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Equipment reservation API",
	Description:      "Room key and projector reservations with admin approval.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
