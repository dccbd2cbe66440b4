// Package docs registers the swagger document for the member API.
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
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "List members",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ListMembersResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "Create member",
                "parameters": [
                    {"description": "Member payload", "name": "member", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateMemberRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.CreateMemberResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "Delete member",
                "parameters": [
                    {"type": "string", "description": "Member ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DeleteMemberResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "Gym statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StatsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"},
                "code": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "model.Address": {
            "type": "object",
            "properties": {
                "street": {"type": "string"},
                "city": {"type": "string"},
                "zipCode": {"type": "string"}
            }
        },
        "model.EmergencyContact": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "relationship": {"type": "string"}
            }
        },
        "model.MedicalInfo": {
            "type": "object",
            "properties": {
                "allergies": {"type": "string"},
                "conditions": {"type": "string"}
            }
        },
        "model.CreateMemberRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "subscriptionType": {"type": "string"},
                "status": {"type": "string"},
                "birthDate": {"type": "string"},
                "goal": {"type": "string"},
                "address": {"$ref": "#/definitions/model.Address"},
                "emergencyContact": {"$ref": "#/definitions/model.EmergencyContact"},
                "medicalInfo": {"$ref": "#/definitions/model.MedicalInfo"}
            }
        },
        "model.Member": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "membershipType": {"type": "string"},
                "membershipStartDate": {"type": "string"},
                "membershipEndDate": {"type": "string"},
                "status": {"type": "string"},
                "isActive": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "birthDate": {"type": "string"},
                "goal": {"type": "string"},
                "address": {"$ref": "#/definitions/model.Address"},
                "emergencyContact": {"$ref": "#/definitions/model.EmergencyContact"},
                "medicalInfo": {"$ref": "#/definitions/model.MedicalInfo"}
            }
        },
        "model.Stats": {
            "type": "object",
            "properties": {
                "totalMembers": {"type": "integer"},
                "newMembersToday": {"type": "integer"},
                "activeMembers": {"type": "integer"},
                "activeSubscriptions": {"type": "integer"},
                "membershipTypes": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "handler.ListMembersResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "members": {"type": "array", "items": {"$ref": "#/definitions/model.Member"}},
                "total": {"type": "integer"}
            }
        },
        "handler.CreateMemberResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/model.Member"},
                "id": {"type": "string"}
            }
        },
        "handler.DeleteMemberResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "deletedUserId": {"type": "string"}
            }
        },
        "handler.StatsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "stats": {"$ref": "#/definitions/model.Stats"}
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
	Title:            "Gymcloud Member API",
	Description:      "Create, list and delete gym members and read membership statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
