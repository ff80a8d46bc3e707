// Package docs registra a especificação OpenAPI servida em /swagger.
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
        "/tenants": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tenants"],
                "summary": "Cria tenant e administrador",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.OnboardTenantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.OnboardTenantResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/tenants/{domain}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tenants"],
                "summary": "Resolve tenant por subdomínio",
                "parameters": [
                    {"type": "string", "description": "Subdomínio", "name": "domain", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TenantResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Autentica um usuário",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Lista usuários do tenant",
                "parameters": [
                    {"type": "string", "description": "Role", "name": "role", "in": "query"},
                    {"type": "string", "description": "Tenant (apenas super admin)", "name": "tenant_id", "in": "query"},
                    {"type": "integer", "description": "Página", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Itens por página", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListUsersResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Busca um usuário do tenant",
                "parameters": [
                    {"type": "string", "description": "ID do usuário", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/webhooks/stripe": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Webhook do Stripe",
                "parameters": [
                    {"type": "string", "description": "Assinatura do evento", "name": "Stripe-Signature", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.WebhookResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/uploads/presign": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "URL pré-assinada de upload",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.PresignUploadRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PresignUploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "instance": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/dto.ValidationError"}}
            }
        },
        "dto.ValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "tag": {"type": "string"}
            }
        },
        "dto.TenantRequest": {
            "type": "object",
            "required": ["country", "domain", "name", "type"],
            "properties": {
                "domain": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["FED", "ORG"]},
                "country": {"type": "string"}
            }
        },
        "dto.AdminRequest": {
            "type": "object",
            "required": ["email", "first_name", "gender", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "gender": {"type": "string", "enum": ["MALE", "FEMALE", "OTHER"]}
            }
        },
        "dto.OnboardTenantRequest": {
            "type": "object",
            "properties": {
                "tenant": {"$ref": "#/definitions/dto.TenantRequest"},
                "admin": {"$ref": "#/definitions/dto.AdminRequest"}
            }
        },
        "dto.TenantResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "domain": {"type": "string"},
                "name": {"type": "string"},
                "country": {"type": "string"},
                "type": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "gender": {"type": "string"},
                "role": {"type": "string"},
                "federation_id": {"type": "string"},
                "organization_id": {"type": "string"},
                "permissions": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"}
            }
        },
        "dto.OnboardTenantResponse": {
            "type": "object",
            "properties": {
                "tenant": {"$ref": "#/definitions/dto.TenantResponse"},
                "admin": {"$ref": "#/definitions/dto.UserResponse"}
            }
        },
        "dto.ListUsersResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "expires_at": {"type": "string"},
                "role": {"type": "string"},
                "tenant_id": {"type": "string"},
                "permissions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.WebhookResponse": {
            "type": "object",
            "properties": {
                "received": {"type": "boolean"},
                "ignored": {"type": "boolean"},
                "replayed": {"type": "boolean"},
                "transaction_id": {"type": "string"},
                "subscription_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.PresignUploadRequest": {
            "type": "object",
            "required": ["content_type", "file_name"],
            "properties": {
                "file_name": {"type": "string"},
                "content_type": {"type": "string"}
            }
        },
        "dto.PresignUploadResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "method": {"type": "string"},
                "key": {"type": "string"},
                "headers": {"type": "object", "additionalProperties": {"type": "string"}},
                "expires_at": {"type": "string"}
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

// SwaggerInfo contém as informações exportadas da API
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Federa API",
	Description:      "Onboarding de tenants, autorização por permissões e reconciliação de pagamentos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
