// Package docs holds the OpenAPI description served at /swagger/index.html.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/v1/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "token and user"},
                    "401": {"description": "invalid credentials"}
                }
            }
        },
        "/v1/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign up",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "token and user"},
                    "409": {"description": "user already exists"}
                }
            }
        },
        "/v1/auth/session": {
            "get": {
                "tags": ["auth"],
                "summary": "Session check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "authenticated flag"}}
            }
        },
        "/v1/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Logout",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "logged out"}}
            }
        },
        "/v1/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "user"}}
            },
            "patch": {
                "tags": ["auth"],
                "summary": "Update profile",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "updated user"}}
            }
        },
        "/v1/appointments": {
            "get": {
                "tags": ["appointments"],
                "summary": "List my appointments",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "appointments"}}
            },
            "post": {
                "tags": ["appointments"],
                "summary": "Book an appointment",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "appointment"},
                    "403": {"description": "clients only"}
                }
            }
        },
        "/v1/appointments/{id}": {
            "patch": {
                "tags": ["appointments"],
                "summary": "Update an appointment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "appointment"},
                    "404": {"description": "appointment not found"}
                }
            }
        },
        "/v1/cases": {
            "get": {
                "tags": ["cases"],
                "summary": "List my cases",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "cases"}}
            },
            "post": {
                "tags": ["cases"],
                "summary": "Open a case",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "case"},
                    "403": {"description": "lawyers only"}
                }
            }
        },
        "/v1/cases/{id}": {
            "get": {
                "tags": ["cases"],
                "summary": "Get a case",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "case"},
                    "404": {"description": "case not found"}
                }
            },
            "patch": {
                "tags": ["cases"],
                "summary": "Update a case",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "case"}}
            }
        },
        "/v1/cases/{id}/messages": {
            "get": {
                "tags": ["messages"],
                "summary": "List case messages",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "messages"}}
            },
            "post": {
                "tags": ["messages"],
                "summary": "Send a message",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "message"}}
            }
        },
        "/v1/cases/{id}/messages/read": {
            "post": {
                "tags": ["messages"],
                "summary": "Mark case messages read",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "updated count"}}
            }
        },
        "/v1/cases/{id}/documents": {
            "get": {
                "tags": ["documents"],
                "summary": "List case documents",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "documents"}}
            },
            "post": {
                "tags": ["documents"],
                "summary": "Upload a document",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "document"}}
            }
        },
        "/v1/tasks": {
            "get": {
                "tags": ["tasks"],
                "summary": "List my tasks",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "tasks"}}
            },
            "post": {
                "tags": ["tasks"],
                "summary": "Create a task",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "task"}}
            }
        },
        "/v1/tasks/{id}": {
            "patch": {
                "tags": ["tasks"],
                "summary": "Update a task",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "task"}}
            }
        },
        "/v1/notifications": {
            "get": {
                "tags": ["notifications"],
                "summary": "List my notifications",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "notifications"}}
            }
        },
        "/v1/notifications/{id}/read": {
            "post": {
                "tags": ["notifications"],
                "summary": "Mark a notification read",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "notification"}}
            }
        },
        "/v1/directory/lawyers": {
            "get": {
                "tags": ["directory"],
                "summary": "Browse the lawyer roster",
                "parameters": [
                    {"name": "specialty", "in": "query", "type": "string"},
                    {"name": "location", "in": "query", "type": "string"}
                ],
                "produces": ["application/json"],
                "responses": {"200": {"description": "lawyers"}}
            }
        },
        "/v1/directory/testimonials": {
            "get": {
                "tags": ["directory"],
                "summary": "List client testimonials",
                "produces": ["application/json"],
                "responses": {"200": {"description": "testimonials"}}
            }
        },
        "/v1/directory/faqs": {
            "get": {
                "tags": ["directory"],
                "summary": "List frequently asked questions",
                "produces": ["application/json"],
                "responses": {"200": {"description": "faqs"}}
            }
        },
        "/v1/directory/services": {
            "get": {
                "tags": ["directory"],
                "summary": "List platform service offerings",
                "produces": ["application/json"],
                "responses": {"200": {"description": "services"}}
            }
        },
        "/v1/directory/specialties": {
            "get": {
                "tags": ["directory"],
                "summary": "List legal specialties",
                "produces": ["application/json"],
                "responses": {"200": {"description": "specialties"}}
            }
        },
        "/v1/directory/cities": {
            "get": {
                "tags": ["directory"],
                "summary": "List covered cities",
                "produces": ["application/json"],
                "responses": {"200": {"description": "cities"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "produces": ["application/json"],
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/health/ready": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "ok"},
                    "503": {"description": "degraded"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LegalConnect Platform API",
	Description:      "Lawyer-client booking, case management and messaging platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
