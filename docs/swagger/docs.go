// Package swagger registers the OpenAPI description served under /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/csrf": {
            "get": {
                "description": "Sets the csrftoken cookie and returns the same token for the X-CSRFToken header.",
                "produces": ["application/json"],
                "tags": ["Security"],
                "summary": "Issue an anti-forgery token",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/memorials/{id}/banner": {
            "get": {
                "description": "Returns the stored banner, or the default colour banner when none was chosen, with the style a page renders for it.",
                "produces": ["application/json"],
                "tags": ["Banner"],
                "summary": "Get a memorial banner",
                "parameters": [
                    {"type": "string", "description": "Memorial ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BannerResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/memorials/{id}/update-banner/": {
            "post": {
                "description": "Persists the banner kind and storage value chosen in the selection dialog.",
                "consumes": ["multipart/form-data", "application/x-www-form-urlencoded", "application/json"],
                "produces": ["application/json"],
                "tags": ["Banner"],
                "summary": "Update a memorial banner",
                "parameters": [
                    {"type": "string", "description": "Memorial ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Anti-forgery token", "name": "X-CSRFToken", "in": "header", "required": true},
                    {"type": "string", "description": "image or color", "name": "banner_type", "in": "formData", "required": true},
                    {"type": "string", "description": "Relative image path or CSS colour", "name": "banner_value", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UpdateBannerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Style": {
            "type": "object",
            "properties": {
                "background_image": {"type": "string"},
                "background_color": {"type": "string"},
                "class": {"type": "string", "enum": ["banner-image", "banner-color", ""]}
            }
        },
        "handler.BannerResponse": {
            "type": "object",
            "properties": {
                "memorial_id": {"type": "string"},
                "banner_type": {"type": "string", "enum": ["image", "color"]},
                "banner_value": {"type": "string"},
                "updated_at": {"type": "string"},
                "style": {"$ref": "#/definitions/domain.Style"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "ray_id": {"type": "string"}
            }
        },
        "handler.UpdateBannerResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "banner_type": {"type": "string"},
                "banner_value": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Memorial Banner API",
	Description:      "Persists the banner (background image or colour) chosen for a memorial page.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
