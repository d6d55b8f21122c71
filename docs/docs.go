// Package docs registers the Swagger specification served at
// /swagger/doc.json.
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
        "/api/blogs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["blogs"],
                "summary": "List blogs",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/blogs.Blog"}
                        }
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["blogs"],
                "summary": "Create a blog",
                "parameters": [
                    {
                        "description": "Blog to create",
                        "name": "blogBody",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/blogs.CreateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/blogs.Blog"}},
                    "400": {"description": "Missing title or url", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "401": {"description": "Invalid or missing token", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/api/blogs/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["blogs"],
                "summary": "Get a blog",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "Blog ID"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/blogs.Blog"}},
                    "404": {"description": "Blog not found", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["blogs"],
                "summary": "Update blog likes",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "Blog ID"},
                    {
                        "description": "New like count",
                        "name": "likesBody",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/blogs.UpdateLikesRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/blogs.Blog"}},
                    "404": {"description": "Blog not found", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["blogs"],
                "summary": "Delete a blog",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "Blog ID"}
                ],
                "responses": {
                    "204": {"description": "Blog deleted"},
                    "401": {"description": "Invalid token or not the owner", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "404": {"description": "Blog not found", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/api/blogs/{id}/comments": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["blogs"],
                "summary": "Comment on a blog",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "Blog ID"},
                    {
                        "description": "Comment to append",
                        "name": "commentBody",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/blogs.CommentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/blogs.Blog"}},
                    "400": {"description": "Empty comment", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "404": {"description": "Blog not found", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [
                    {
                        "description": "User credentials",
                        "name": "loginBody",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/auth.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/auth.SessionResponse"}},
                    "400": {"description": "Malformed request body", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/users.UserWithBlogs"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Registration details",
                        "name": "registerBody",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/users.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "User created", "schema": {"$ref": "#/definitions/auth.SessionResponse"}},
                    "400": {"description": "Validation failure or duplicate username", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/api/users/info": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.User"}},
                    "401": {"description": "Invalid or missing token", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperror.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "a description of the error"}
            }
        },
        "auth.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "example": "root"},
                "password": {"type": "string", "example": "swordfish"}
            }
        },
        "auth.SessionResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "username": {"type": "string", "example": "root"},
                "id": {"type": "integer", "example": 1},
                "avatar": {"type": "string"}
            }
        },
        "auth.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "avatar": {"type": "string"},
                "blogs": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "blogs.Blog": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "author": {"type": "string"},
                "url": {"type": "string"},
                "content": {"type": "string"},
                "likes": {"type": "integer"},
                "comments": {"type": "array", "items": {"type": "string"}},
                "user": {"$ref": "#/definitions/blogs.Owner"}
            }
        },
        "blogs.CommentRequest": {
            "type": "object",
            "properties": {
                "comment": {"type": "string", "example": "great post"}
            }
        },
        "blogs.CreateRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "new blog"},
                "author": {"type": "string", "example": "cody"},
                "url": {"type": "string", "example": "https://example.com"},
                "content": {"type": "string", "example": "blog body"},
                "likes": {"type": "integer", "example": 0}
            }
        },
        "blogs.Owner": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "blogs.UpdateLikesRequest": {
            "type": "object",
            "properties": {
                "likes": {"type": "integer", "example": 200}
            }
        },
        "users.RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "example": "fakeuser"},
                "password": {"type": "string", "example": "password"},
                "avatar": {"type": "string"}
            }
        },
        "users.UserWithBlogs": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "avatar": {"type": "string"},
                "blogs": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/users.BlogSummary"}
                }
            }
        },
        "users.BlogSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type 'Bearer YOUR_JWT_TOKEN' to authorize",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bloglist API",
	Description:      "Blogging backend with token-based authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
