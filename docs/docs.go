// Package docs registers the swagger document served by GET /api.
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
        "/api": {
            "get": {
                "description": "Returns the API document of every available endpoint",
                "produces": ["application/json"],
                "tags": ["api"],
                "summary": "Describe endpoints",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/topics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "Get all topics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.TopicsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/articles": {
            "get": {
                "description": "Lists articles without body, each with its comment count. Sorted by created_at desc unless sort_by and order are given",
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Get articles",
                "parameters": [
                    {
                        "enum": ["article_id", "title", "topic", "author", "created_at", "votes", "comment_count", "article_img_url"],
                        "type": "string",
                        "description": "Sort column",
                        "name": "sort_by",
                        "in": "query"
                    },
                    {
                        "enum": ["asc", "desc"],
                        "type": "string",
                        "description": "Sort direction",
                        "name": "order",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Topic slug",
                        "name": "topic",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.ArticlesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/articles/{article_id}": {
            "get": {
                "description": "Returns a single article with body and comment count",
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Get article by ID",
                "parameters": [
                    {"type": "integer", "description": "Article ID", "name": "article_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.ArticleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Adds inc_votes (may be negative) to the article votes and returns the updated article",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Adjust article votes",
                "parameters": [
                    {"type": "integer", "description": "Article ID", "name": "article_id", "in": "path", "required": true},
                    {"description": "Vote delta", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/board.VoteInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.Article"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/articles/{article_id}/comments": {
            "get": {
                "description": "Returns the comments of an article, newest first",
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Get article comments",
                "parameters": [
                    {"type": "integer", "description": "Article ID", "name": "article_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Comment"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Add a comment",
                "parameters": [
                    {"type": "integer", "description": "Article ID", "name": "article_id", "in": "path", "required": true},
                    {"description": "Comment", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/board.CommentInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/rest.CreatedComment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/articles/{article_id}/comments/{comment_id}": {
            "delete": {
                "tags": ["comments"],
                "summary": "Delete a comment",
                "parameters": [
                    {"type": "integer", "description": "Article ID", "name": "article_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Comment ID", "name": "comment_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get all users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.User"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "board.CommentInput": {
            "type": "object",
            "required": ["body", "username"],
            "properties": {
                "body": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "board.VoteInput": {
            "type": "object",
            "required": ["inc_votes"],
            "properties": {
                "inc_votes": {"type": "integer"}
            }
        },
        "rest.Article": {
            "type": "object",
            "properties": {
                "article_id": {"type": "integer"},
                "article_img_url": {"type": "string"},
                "author": {"type": "string"},
                "body": {"type": "string"},
                "created_at": {"type": "string"},
                "title": {"type": "string"},
                "topic": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "rest.ArticleDetail": {
            "type": "object",
            "properties": {
                "article_id": {"type": "integer"},
                "article_img_url": {"type": "string"},
                "author": {"type": "string"},
                "body": {"type": "string"},
                "comment_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "title": {"type": "string"},
                "topic": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "rest.ArticleResponse": {
            "type": "object",
            "properties": {
                "article": {"$ref": "#/definitions/rest.ArticleDetail"}
            }
        },
        "rest.ArticleSummary": {
            "type": "object",
            "properties": {
                "article_id": {"type": "integer"},
                "article_img_url": {"type": "string"},
                "author": {"type": "string"},
                "comment_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "title": {"type": "string"},
                "topic": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "rest.ArticlesResponse": {
            "type": "object",
            "properties": {
                "articles": {"type": "array", "items": {"$ref": "#/definitions/rest.ArticleSummary"}}
            }
        },
        "rest.Comment": {
            "type": "object",
            "properties": {
                "article_id": {"type": "integer"},
                "author": {"type": "string"},
                "body": {"type": "string"},
                "comment_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "rest.CreatedComment": {
            "type": "object",
            "properties": {
                "body": {"type": "string"},
                "comment_id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "rest.ErrorResponse": {
            "type": "object",
            "properties": {
                "msg": {"type": "string"}
            }
        },
        "rest.Topic": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "rest.TopicsResponse": {
            "type": "object",
            "properties": {
                "topics": {"type": "array", "items": {"$ref": "#/definitions/rest.Topic"}}
            }
        },
        "rest.User": {
            "type": "object",
            "properties": {
                "avatar_url": {"type": "string"},
                "name": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Discussion Board API",
	Description:      "Articles, comments, topics and users of a discussion board",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
