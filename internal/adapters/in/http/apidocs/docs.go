// Package apidocs registers the API description served under /swagger.
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
	"swagger": "2.0",
	"info": {
		"title": "{{.Title}}",
		"description": "{{escape .Description}}",
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"schemes": {{ marshal .Schemes }},
	"paths": {
		"/health": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Liveness and dependency check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Health"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				}
			}
		},
		"/metrics": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Prometheus metrics",
				"responses": {
					"200": {
						"description": "OK"
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"produces": [
					"text/plain"
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Sign in with username or email",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/LoginRequest"
						}
					}
				]
			}
		},
		"/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Revoke the current token",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a worker account",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/RegisterRequest"
						}
					}
				]
			}
		},
		"/auth/forgot-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Email a password reset link",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ForgotPasswordRequest"
						}
					}
				]
			}
		},
		"/auth/reset-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Reset a password with a token",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ResetPasswordRequest"
						}
					}
				]
			}
		},
		"/auth/change-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Change the current password",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ChangePasswordRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/users": {
			"get": {
				"tags": [
					"accounts"
				],
				"summary": "List worker accounts",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/products": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "List products",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PagedEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "1-based page, default 1"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "page size, default 10, at most 100"
					},
					{
						"name": "categoryId",
						"in": "query",
						"type": "string",
						"required": false,
						"format": "uuid"
					},
					{
						"name": "difficultyId",
						"in": "query",
						"type": "string",
						"required": false,
						"format": "uuid"
					},
					{
						"name": "q",
						"in": "query",
						"type": "string",
						"required": false
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"catalog"
				],
				"summary": "Create a product",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "name",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "prodCode",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "categoryId",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "difficultyId",
						"in": "formData",
						"type": "string",
						"required": false
					},
					{
						"name": "image",
						"in": "formData",
						"type": "file",
						"required": true,
						"description": "PDF design file"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"multipart/form-data"
				]
			}
		},
		"/admin/products/category": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "List categories",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/products/difficulty": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "List difficulties with bonus tables",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/products/size": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "List sizes",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/products/{id}": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "Get a product",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"type": "string",
						"format": "uuid",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"catalog"
				],
				"summary": "Update a product",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"type": "string",
						"format": "uuid",
						"required": true
					},
					{
						"name": "name",
						"in": "formData",
						"type": "string",
						"required": false
					},
					{
						"name": "prodCode",
						"in": "formData",
						"type": "string",
						"required": false
					},
					{
						"name": "categoryId",
						"in": "formData",
						"type": "string",
						"required": false
					},
					{
						"name": "difficultyId",
						"in": "formData",
						"type": "string",
						"required": false
					},
					{
						"name": "image",
						"in": "formData",
						"type": "file",
						"required": false,
						"description": "PDF design file"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"multipart/form-data"
				]
			},
			"delete": {
				"tags": [
					"catalog"
				],
				"summary": "Delete a product",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"type": "string",
						"format": "uuid",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/orders": {
			"post": {
				"tags": [
					"orders"
				],
				"summary": "Create one or many orders",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/OrderRequest"
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/orders/unassigned": {
			"get": {
				"tags": [
					"orders"
				],
				"summary": "List orders with unassigned quantity",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PagedEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "1-based page, default 1"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "page size, default 10, at most 100"
					},
					{
						"name": "po",
						"in": "query",
						"type": "string",
						"required": false
					},
					{
						"name": "search",
						"in": "query",
						"type": "string",
						"required": false
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/assignments": {
			"post": {
				"tags": [
					"assignments"
				],
				"summary": "Assign order quantities to a worker",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/BulkAssignRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/assignments/available": {
			"get": {
				"tags": [
					"assignments"
				],
				"summary": "List assignments with deliverable quantity",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PagedEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "1-based page, default 1"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "page size, default 10, at most 100"
					},
					{
						"name": "search",
						"in": "query",
						"type": "string",
						"required": false
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/assignments/pending": {
			"get": {
				"tags": [
					"assignments"
				],
				"summary": "List assignments awaiting returns",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PagedEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "1-based page, default 1"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "page size, default 10, at most 100"
					},
					{
						"name": "userId",
						"in": "query",
						"type": "string",
						"required": false,
						"format": "uuid"
					},
					{
						"name": "po",
						"in": "query",
						"type": "string",
						"required": false
					},
					{
						"name": "search",
						"in": "query",
						"type": "string",
						"required": false
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/returns/unconfirm": {
			"get": {
				"tags": [
					"returns"
				],
				"summary": "List unconfirmed returns grouped by worker",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "userId",
						"in": "query",
						"type": "string",
						"required": false,
						"format": "uuid"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/returns/confirm": {
			"post": {
				"tags": [
					"returns"
				],
				"summary": "Confirm returns with accepted quantities",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ConfirmReturnsRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/deliveries": {
			"get": {
				"tags": [
					"deliveries"
				],
				"summary": "List deliveries, newest day first",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PagedEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "1-based page, default 1"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "page size, default 10, at most 100"
					},
					{
						"name": "po",
						"in": "query",
						"type": "string",
						"required": false
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"deliveries"
				],
				"summary": "Deliver quantities from assignments",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/BulkDeliverRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/deliveries/{id}/export": {
			"get": {
				"tags": [
					"deliveries"
				],
				"summary": "Download the delivery note",
				"responses": {
					"200": {
						"description": "OK"
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"type": "string",
						"format": "uuid",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				]
			}
		},
		"/admin/payments": {
			"get": {
				"tags": [
					"payments"
				],
				"summary": "Preview what a worker can be paid",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "1-based page, default 1"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "page size, default 10, at most 100"
					},
					{
						"name": "userId",
						"in": "query",
						"type": "string",
						"required": true,
						"format": "uuid"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"payments"
				],
				"summary": "Pay a worker for confirmed returns",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/SavePaymentRequest"
						}
					},
					{
						"name": "Idempotency-Key",
						"in": "header",
						"type": "string",
						"required": false
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/payments/stats": {
			"get": {
				"tags": [
					"payments"
				],
				"summary": "Payment totals for a year or month",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "year",
						"in": "query",
						"type": "integer",
						"required": false
					},
					{
						"name": "month",
						"in": "query",
						"type": "integer",
						"required": false
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/user/returns": {
			"post": {
				"tags": [
					"returns"
				],
				"summary": "Submit returns",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/ReturnItemRequest"
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/user/returns/unconfirm": {
			"patch": {
				"tags": [
					"returns"
				],
				"summary": "Edit unconfirmed returns",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/ReturnQuantityRequest"
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/user/returns/{id}": {
			"delete": {
				"tags": [
					"returns"
				],
				"summary": "Delete an unconfirmed return",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"type": "string",
						"format": "uuid",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/user/returns/shortage": {
			"get": {
				"tags": [
					"returns"
				],
				"summary": "List own assignments with outstanding quantity",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PagedEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "1-based page, default 1"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "page size, default 10, at most 100"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/user/returns/unconfirmuser": {
			"get": {
				"tags": [
					"returns"
				],
				"summary": "List own unconfirmed returns",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PagedEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "1-based page, default 1"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "page size, default 10, at most 100"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/user/payments/user": {
			"get": {
				"tags": [
					"payments"
				],
				"summary": "Preview own payable returns",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SuccessEnvelope"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "1-based page, default 1"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"required": false,
						"description": "page size, default 10, at most 100"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"SuccessEnvelope": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"PagedEnvelope": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"pagination": {
					"$ref": "#/definitions/Pagination"
				}
			}
		},
		"Pagination": {
			"type": "object",
			"properties": {
				"page": {
					"type": "integer"
				},
				"limit": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"ErrorEnvelope": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"error": {
					"type": "object",
					"properties": {
						"code": {
							"type": "string"
						},
						"message": {
							"type": "string"
						},
						"details": {
							"type": "object"
						}
					}
				}
			}
		},
		"Health": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				}
			}
		},
		"LoginRequest": {
			"type": "object",
			"properties": {
				"loginIdentifier": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"loginIdentifier",
				"password"
			]
		},
		"RegisterRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string",
					"format": "email"
				},
				"password": {
					"type": "string",
					"minLength": 6
				},
				"fullname": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"email",
				"password",
				"fullname",
				"phone"
			]
		},
		"ForgotPasswordRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"format": "email"
				}
			},
			"required": [
				"email"
			]
		},
		"ResetPasswordRequest": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 6
				}
			},
			"required": [
				"token",
				"password"
			]
		},
		"ChangePasswordRequest": {
			"type": "object",
			"properties": {
				"oldPassword": {
					"type": "string"
				},
				"newPassword": {
					"type": "string",
					"minLength": 6
				}
			},
			"required": [
				"oldPassword",
				"newPassword"
			]
		},
		"OrderRequest": {
			"type": "object",
			"properties": {
				"po": {
					"type": "string"
				},
				"prodCode": {
					"type": "string"
				},
				"size": {
					"type": "string"
				},
				"qty": {
					"type": "integer",
					"minimum": 1
				},
				"deadline": {
					"type": "string",
					"format": "date-time"
				},
				"note": {
					"type": "string"
				}
			},
			"required": [
				"po",
				"prodCode",
				"qty",
				"deadline"
			]
		},
		"BulkAssignRequest": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string",
					"format": "uuid"
				},
				"items": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"ordId": {
								"type": "string",
								"format": "uuid"
							},
							"qty": {
								"type": "integer"
							}
						},
						"required": [
							"ordId"
						]
					}
				}
			},
			"required": [
				"userId",
				"items"
			]
		},
		"ReturnItemRequest": {
			"type": "object",
			"properties": {
				"assignId": {
					"type": "string",
					"format": "uuid"
				},
				"qty": {
					"type": "integer"
				},
				"note": {
					"type": "string"
				}
			},
			"required": [
				"assignId"
			]
		},
		"ReturnQuantityRequest": {
			"type": "object",
			"properties": {
				"returnId": {
					"type": "string",
					"format": "uuid"
				},
				"qty": {
					"type": "integer"
				}
			},
			"required": [
				"returnId"
			]
		},
		"ConfirmReturnsRequest": {
			"type": "object",
			"properties": {
				"ids": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"id": {
								"type": "string",
								"format": "uuid"
							},
							"qty": {
								"type": "integer"
							}
						},
						"required": [
							"id"
						]
					}
				}
			},
			"required": [
				"ids"
			]
		},
		"BulkDeliverRequest": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"id": {
								"type": "string",
								"format": "uuid"
							},
							"qty": {
								"type": "integer"
							},
							"note": {
								"type": "string"
							}
						},
						"required": [
							"id"
						]
					}
				}
			},
			"required": [
				"items"
			]
		},
		"SavePaymentRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"grandTotal": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"products": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"listIdReturn": {
					"type": "array",
					"items": {
						"type": "string",
						"format": "uuid"
					}
				}
			},
			"required": [
				"username",
				"products",
				"listIdReturn"
			]
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

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Embroidery production ledger API",
	Description:      "Orders, assignments, returns, deliveries and payments of an embroidery workshop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
