// Package docs registers the OpenAPI document served at /swagger. It is
// maintained by hand alongside the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/contracts": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contracts"],
                "summary": "Create a contract",
                "parameters": [
                    {"description": "Contract", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ContractRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ContractResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/contracts/calendar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contracts"],
                "summary": "Contracts for the admin calendar",
                "parameters": [
                    {"type": "integer", "description": "Event year", "name": "year", "in": "query"},
                    {"type": "integer", "description": "Event month (1-12)", "name": "month", "in": "query"},
                    {"type": "string", "description": "Effective status or all", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.ContractResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/contracts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contracts"],
                "summary": "Get a contract with freshly computed amounts",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ContractResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contracts"],
                "summary": "Replace the editable fields of a contract",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true},
                    {"description": "Contract", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ContractRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ContractResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "delete": {
                "tags": ["contracts"],
                "summary": "Delete a contract",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/contracts/{id}/amounts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contracts"],
                "summary": "Revenue breakdown of a contract",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.AmountsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/contracts/{id}/flags/{flag}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contracts"],
                "summary": "Toggle or set depositPaid, finalPaymentPaid or eventCompleted",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Flag name", "name": "flag", "in": "path", "required": true},
                    {"description": "Explicit value", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/request.ContractFlagRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ContractResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/contracts/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contracts"],
                "summary": "Override the workflow status; empty clears the override",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true},
                    {"description": "Status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ContractStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ContractResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/contracts/{id}/workflow": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contracts"],
                "summary": "Production checklist of a contract with its progress",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ContractWorkflowResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contracts"],
                "summary": "Replace the production checklist of a contract",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true},
                    {"description": "Checklist", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ContractWorkflowRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ContractWorkflowResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/contracts/{id}/deposit-payments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["deposit-payments"],
                "summary": "Deposit payment attempts of a contract",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Return only the most recent attempt", "name": "latest", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.DepositPaymentResponse"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["deposit-payments"],
                "summary": "Charge the computed deposit of a contract through Mercado Pago",
                "parameters": [
                    {"type": "string", "description": "Contract ID", "name": "id", "in": "path", "required": true},
                    {"description": "Mercado Pago payload, bare or wrapped in mp_payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.DepositPaymentCreateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DepositPaymentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/deposit-payments/{payment_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["deposit-payments"],
                "summary": "Get a deposit payment by id",
                "parameters": [
                    {"type": "string", "description": "Payment ID", "name": "payment_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DepositPaymentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/investments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Investments with their installments, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.InvestmentResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Create an investment and its installment schedule",
                "parameters": [
                    {"description": "Investment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.InvestmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.InvestmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/investments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Get an investment",
                "parameters": [
                    {"type": "string", "description": "Investment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.InvestmentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Update an investment, regenerating installments when the schedule changes",
                "parameters": [
                    {"type": "string", "description": "Investment ID", "name": "id", "in": "path", "required": true},
                    {"description": "Investment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.InvestmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.InvestmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "delete": {
                "tags": ["investments"],
                "summary": "Delete an investment and all of its installments",
                "parameters": [
                    {"type": "string", "description": "Investment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/investments/{id}/installments/{number}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Mark an installment paid or unpaid",
                "parameters": [
                    {"type": "string", "description": "Investment ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Installment number", "name": "number", "in": "path", "required": true},
                    {"description": "Paid flag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.InstallmentStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.InstallmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "CONTRACT_NOT_FOUND"},
                "message": {"type": "string", "example": "Contract not found"}
            }
        },
        "request.ServiceItemRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "quantity": {"type": "integer"}
            }
        },
        "request.StoreItemRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"}
            }
        },
        "request.ContractRequest": {
            "type": "object",
            "required": ["client_name", "event_date"],
            "properties": {
                "client_email": {"type": "string"},
                "client_name": {"type": "string"},
                "client_phone": {"type": "string"},
                "event_date": {"type": "string"},
                "event_location": {"type": "string"},
                "event_time": {"type": "string"},
                "event_type": {"type": "string"},
                "message": {"type": "string"},
                "package_duration": {"type": "string"},
                "package_title": {"type": "string"},
                "payment_method": {"type": "string"},
                "services": {"type": "array", "items": {"$ref": "#/definitions/request.ServiceItemRequest"}},
                "status": {"type": "string"},
                "store_items": {"type": "array", "items": {"$ref": "#/definitions/request.StoreItemRequest"}},
                "total_amount": {"type": "number"},
                "travel_fee": {"type": "number"}
            }
        },
        "request.ContractFlagRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "boolean"}
            }
        },
        "request.ContractStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "request.ContractWorkflowRequest": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/request.WorkflowCategoryRequest"}}
            }
        },
        "request.WorkflowCategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/request.WorkflowTaskRequest"}}
            }
        },
        "request.WorkflowTaskRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "done": {"type": "boolean"},
                "due": {"type": "string"},
                "id": {"type": "string"},
                "note": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "request.DepositPaymentCreateRequest": {
            "type": "object",
            "properties": {
                "mp_payload": {"type": "object"}
            }
        },
        "request.InvestmentRequest": {
            "type": "object",
            "required": ["category", "date", "installments_count", "total_value"],
            "properties": {
                "category": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "installments_count": {"type": "integer", "maximum": 48, "minimum": 1},
                "payment_method": {"type": "string"},
                "product_image_url": {"type": "string"},
                "product_url": {"type": "string"},
                "total_value": {"type": "number"}
            }
        },
        "request.InstallmentStatusRequest": {
            "type": "object",
            "required": ["paid"],
            "properties": {
                "paid": {"type": "boolean"}
            }
        },
        "response.AmountsResponse": {
            "type": "object",
            "properties": {
                "deposit_amount": {"type": "number"},
                "remaining_amount": {"type": "number"},
                "services_total": {"type": "number"},
                "store_total": {"type": "number"},
                "total_amount": {"type": "number"},
                "travel": {"type": "number"}
            }
        },
        "response.ContractResponse": {
            "type": "object",
            "properties": {
                "amounts": {"$ref": "#/definitions/response.AmountsResponse"},
                "client_email": {"type": "string"},
                "client_name": {"type": "string"},
                "client_phone": {"type": "string"},
                "created_at": {"type": "string"},
                "deposit_paid": {"type": "boolean"},
                "event_completed": {"type": "boolean"},
                "event_date": {"type": "string"},
                "event_location": {"type": "string"},
                "event_time": {"type": "string"},
                "event_type": {"type": "string"},
                "final_payment_paid": {"type": "boolean"},
                "id": {"type": "string"},
                "message": {"type": "string"},
                "package_duration": {"type": "string"},
                "package_title": {"type": "string"},
                "payment_method": {"type": "string"},
                "services": {"type": "array", "items": {"$ref": "#/definitions/response.ServiceItemResponse"}},
                "status": {"type": "string"},
                "status_override": {"type": "string"},
                "store_items": {"type": "array", "items": {"$ref": "#/definitions/response.StoreItemResponse"}},
                "travel_fee": {"type": "number"},
                "updated_at": {"type": "string"},
                "workflow_progress": {"$ref": "#/definitions/response.WorkflowProgressResponse"}
            }
        },
        "response.ContractWorkflowResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/response.WorkflowCategoryResponse"}},
                "contract_id": {"type": "string"},
                "progress": {"$ref": "#/definitions/response.WorkflowProgressResponse"}
            }
        },
        "response.WorkflowCategoryResponse": {
            "type": "object",
            "properties": {
                "done": {"type": "integer"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "percent": {"type": "integer"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/response.WorkflowTaskResponse"}},
                "total": {"type": "integer"}
            }
        },
        "response.WorkflowProgressResponse": {
            "type": "object",
            "properties": {
                "delivery_level": {"type": "string", "enum": ["red", "yellow", "green"]},
                "delivery_percent": {"type": "integer"},
                "percents": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "response.WorkflowTaskResponse": {
            "type": "object",
            "properties": {
                "done": {"type": "boolean"},
                "due": {"type": "string"},
                "id": {"type": "string"},
                "note": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "response.ServiceItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "quantity": {"type": "integer"}
            }
        },
        "response.StoreItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"}
            }
        },
        "response.DepositPaymentResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "contract_id": {"type": "string"},
                "id": {"type": "string"},
                "mp_payload": {"type": "object", "additionalProperties": true},
                "mp_payload_raw": {"type": "string"},
                "payment_date": {"type": "string"},
                "payment_id": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "response.InstallmentResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "due_date": {"type": "string"},
                "id": {"type": "string"},
                "installment_number": {"type": "integer"},
                "paid_at": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "response.InvestmentResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "installment_value": {"type": "number"},
                "installments": {"type": "array", "items": {"$ref": "#/definitions/response.InstallmentResponse"}},
                "installments_count": {"type": "integer"},
                "payment_method": {"type": "string"},
                "product_image_url": {"type": "string"},
                "product_url": {"type": "string"},
                "status": {"type": "string"},
                "total_value": {"type": "number"},
                "updated_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Estudio Admin API",
	Description:      "Photography studio admin backend: contracts, revenue breakdown, deposits and investment installments, backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
