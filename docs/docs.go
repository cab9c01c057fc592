// Package docs holds the OpenAPI description served under /swagger/.
// Regenerate with: swag init -g internal/server/server.go
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
        "/healthz": {
            "get": {
                "description": "Returns OK if the service is running",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Returns OK if the mod catalog is loaded",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/actions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "crafting"
                ],
                "summary": "List crafting actions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/crafting.ActionInfo"
                            }
                        }
                    }
                }
            }
        },
        "/api/v1/craft/enumerate": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "crafting"
                ],
                "summary": "Enumerate action outcomes",
                "parameters": [
                    {
                        "description": "Item and action",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.EnumerateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.EnumerateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/craft/simulate": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "crafting"
                ],
                "summary": "Simulate one action",
                "parameters": [
                    {
                        "description": "Item, action and optional seed",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SimulateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.SimulateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/craft/batch": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "crafting"
                ],
                "summary": "Batch simulation",
                "parameters": [
                    {
                        "description": "Item, action sequence and episode count",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BatchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/simulation.Report"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.ItemState": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "example": "one_hand_mace"
                },
                "attribute_type": {
                    "type": "string",
                    "example": "one hand mace"
                },
                "item_level": {
                    "type": "integer",
                    "example": 80
                },
                "rarity": {
                    "type": "string",
                    "enum": [
                        "normal",
                        "magic",
                        "rare",
                        "unique"
                    ]
                },
                "quality": {
                    "type": "integer"
                },
                "open_sockets": {
                    "type": "integer"
                },
                "corrupted": {
                    "type": "boolean"
                },
                "identified": {
                    "type": "boolean"
                },
                "implicit": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Modifier"
                    }
                },
                "enchant": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Modifier"
                    }
                },
                "fractured": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Modifier"
                    }
                },
                "explicit": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Modifier"
                    }
                }
            }
        },
        "domain.Modifier": {
            "type": "object",
            "properties": {
                "tier_id": {
                    "type": "string"
                },
                "affix_type": {
                    "type": "string",
                    "enum": [
                        "prefix",
                        "suffix",
                        "implicit",
                        "enchant"
                    ]
                },
                "sub_values": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                },
                "value_ranges": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ValueRange"
                    }
                },
                "mod_tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.ValueRange": {
            "type": "object",
            "properties": {
                "min": {
                    "type": "number"
                },
                "max": {
                    "type": "number"
                }
            }
        },
        "domain.Delta": {
            "type": "object",
            "properties": {
                "added": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Modifier"
                    }
                },
                "removed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Modifier"
                    }
                },
                "fractured": {
                    "$ref": "#/definitions/domain.Modifier"
                },
                "rerolled": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Modifier"
                    }
                },
                "new_rarity": {
                    "type": "string"
                },
                "new_quality": {
                    "type": "integer"
                },
                "new_socket_count": {
                    "type": "integer"
                },
                "corrupt": {
                    "type": "boolean"
                },
                "identify": {
                    "type": "boolean"
                }
            }
        },
        "domain.Outcome": {
            "type": "object",
            "properties": {
                "probability": {
                    "type": "number"
                },
                "delta": {
                    "$ref": "#/definitions/domain.Delta"
                }
            }
        },
        "crafting.ActionInfo": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "guard": {
                    "type": "string"
                }
            }
        },
        "handler.EnumerateRequest": {
            "type": "object",
            "required": [
                "item",
                "action"
            ],
            "properties": {
                "item": {
                    "$ref": "#/definitions/domain.ItemState"
                },
                "action": {
                    "type": "string"
                },
                "seed": {
                    "type": "integer"
                }
            }
        },
        "handler.EnumerateResponse": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string"
                },
                "seed": {
                    "type": "integer"
                },
                "outcomes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Outcome"
                    }
                }
            }
        },
        "handler.SimulateRequest": {
            "type": "object",
            "required": [
                "item",
                "action"
            ],
            "properties": {
                "item": {
                    "$ref": "#/definitions/domain.ItemState"
                },
                "action": {
                    "type": "string"
                },
                "seed": {
                    "type": "integer"
                }
            }
        },
        "handler.SimulateResponse": {
            "type": "object",
            "properties": {
                "seed": {
                    "type": "integer"
                },
                "action": {
                    "type": "string"
                },
                "outcomes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Outcome"
                    }
                },
                "chosen": {
                    "$ref": "#/definitions/domain.Outcome"
                },
                "chosen_index": {
                    "type": "integer"
                },
                "item": {
                    "$ref": "#/definitions/domain.ItemState"
                },
                "noop": {
                    "type": "boolean"
                }
            }
        },
        "handler.BatchRequest": {
            "type": "object",
            "required": [
                "item",
                "actions",
                "episodes"
            ],
            "properties": {
                "item": {
                    "$ref": "#/definitions/domain.ItemState"
                },
                "actions": {
                    "type": "array",
                    "maxItems": 256,
                    "minItems": 1,
                    "items": {
                        "type": "string"
                    }
                },
                "episodes": {
                    "type": "integer",
                    "minimum": 1
                },
                "seed": {
                    "type": "integer"
                },
                "keep_items": {
                    "type": "boolean"
                }
            }
        },
        "simulation.Report": {
            "type": "object",
            "properties": {
                "episodes": {
                    "type": "integer"
                },
                "seed": {
                    "type": "integer"
                },
                "rarity_histogram": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "mean_explicit_count": {
                    "type": "number"
                },
                "noops": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "corrupted": {
                    "type": "integer"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ItemState"
                    }
                },
                "duration_ms": {
                    "type": "integer"
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
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
	Title:            "Crafting Simulation API",
	Description:      "Enumerates and samples the outcomes of item crafting actions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
