// Package docs registra la documentación Swagger 2.0 de la API en swag.
// Se mantiene a mano junto con las anotaciones godoc de los handlers.
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
        "/census": {
            "get": {
                "produces": ["application/json"],
                "tags": ["zoo"],
                "summary": "Censo por variante",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/zoo.censusResponse"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/concert": {
            "get": {
                "description": "Cada residente hace su sonido, en orden de admisión.",
                "produces": ["application/json"],
                "tags": ["zoo"],
                "summary": "Concierto",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/residents": {
            "get": {
                "description": "Lista todos los residentes por orden de admisión.",
                "produces": ["application/json"],
                "tags": ["residents"],
                "summary": "Listar residentes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/zoo.residentResponse"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Crea un animal con la fábrica (type case-insensitive) y lo registra como residente. Un type desconocido devuelve 400 con \"Unknown animal type: <type>\" y, si hay uno parecido, un hint.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["residents"],
                "summary": "Admitir un animal",
                "parameters": [
                    {
                        "description": "Tipo y argumentos del constructor",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/zoo.admitRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/zoo.residentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/zoo.errorResponse"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/residents/{residentID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["residents"],
                "summary": "Ver un residente",
                "parameters": [
                    {"type": "string", "description": "ID del residente", "name": "residentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/zoo.residentResponse"}},
                    "404": {"description": "resident not found", "schema": {"type": "string"}}
                }
            }
        },
        "/residents/{residentID}/actions": {
            "post": {
                "description": "Acciones comunes (sound, move, eat, describe) o propias de la variante (learn_trick, perform_trick, tricks, purr, lose_life, fly, set_fly_ability). Un truco desconocido o un gato sin vidas no son errores: vienen en message.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["residents"],
                "summary": "Ejecutar una acción sobre un residente",
                "parameters": [
                    {"type": "string", "description": "ID del residente", "name": "residentID", "in": "path", "required": true},
                    {
                        "description": "Acción y argumentos",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/zoo.performRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/zoo.performResponse"}},
                    "400": {"description": "invalid json / argumentos faltantes", "schema": {"type": "string"}},
                    "404": {"description": "resident not found", "schema": {"type": "string"}},
                    "422": {"description": "la variante no soporta la acción", "schema": {"type": "string"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/residents/{residentID}/journal": {
            "get": {
                "description": "Lista lo que le pasó al residente, más reciente primero.",
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Diario de un residente",
                "parameters": [
                    {"type": "string", "description": "ID del residente", "name": "residentID", "in": "path", "required": true},
                    {"type": "integer", "description": "Máximo de entradas (1-200). Por defecto 50", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Lista CSV de acciones a incluir (ej: admitted,learn_trick)", "name": "actions", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/journal.entryResponse"}}},
                    "404": {"description": "resident not found", "schema": {"type": "string"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "journal.entryResponse": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "id": {"type": "string"},
                "message": {"type": "string"},
                "recorded_at": {"type": "string"},
                "resident_id": {"type": "string"}
            }
        },
        "zoo.admitRequest": {
            "type": "object",
            "properties": {
                "args": {"type": "array", "items": {"type": "object"}},
                "type": {"type": "string", "enum": ["dog", "cat", "bird"]}
            }
        },
        "zoo.censusResponse": {
            "type": "object",
            "properties": {
                "birds": {"type": "integer"},
                "cats": {"type": "integer"},
                "dogs": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "zoo.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "hint": {"type": "string"}
            }
        },
        "zoo.performRequest": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string",
                    "enum": ["sound", "move", "eat", "describe", "learn_trick", "perform_trick", "tricks", "purr", "lose_life", "fly", "set_fly_ability"]
                },
                "can_fly": {"type": "boolean"},
                "food": {"type": "string"},
                "trick": {"type": "string"}
            }
        },
        "zoo.performResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "resident": {"$ref": "#/definitions/zoo.residentResponse"}
            }
        },
        "zoo.residentResponse": {
            "type": "object",
            "properties": {
                "admitted_at": {"type": "string"},
                "age": {"type": "integer"},
                "breed": {"type": "string"},
                "can_fly": {"type": "boolean"},
                "color": {"type": "string"},
                "description": {"type": "string"},
                "health": {"type": "integer"},
                "id": {"type": "string"},
                "lives": {"type": "integer"},
                "name": {"type": "string"},
                "tricks": {"type": "array", "items": {"type": "string"}},
                "type": {"type": "string", "enum": ["dog", "cat", "bird"]},
                "updated_at": {"type": "string"},
                "wingspan": {"type": "number"}
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
	Title:            "Animal Zoo API",
	Description:      "Residentes creados por la fábrica de animales (dog, cat, bird), sus acciones y su diario.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
