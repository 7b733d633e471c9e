package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bank Account API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Bank Account API",
    "version": "1.0.0"
  },
  "paths": {
    "/accounts/create/{owner}": {
      "post": {
        "summary": "Create account for owner",
        "parameters": [
          {
            "name": "owner",
            "in": "path",
            "required": true,
            "schema": { "type": "string" }
          }
        ],
        "responses": {
          "201": {
            "description": "Created account",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Account" }
              }
            }
          },
          "400": { "description": "Invalid owner" }
        }
      }
    },
    "/accounts": {
      "get": {
        "summary": "List all accounts",
        "responses": {
          "200": {
            "description": "All accounts",
            "content": {
              "application/json": {
                "schema": {
                  "type": "array",
                  "items": { "$ref": "#/components/schemas/Account" }
                }
              }
            }
          }
        }
      }
    },
    "/accounts/{accountNumber}": {
      "get": {
        "summary": "Get account by number",
        "parameters": [
          {
            "name": "accountNumber",
            "in": "path",
            "required": true,
            "schema": { "type": "integer", "format": "int64" }
          }
        ],
        "responses": {
          "200": {
            "description": "Account",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Account" }
              }
            }
          },
          "404": { "description": "No account with this number" }
        }
      }
    },
    "/accounts/update": {
      "put": {
        "summary": "Replace an account record",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/Account" }
            }
          }
        },
        "responses": {
          "200": { "description": "Updated account" },
          "400": { "description": "Missing number or negative balance" },
          "404": { "description": "No account with this number" }
        }
      }
    },
    "/accounts/top_up": {
      "post": {
        "summary": "Top up an account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/TopUpRequest" }
            }
          }
        },
        "responses": {
          "200": { "description": "Account with updated balance" },
          "400": { "description": "Missing number or non-positive amount" },
          "404": { "description": "No account with this number" },
          "409": { "description": "Account is disabled" }
        }
      }
    },
    "/accounts/delete/{accountNumber}": {
      "delete": {
        "summary": "Disable an account",
        "parameters": [
          {
            "name": "accountNumber",
            "in": "path",
            "required": true,
            "schema": { "type": "integer", "format": "int64" }
          }
        ],
        "responses": {
          "200": { "description": "Disabled account" },
          "404": { "description": "No account with this number" },
          "409": { "description": "Account already disabled" }
        }
      }
    },
    "/accounts/transfer": {
      "post": {
        "summary": "Transfer funds between two accounts",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/TransferRequest" }
            }
          }
        },
        "responses": {
          "204": { "description": "Transfer applied" },
          "400": { "description": "Missing number or non-positive amount" },
          "404": { "description": "No account with this number" },
          "409": { "description": "Source or destination disabled" },
          "422": { "description": "Not sufficient funds" }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Account": {
        "type": "object",
        "properties": {
          "number": { "type": "integer", "format": "int64" },
          "owner": { "type": "string" },
          "balance": { "type": "string", "example": "100.50" },
          "disabled": { "type": "boolean" }
        }
      },
      "TopUpRequest": {
        "type": "object",
        "properties": {
          "accountNumber": { "type": "integer", "format": "int64" },
          "amount": { "type": "string", "example": "25.00" }
        }
      },
      "TransferRequest": {
        "type": "object",
        "properties": {
          "accountNumberFrom": { "type": "integer", "format": "int64" },
          "accountNumberTo": { "type": "integer", "format": "int64" },
          "amount": { "type": "string", "example": "25.00" }
        }
      }
    }
  }
}`
