package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "SENTINELA Gateway",
    "description": "Dashboard gateway for call monitoring: widgets, relationship graph, contact drill-down and administration",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/healthz": {"get": {"tags": ["health"], "summary": "Backend reachability", "responses": {"200": {"description": "ok"}, "503": {"description": "backend unavailable"}}}},
    "/api/session": {
      "get": {"tags": ["session"], "summary": "Current session scope", "responses": {"200": {"description": "ok"}}},
      "post": {"tags": ["session"], "summary": "Select subject PIN", "responses": {"200": {"description": "ok"}, "400": {"description": "invalid payload"}}},
      "delete": {"tags": ["session"], "summary": "Logout", "responses": {"204": {"description": "no content"}}}
    },
    "/api/summary": {"get": {"tags": ["widgets"], "summary": "All dashboard widgets", "responses": {"200": {"description": "widget envelopes"}}}},
    "/api/widgets/daily": {"get": {"tags": ["widgets"], "summary": "Calls per day", "responses": {"200": {"description": "resource envelope"}}}},
    "/api/widgets/hourly": {"get": {"tags": ["widgets"], "summary": "Calls per hour of day", "responses": {"200": {"description": "resource envelope"}}}},
    "/api/widgets/top-numbers": {"get": {"tags": ["widgets"], "summary": "Top 10 dialed numbers", "responses": {"200": {"description": "resource envelope"}}}},
    "/api/widgets/call-map": {"get": {"tags": ["widgets"], "summary": "Call map markers", "responses": {"200": {"description": "resource envelope"}}}},
    "/api/widgets/recent-calls": {"get": {"tags": ["widgets"], "summary": "Recent calls with analysis", "responses": {"200": {"description": "resource envelope"}}}},
    "/api/widgets/alerts": {"get": {"tags": ["widgets"], "summary": "Alerts", "responses": {"200": {"description": "resource envelope"}}}},
    "/api/widgets/profile": {"get": {"tags": ["widgets"], "summary": "Subject profile", "responses": {"200": {"description": "resource envelope"}}}},
    "/api/widgets/network": {"get": {"tags": ["widgets"], "summary": "Relationship graph", "parameters": [{"name": "hover", "in": "query", "type": "string"}], "responses": {"200": {"description": "resource envelope"}}}},
    "/api/widgets/contact": {"get": {"tags": ["widgets"], "summary": "Contact drill-down", "parameters": [{"name": "node", "in": "query", "type": "string", "required": true}], "responses": {"200": {"description": "resource envelope"}, "400": {"description": "node missing"}}}},
    "/api/calls/{id}/note": {"put": {"tags": ["calls"], "summary": "Set analyst note", "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "ok"}}}},
    "/api/lada/{number}": {"get": {"tags": ["lookup"], "summary": "Area-code lookup", "parameters": [{"name": "number", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "ok"}, "404": {"description": "unknown area code"}}}},
    "/api/photos/{pin}": {"get": {"tags": ["lookup"], "summary": "Subject photo", "parameters": [{"name": "pin", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "image"}, "302": {"description": "placeholder"}}}},
    "/api/users": {
      "get": {"tags": ["users"], "summary": "List users", "responses": {"200": {"description": "ok"}}},
      "post": {"tags": ["users"], "summary": "Create user", "responses": {"201": {"description": "created"}}}
    },
    "/api/users/{id}": {"delete": {"tags": ["users"], "summary": "Delete user", "responses": {"204": {"description": "no content"}}}},
    "/api/dangerous-words": {
      "get": {"tags": ["dangerous-words"], "summary": "List dangerous words", "responses": {"200": {"description": "ok"}}},
      "post": {"tags": ["dangerous-words"], "summary": "Add dangerous word", "responses": {"201": {"description": "created"}}}
    },
    "/api/dangerous-words/{id}": {"delete": {"tags": ["dangerous-words"], "summary": "Delete dangerous word", "responses": {"204": {"description": "no content"}}}}
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
