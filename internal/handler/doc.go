// Package handler provides HTTP request handlers for the Level Up API.
//
// Each handler struct wraps one service and serves the endpoints of one
// resource (game types, gamers, games, events). Handlers decode the typed
// request payload, call the service, and project the result onto the
// resource types in the model package.
//
// # Response Format
//
//   - Single resources and lists are written as bare JSON (lists as arrays)
//   - Updates, deletes and leave answer 204 with no body
//   - Errors are RFC 9457 Problem Details, produced by MapServiceError
//
// # Routing
//
// Routes returns the route table as data; the server registers it onto a
// net/http ServeMux with Register:
//
//	mux := http.NewServeMux()
//	handler.Register(mux, handler.Routes(handler.Handlers{...}))
package handler
