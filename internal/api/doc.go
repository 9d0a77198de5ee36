// Package api adapts HTTP requests to the reading service. Handlers decode
// and validate JSON payloads, read the negotiated language from the request
// context and map service errors to status codes with safe messages.
package api
