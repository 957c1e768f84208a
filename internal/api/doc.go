// Package api contains the HTTP delivery layer: request and response
// models, handlers for the forum's endpoints, and the mapping from
// internal errors to HTTP status codes and safe client messages.
//
// Handlers depend on service interfaces from internal/service and never
// touch storage directly. Request payloads are validated with
// go-playground/validator tags before any service call.
package api
