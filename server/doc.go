// Package server hosts the HTTP API on a Gin engine behind an h2c handler so
// HTTP/1.1 and cleartext HTTP/2 clients share one port.
//
// Middleware (server/middleware) wraps the whole handler, not just Gin:
//
//   - Recovery: panic recovery rendered as a 500 error body
//   - RequestID: X-Request-Id propagation into the logger context
//   - CORS: origin allow-list and preflight handling
//   - BodySizeLimit: upload cap for multipart requests
//   - RequestLogger: one structured line per request
//
// Requests other than probes are traced with otelhttp.
//
// Operational endpoints (server/endpoint): /health, /alive, /ready, /info.
package server
