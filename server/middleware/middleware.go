package middleware

import (
	"net/http"
)

// Middleware wraps an http.Handler. It runs around the Gin engine so it also
// sees requests Gin rejects (404, 405).
type Middleware func(http.Handler) http.Handler

// Chain composes middleware. The first in the list is the outermost.
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
