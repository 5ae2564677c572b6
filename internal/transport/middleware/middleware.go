// Package middleware holds the HTTP middleware shared by every route of the
// attribution API.
package middleware

import (
	"log/slog"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one. Chain(a, b)(h) is a(b(h)): the first
// middleware runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Default is the stack the API router runs behind. Metrics sits innermost so
// that it sees the route pattern the mux stores on the request.
func Default(logger *slog.Logger) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		Logger(logger),
		Metrics(),
	)
}
