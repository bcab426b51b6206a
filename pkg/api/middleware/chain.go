// Package middleware provides composable net/http middleware for the
// search API.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Use wraps handler with the given middlewares, applied in the order
// listed: the first middleware is the outermost wrapper and sees the
// request first.
func Use(handler http.HandlerFunc, mws ...Middleware) http.Handler {
	var h http.Handler = handler

	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}
