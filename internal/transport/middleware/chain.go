// Package middleware holds the HTTP layers wrapped around the feedback API:
// panic recovery, request and session ids, access logging, CORS and the
// per-session write limit.
package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one runs outermost:
// Chain(a, b)(h) is a(b(h)). Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			if mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}

