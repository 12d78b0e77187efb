package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so that the first one given runs outermost:
// Chain(mw1, mw2)(h) is mw1(mw2(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// With wraps a single route handler in route-scoped middleware, such as the
// admin gate or the auth rate limit.
func With(h http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(mws...)(h)
}
