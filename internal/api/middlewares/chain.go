package middlewares

import "net/http"

type Middleware func(http.Handler) http.Handler

// Apply wraps h so the last middleware listed runs first.
func Apply(h http.Handler, mws ...Middleware) http.Handler {
	for _, m := range mws {
		if m != nil {
			h = m(h)
		}
	}
	return h
}
