package middlewares

import (
	"net/http"
	"slices"
)

// HPPOptions configures HTTP parameter pollution filtering of query strings.
type HPPOptions struct {
	Whitelist []string
}

// HPP keeps the first value of repeated query parameters and drops
// parameters the API does not know.
func HPP(opts HPPOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.RawQuery != "" {
				filterQueryParams(r, opts.Whitelist)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func filterQueryParams(r *http.Request, whitelist []string) {
	query := r.URL.Query()
	for k, v := range query {
		if !slices.Contains(whitelist, k) {
			query.Del(k)
			continue
		}
		if len(v) > 1 {
			query.Set(k, v[0])
		}
	}
	r.URL.RawQuery = query.Encode()
}

// DefaultHPPOptions whitelists the query parameters of both book services.
func DefaultHPPOptions() HPPOptions {
	return HPPOptions{
		Whitelist: []string{"category", "book_title", "book_rating"},
	}
}
