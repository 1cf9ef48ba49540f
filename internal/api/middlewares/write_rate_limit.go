package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// WriteRateLimit caps mutating requests (POST, PUT, DELETE) per client IP
// with a fixed Redis window. Reads pass through untouched. Fails open
// without Redis.
func WriteRateLimit(rdb *redis.Client, prefix string, maxWrites int, window time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rdb == nil || !isWrite(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			ip := clientIP(r)
			if ip == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := prefix + ":writes:" + ip
			n, err := rdb.Incr(ctx, key).Result()
			if err == nil && n == 1 {
				_ = rdb.Expire(ctx, key, window).Err()
			}
			if err == nil && n > int64(maxWrites) {
				w.Header().Set("X-RateLimit-Policy", "write-window")
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(maxWrites))
				tooManyRequests(w, r, int64(window.Seconds()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
