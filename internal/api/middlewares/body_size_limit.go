package middlewares

import (
	"net/http"
	"os"
	"strconv"
)

const defaultMaxBody = int64(10 << 20) // 10 MiB

func maxBodySize() int64 {
	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxBody
}

// BodySizeLimit caps request bodies of POST and PUT. Handlers see the
// overflow as a *http.MaxBytesError while decoding.
func BodySizeLimit(next http.Handler) http.Handler {
	limit := maxBodySize()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
