package handlers

import (
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/httpx"
)

// Health answers liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
