package books

import (
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/repo/booksrepo"
)

// handleCreate appends the record as sent; unknown fields are kept.
func handleCreate(store booksrepo.Store, w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	b, ok := decodeBook(w, r)
	if !ok {
		return
	}
	if err := store.Create(r.Context(), b); err != nil {
		storeFailed(w, r, "create", err)
		return
	}
	httpx.OK(w, b)
}
