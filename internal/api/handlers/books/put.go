package books

import (
	"log"
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/repo/booksrepo"
)

// handleUpdate replaces the first book with the same title. A miss is
// logged and still answered with success.
func handleUpdate(store booksrepo.Store, w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	b, ok := decodeBook(w, r)
	if !ok {
		return
	}
	updated, err := store.Update(r.Context(), b)
	if err != nil {
		storeFailed(w, r, "update", err)
		return
	}
	if !updated {
		log.Printf("[books] update %q matched nothing; no-op", b.Title)
	}
	httpx.OKNoData(w)
}
