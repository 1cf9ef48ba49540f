package booksv2

import (
	"log"
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/repo/booksv2repo"
)

// handleCreate stores a validated book. Any client id is ignored; the
// store assigns the next one.
func handleCreate(store booksv2repo.Store, w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	b, err := store.Create(r.Context(), req.Book())
	if err != nil {
		storeFailed(w, r, "create", err)
		return
	}
	log.Printf("[booksv2] created book id=%d", b.ID)
	httpx.Created(w, b)
}
