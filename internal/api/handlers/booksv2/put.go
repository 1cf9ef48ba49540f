package booksv2

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/repo/booksv2repo"
)

func handleUpdate(store booksv2repo.Store, w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	// no id can never match a stored book
	if req.ID == nil {
		apperr.NotFound(w, r)
		return
	}

	err := store.Update(r.Context(), req.Book())
	switch {
	case errors.Is(err, booksv2repo.ErrNotFound):
		apperr.NotFound(w, r)
	case err != nil:
		storeFailed(w, r, "update", err)
	default:
		httpx.NoContent(w)
	}
}
