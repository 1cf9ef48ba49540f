package booksv2

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/repo/booksv2repo"
	"github.com/5w1tchy/books-store/internal/validate"
)

func handleGet(store booksv2repo.Store, w http.ResponseWriter, r *http.Request, raw string) {
	id, err := validate.PositiveID("book_id", raw)
	if err != nil {
		invalidParam(w, r, err)
		return
	}

	b, err := store.Get(r.Context(), id)
	switch {
	case errors.Is(err, booksv2repo.ErrNotFound):
		apperr.NotFound(w, r)
	case err != nil:
		storeFailed(w, r, "get", err)
	default:
		httpx.OK(w, b)
	}
}
