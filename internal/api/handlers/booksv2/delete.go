package booksv2

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/repo/booksv2repo"
	"github.com/5w1tchy/books-store/internal/validate"
)

func handleDelete(store booksv2repo.Store, w http.ResponseWriter, r *http.Request, raw string) {
	id, err := validate.PositiveID("book_id", raw)
	if err != nil {
		invalidParam(w, r, err)
		return
	}

	err = store.Delete(r.Context(), id)
	switch {
	case errors.Is(err, booksv2repo.ErrNotFound):
		apperr.NotFound(w, r)
	case err != nil:
		storeFailed(w, r, "delete", err)
	default:
		httpx.NoContent(w)
	}
}
