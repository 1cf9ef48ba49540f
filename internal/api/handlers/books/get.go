package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/repo/booksrepo"
)

func handleGet(store booksrepo.Store, w http.ResponseWriter, r *http.Request, title string) {
	b, err := store.GetByTitle(r.Context(), title)
	switch {
	case errors.Is(err, booksrepo.ErrNotFound):
		apperr.NotFound(w, r)
	case err != nil:
		storeFailed(w, r, "get", err)
	default:
		httpx.OK(w, b)
	}
}
