package books

import (
	"log"
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/repo/booksrepo"
	"github.com/5w1tchy/books-store/internal/validate"
)

func handleDelete(store booksrepo.Store, w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("book_title")
	if err := validate.RequireQuery("book_title", title); err != nil {
		fe, _ := validate.AsFieldError(err)
		apperr.Validation(w, r, fe)
		return
	}

	deleted, err := store.Delete(r.Context(), title)
	if err != nil {
		storeFailed(w, r, "delete", err)
		return
	}
	if !deleted {
		log.Printf("[books] delete %q matched nothing; no-op", title)
	}
	httpx.OKNoData(w)
}
