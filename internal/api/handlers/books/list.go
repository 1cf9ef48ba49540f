package books

import (
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/models"
	"github.com/5w1tchy/books-store/internal/repo/booksrepo"
	"github.com/5w1tchy/books-store/internal/validate"
)

func handleList(store booksrepo.Store, w http.ResponseWriter, r *http.Request) {
	books, err := store.List(r.Context())
	writeList(w, r, books, err)
}

func handleListByCategory(store booksrepo.Store, w http.ResponseWriter, r *http.Request) {
	category, ok := requiredCategory(w, r)
	if !ok {
		return
	}
	books, err := store.ListByCategory(r.Context(), category)
	writeList(w, r, books, err)
}

func handleListByAuthorCategory(store booksrepo.Store, w http.ResponseWriter, r *http.Request, author string) {
	category, ok := requiredCategory(w, r)
	if !ok {
		return
	}
	books, err := store.ListByAuthorCategory(r.Context(), author, category)
	writeList(w, r, books, err)
}

func handleListByAuthor(store booksrepo.Store, w http.ResponseWriter, r *http.Request, author string) {
	books, err := store.ListByAuthor(r.Context(), author)
	writeList(w, r, books, err)
}

func requiredCategory(w http.ResponseWriter, r *http.Request) (string, bool) {
	category := r.URL.Query().Get("category")
	if err := validate.RequireQuery("category", category); err != nil {
		fe, _ := validate.AsFieldError(err)
		apperr.Validation(w, r, fe)
		return "", false
	}
	return category, true
}

func writeList(w http.ResponseWriter, r *http.Request, books []models.Book, err error) {
	if err != nil {
		storeFailed(w, r, "list", err)
		return
	}
	httpx.OK(w, books)
}
