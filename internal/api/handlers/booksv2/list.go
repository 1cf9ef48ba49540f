package booksv2

import (
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/models"
	"github.com/5w1tchy/books-store/internal/repo/booksv2repo"
	"github.com/5w1tchy/books-store/internal/validate"
)

func handleList(store booksv2repo.Store, w http.ResponseWriter, r *http.Request) {
	books, err := store.List(r.Context())
	writeList(w, r, books, err)
}

func handleListByRating(store booksv2repo.Store, w http.ResponseWriter, r *http.Request) {
	rating, err := validate.ParseIntInRange("book_rating", r.URL.Query().Get("book_rating"), validate.RatingMin, validate.RatingMax)
	if err != nil {
		invalidParam(w, r, err)
		return
	}
	books, err := store.ListByRating(r.Context(), rating)
	writeList(w, r, books, err)
}

func handleListByPublished(store booksv2repo.Store, w http.ResponseWriter, r *http.Request, raw string) {
	year, err := validate.ParseIntInRange("published_date", raw, validate.PublishedMin, validate.PublishedMax)
	if err != nil {
		invalidParam(w, r, err)
		return
	}
	books, err := store.ListByPublishedDate(r.Context(), year)
	writeList(w, r, books, err)
}

func writeList(w http.ResponseWriter, r *http.Request, books []models.BookV2, err error) {
	if err != nil {
		storeFailed(w, r, "list", err)
		return
	}
	if books == nil {
		books = []models.BookV2{}
	}
	httpx.OK(w, books)
}
