package router

import (
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/handlers"
	"github.com/5w1tchy/books-store/internal/api/handlers/books"
	"github.com/5w1tchy/books-store/internal/api/handlers/booksv2"
	"github.com/5w1tchy/books-store/internal/repo/booksrepo"
	"github.com/5w1tchy/books-store/internal/repo/booksv2repo"
)

// Books routes the v1 catalog.
func Books(store booksrepo.Store) http.Handler {
	mux := http.NewServeMux()
	h := books.Handler(store)

	mux.HandleFunc("GET /health", handlers.Health)

	mux.Handle("GET /books", h)                // list
	mux.Handle("GET /books/", h)               // title, author and category lookups
	mux.Handle("POST /books", h)               // create
	mux.Handle("PUT /books/update_book", h)    // update by title
	mux.Handle("DELETE /books/delete_book", h) // delete by ?book_title=

	return mux
}

// BooksV2 routes the validated v2 catalog.
func BooksV2(store booksv2repo.Store) http.Handler {
	mux := http.NewServeMux()
	h := booksv2.Handler(store)

	mux.HandleFunc("GET /health", handlers.Health)

	mux.Handle("GET /books", h)              // list
	mux.Handle("GET /books/", h)             // id, rating and year lookups
	mux.Handle("POST /create-book", h)       // create
	mux.Handle("PUT /books/update_book", h)  // update by id
	mux.Handle("DELETE /books/{book_id}", h) // delete

	return mux
}
