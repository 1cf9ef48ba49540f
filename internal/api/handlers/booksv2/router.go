package booksv2

import (
	"net/http"
	"strings"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/repo/booksv2repo"
)

const allowBooks = "GET, POST, PUT, DELETE, OPTIONS, HEAD"

// Handler serves the v2 catalog. GET requests under /books/ are told apart
// by path shape:
//
//	/books/                               rating filter (?book_rating=)
//	/books/filter_by_publish/{year}       published year filter
//	/books/{book_id}                      lookup by id
func Handler(store booksv2repo.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			if r.URL.Path == "/books" {
				handleList(store, w, r)
				return
			}
			dispatchGet(store, w, r, strings.TrimPrefix(r.URL.Path, "/books/"))

		case http.MethodPost:
			handleCreate(store, w, r)

		case http.MethodPut:
			handleUpdate(store, w, r)

		case http.MethodDelete:
			handleDelete(store, w, r, pathID(r))

		default:
			w.Header().Set("Allow", allowBooks)
			apperr.WriteStatus(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", "")
		}
	}
}

func dispatchGet(store booksv2repo.Store, w http.ResponseWriter, r *http.Request, rest string) {
	switch {
	case rest == "":
		handleListByRating(store, w, r)
	case strings.HasPrefix(rest, "filter_by_publish/"):
		handleListByPublished(store, w, r, strings.TrimPrefix(rest, "filter_by_publish/"))
	case !strings.Contains(rest, "/"):
		handleGet(store, w, r, rest)
	default:
		apperr.NotFound(w, r)
	}
}

// pathID prefers the {book_id} wildcard and falls back to the last path
// segment when the handler is mounted without one.
func pathID(r *http.Request) string {
	if id := r.PathValue("book_id"); id != "" {
		return id
	}
	return r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
}
