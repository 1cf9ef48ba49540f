package books

import (
	"net/http"
	"strings"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/repo/booksrepo"
)

const allowBooks = "GET, POST, PUT, DELETE, OPTIONS, HEAD"

// Handler serves every /books route of the v1 catalog. GET requests under
// /books/ are told apart by path shape:
//
//	/books/                      category filter (?category=)
//	/books/by_author/{author}    author filter
//	/books/{author}/             author + category filter
//	/books/{title}               title lookup
func Handler(store booksrepo.Store) http.HandlerFunc {
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
			handleDelete(store, w, r)

		default:
			w.Header().Set("Allow", allowBooks)
			apperr.WriteStatus(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", "")
		}
	}
}

func dispatchGet(store booksrepo.Store, w http.ResponseWriter, r *http.Request, rest string) {
	if rest == "" {
		handleListByCategory(store, w, r)
		return
	}
	if author, ok := strings.CutPrefix(rest, "by_author/"); ok && author != "" && !strings.Contains(author, "/") {
		handleListByAuthor(store, w, r, author)
		return
	}
	if author, ok := strings.CutSuffix(rest, "/"); ok && author != "" && !strings.Contains(author, "/") {
		handleListByAuthorCategory(store, w, r, author)
		return
	}
	if !strings.Contains(rest, "/") {
		handleGet(store, w, r, rest)
		return
	}
	apperr.NotFound(w, r)
}
