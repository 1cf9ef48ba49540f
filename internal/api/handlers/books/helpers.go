package books

import (
	"errors"
	"log"
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/models"
)

// decodeBook reads a book from the request body. It writes the error
// response itself and reports whether decoding succeeded.
func decodeBook(w http.ResponseWriter, r *http.Request) (models.Book, bool) {
	var b models.Book
	err := httpx.DecodeJSON(r.Body, &b)
	if err == nil {
		return b, true
	}

	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig):
		apperr.WriteStatus(w, r, http.StatusRequestEntityTooLarge, "Payload Too Large", "request body too large")
	case errors.Is(err, httpx.ErrMalformedJSON), errors.Is(err, httpx.ErrJSONShape):
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "body must be a JSON object with string title, author and category")
	default:
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "could not read body")
	}
	return models.Book{}, false
}

func storeFailed(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Printf("[books] %s failed: %v", op, err)
	apperr.WriteStatus(w, r, http.StatusInternalServerError, "Internal Server Error", op+" failed")
}
