package booksv2

import (
	"errors"
	"log"
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/api/httpx"
	"github.com/5w1tchy/books-store/internal/models"
	"github.com/5w1tchy/books-store/internal/validate"
)

// decodeRequest reads and validates a create/update payload. Every failing
// field is reported in one 422.
func decodeRequest(w http.ResponseWriter, r *http.Request) (models.BookRequest, bool) {
	var req models.BookRequest
	err := httpx.DecodeJSON(r.Body, &req)

	var tooBig *http.MaxBytesError
	switch {
	case err == nil:
	case errors.As(err, &tooBig):
		apperr.WriteStatus(w, r, http.StatusRequestEntityTooLarge, "Payload Too Large", "request body too large")
		return req, false
	case errors.Is(err, httpx.ErrJSONShape):
		apperr.Validation(w, r, apperr.FieldError{Field: "body", Code: "type", Message: "fields have the wrong type"})
		return req, false
	default:
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid JSON")
		return req, false
	}

	if errs := validate.BookRequest(req); len(errs) > 0 {
		apperr.Validation(w, r, errs...)
		return req, false
	}
	return req, true
}

// invalidParam writes the 422 for a bad path or query parameter.
func invalidParam(w http.ResponseWriter, r *http.Request, err error) {
	if fe, ok := validate.AsFieldError(err); ok {
		apperr.Validation(w, r, fe)
		return
	}
	apperr.WriteStatus(w, r, http.StatusUnprocessableEntity, "Unprocessable Entity", err.Error())
}

func storeFailed(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Printf("[booksv2] %s failed: %v", op, err)
	apperr.HandleDBError(w, r, err, op+" failed")
}
