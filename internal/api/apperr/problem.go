package apperr

import (
	"net/http"

	"github.com/5w1tchy/books-store/internal/api/httpx"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`    // e.g. "required", "min_length", "range", "type"
	Message string `json:"message"` // human readable
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

type Problem struct {
	Type        string       `json:"type,omitempty"`   // RFC7807 type URI
	Title       string       `json:"title"`            // short summary
	Status      int          `json:"status"`           // HTTP status code
	Detail      string       `json:"detail,omitempty"` // human details
	Instance    string       `json:"instance,omitempty"`
	RequestID   string       `json:"request_id,omitempty"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`
	Retryable   bool         `json:"retryable,omitempty"`
}

func Write(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	if p.Title == "" {
		p.Title = http.StatusText(p.Status)
	}
	if p.Instance == "" && r != nil {
		p.Instance = r.URL.Path
	}
	if p.RequestID == "" && r != nil {
		// set by the RequestID middleware
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			p.RequestID = rid
		}
	}
	httpx.WriteContentType(w, "application/problem+json", p.Status, p)
}

// Convenience: fast write with just status+title+detail
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	Write(w, r, Problem{Status: status, Title: title, Detail: detail})
}

// NotFound writes the 404 used by every lookup miss.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteStatus(w, r, http.StatusNotFound, "Not Found", "Item not found")
}

// Validation writes a 422 listing every offending field.
func Validation(w http.ResponseWriter, r *http.Request, errs ...FieldError) {
	Write(w, r, Problem{
		Status:      http.StatusUnprocessableEntity,
		Title:       "Unprocessable Entity",
		Detail:      "validation failed",
		FieldErrors: errs,
	})
}
