package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Map well-known constraint names to fields (extend as you add constraints)
var constraintField = map[string]string{
	"books_v2_pkey":                 "id",
	"books_v2_title_check":          "title",
	"books_v2_author_check":         "author",
	"books_v2_description_check":    "description",
	"books_v2_rating_check":         "rating",
	"books_v2_published_date_check": "published_date",
}

// Guess a field from a column name present in PG error detail
func fieldFromDetail(detail string) string {
	for _, k := range []string{"published_date", "description", "rating", "title", "author", "id"} {
		if strings.Contains(detail, k) {
			return k
		}
	}
	return ""
}

// pgError is the part of a server error both drivers expose.
type pgError struct {
	Code, ConstraintName, Detail, ColumnName string
}

func asPGError(err error) (pgError, bool) {
	var pgx *pgconn.PgError
	if errors.As(err, &pgx) {
		return pgError{pgx.Code, pgx.ConstraintName, pgx.Detail, pgx.ColumnName}, true
	}
	var libpq *pq.Error
	if errors.As(err, &libpq) {
		return pgError{string(libpq.Code), libpq.Constraint, libpq.Detail, libpq.Column}, true
	}
	return pgError{}, false
}

// FromPG maps a Postgres server error (*pgconn.PgError or *pq.Error) to a
// Problem. Returns (Problem, true) if mapped.
func FromPG(err error) (Problem, bool) {
	pg, ok := asPGError(err)
	if !ok {
		return Problem{}, false
	}

	p := Problem{
		Title:  "Database error",
		Status: http.StatusInternalServerError,
	}

	field := constraintField[pg.ConstraintName]
	if field == "" && pg.Detail != "" {
		field = fieldFromDetail(pg.Detail)
	}
	if field == "" && pg.ColumnName != "" {
		field = pg.ColumnName
	}
	if field == "" {
		field = "resource"
	}

	switch pg.Code {
	case "23505": // unique_violation: two creates raced for the same tail id
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.Detail = "concurrent write, please retry"
		p.FieldErrors = []FieldError{{Field: field, Code: "unique", Message: "value already exists"}}
		p.Retryable = true
	case "23502": // not_null_violation
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		p.FieldErrors = []FieldError{{Field: field, Code: "not_null", Message: "required field is missing"}}
	case "23514": // check_violation
		p.Status = http.StatusUnprocessableEntity
		p.Title = "Unprocessable Entity"
		p.FieldErrors = []FieldError{{Field: field, Code: "check", Message: "constraint failed"}}
	case "22001": // string_data_right_truncation
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		p.FieldErrors = []FieldError{{Field: field, Code: "too_long", Message: "value is too long"}}
	case "40001": // serialization_failure
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.Detail = "transaction conflict, please retry"
		p.Retryable = true
	case "40P01": // deadlock_detected
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.Detail = "deadlock detected, please retry"
		p.Retryable = true
	}

	return p, true
}

// HandleDBError maps err to a Problem and writes it. Returns true if handled.
func HandleDBError(w http.ResponseWriter, r *http.Request, err error, fallbackTitle string) bool {
	if err == nil {
		return false
	}
	if p, ok := FromPG(err); ok {
		Write(w, r, p)
		return true
	}
	Write(w, r, Problem{Status: http.StatusInternalServerError, Title: fallbackTitle})
	return true
}
