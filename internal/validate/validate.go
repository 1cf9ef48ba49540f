package validate

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/5w1tchy/books-store/internal/api/apperr"
	"github.com/5w1tchy/books-store/internal/models"
)

// Bounds of the v2 catalog.
const (
	TitleMinLen       = 3
	AuthorMinLen      = 1
	DescriptionMinLen = 1
	DescriptionMaxLen = 100
	RatingMin         = 0
	RatingMax         = 5
	PublishedMin      = 1981
	PublishedMax      = 2023
)

func required(field string) apperr.FieldError {
	return apperr.FieldError{Field: field, Code: "required", Message: "field required"}
}

// Length checks a required string's length in runes. max <= 0 means no upper bound.
func Length(field string, s *string, min, max int) error {
	if s == nil {
		return required(field)
	}
	n := utf8.RuneCountInString(*s)
	if n < min {
		return apperr.FieldError{Field: field, Code: "min_length", Message: "must have at least " + strconv.Itoa(min) + " characters"}
	}
	if max > 0 && n > max {
		return apperr.FieldError{Field: field, Code: "max_length", Message: "must have at most " + strconv.Itoa(max) + " characters"}
	}
	return nil
}

// IntRange checks a required integer lies in [min, max].
func IntRange(field string, v *int, min, max int) error {
	if v == nil {
		return required(field)
	}
	if *v < min || *v > max {
		return apperr.FieldError{Field: field, Code: "range", Message: "must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max)}
	}
	return nil
}

// ParseIntInRange parses a path or query parameter and checks its range.
func ParseIntInRange(field, raw string, min, max int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, required(field)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.FieldError{Field: field, Code: "type", Message: "must be an integer"}
	}
	if err := IntRange(field, &n, min, max); err != nil {
		return 0, err
	}
	return n, nil
}

// PositiveID parses a book id path parameter (> 0).
func PositiveID(field, raw string) (int, error) {
	return ParseIntInRange(field, raw, 1, math.MaxInt)
}

// RequireQuery reports a missing query parameter.
func RequireQuery(field, raw string) error {
	if raw == "" {
		return required(field)
	}
	return nil
}

// BookRequest validates every field of a v2 create/update payload and
// returns all violations. The id is optional and never validated.
func BookRequest(r models.BookRequest) []apperr.FieldError {
	checks := []error{
		Length("title", r.Title, TitleMinLen, 0),
		Length("author", r.Author, AuthorMinLen, 0),
		Length("description", r.Description, DescriptionMinLen, DescriptionMaxLen),
		IntRange("rating", r.Rating, RatingMin, RatingMax),
		IntRange("published_date", r.PublishedDate, PublishedMin, PublishedMax),
	}
	var out []apperr.FieldError
	for _, err := range checks {
		if fe, ok := err.(apperr.FieldError); ok {
			out = append(out, fe)
		}
	}
	return out
}

// AsFieldError extracts the field error produced by this package.
func AsFieldError(err error) (apperr.FieldError, bool) {
	fe, ok := err.(apperr.FieldError)
	return fe, ok
}
