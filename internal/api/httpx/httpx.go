package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func WriteJSON(w http.ResponseWriter, status int, v any) {
	WriteContentType(w, "application/json; charset=utf-8", status, v)
}

func WriteContentType(w http.ResponseWriter, contentType string, status int, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, map[string]any{"status": "success", "data": data})
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, map[string]any{"status": "success", "data": data})
}

func OKNoData(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, map[string]any{"status": "success"})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

var (
	ErrMalformedJSON = errors.New("malformed JSON")
	ErrJSONShape     = errors.New("JSON does not match the expected shape")
)

// DecodeJSON reads the whole body into v. Unparseable input wraps
// ErrMalformedJSON; well-formed JSON that v rejects wraps ErrJSONShape.
// Read errors (e.g. *http.MaxBytesError) are returned as is.
func DecodeJSON(body io.Reader, v any) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return ErrMalformedJSON
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrJSONShape, err)
	}
	return nil
}
