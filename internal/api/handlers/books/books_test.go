package books_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/5w1tchy/books-store/internal/api/handlers/books"
	"github.com/5w1tchy/books-store/internal/models"
	"github.com/5w1tchy/books-store/internal/repo/booksrepo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type listResponse struct {
	Status string           `json:"status"`
	Data   []map[string]any `json:"data"`
}

func newHandler() (http.Handler, *booksrepo.MemoryStore) {
	store := booksrepo.NewMemoryStore(models.SeedBooks())
	return books.Handler(store), store
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func listTitles(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	out := make([]string, 0, len(resp.Data))
	for _, b := range resp.Data {
		out = append(out, b["title"].(string))
	}
	return out
}

func TestList(t *testing.T) {
	h, _ := newHandler()
	got := strings.Join(listTitles(t, do(t, h, "GET", "/books", "")), ",")
	want := "Title One,Title Two,Title Three,Title Four,Title Five,Title Six"
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestListByCategory(t *testing.T) {
	h, _ := newHandler()
	got := strings.Join(listTitles(t, do(t, h, "GET", "/books/?category=math", "")), ",")
	if got != "Title Four,Title Five,Title Six" {
		t.Errorf("Unexpected math books: %s", got)
	}
}

func TestListByCategory_MissingQuery(t *testing.T) {
	h, _ := newHandler()
	rec := do(t, h, "GET", "/books/", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", rec.Code)
	}
}

func TestListByCategory_NoMatchIsEmptyList(t *testing.T) {
	h, _ := newHandler()
	rec := do(t, h, "GET", "/books/?category=poetry", "")
	if got := listTitles(t, rec); len(got) != 0 {
		t.Errorf("Expected no books, got %v", got)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("Expected an empty array, got %s", rec.Body.String())
	}
}

func TestGetByTitle(t *testing.T) {
	h, _ := newHandler()
	rec := do(t, h, "GET", "/books/title%20four", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"title":"Title Four"`) {
		t.Errorf("Unexpected body %s", rec.Body.String())
	}
}

func TestGetByTitle_Missing(t *testing.T) {
	h, _ := newHandler()
	rec := do(t, h, "GET", "/books/Nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Expected problem+json, got %q", ct)
	}
}

func TestListByAuthorCategory(t *testing.T) {
	h, _ := newHandler()
	got := listTitles(t, do(t, h, "GET", "/books/author%20two/?category=MATH", ""))
	if len(got) != 1 || got[0] != "Title Six" {
		t.Errorf("Expected [Title Six], got %v", got)
	}

	rec := do(t, h, "GET", "/books/author%20two/", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 without category, got %d", rec.Code)
	}
}

func TestListByAuthor(t *testing.T) {
	h, _ := newHandler()
	got := strings.Join(listTitles(t, do(t, h, "GET", "/books/by_author/AUTHOR%20TWO", "")), ",")
	if got != "Title Two,Title Six" {
		t.Errorf("Unexpected books %s", got)
	}
}

func TestCreate_KeepsExtraFields(t *testing.T) {
	h, store := newHandler()
	rec := do(t, h, "POST", "/books", `{"title":"Title Seven","author":"Author Seven","category":"art","pages":120,"isbn":9780134190440123}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	b, err := store.GetByTitle(t.Context(), "title seven")
	if err != nil {
		t.Fatalf("created book not stored: %v", err)
	}
	if got := fmt.Sprint(b.Extra["pages"]); got != "120" {
		t.Errorf("Expected pages 120, got %v", got)
	}

	rec = do(t, h, "GET", "/books/title%20seven", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"isbn":9780134190440123`) {
		t.Errorf("Expected isbn to keep every digit, got %s", rec.Body.String())
	}

	titles := listTitles(t, do(t, h, "GET", "/books", ""))
	if titles[len(titles)-1] != "Title Seven" {
		t.Errorf("Expected new book at the end, got %v", titles)
	}
}

func TestCreate_BadJSON(t *testing.T) {
	h, _ := newHandler()
	for _, body := range []string{`{"title":`, `[1,2]`, `{"title":7}`} {
		rec := do(t, h, "POST", "/books", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestCreate_TooLarge(t *testing.T) {
	h, _ := newHandler()
	req := httptest.NewRequest("POST", "/books", strings.NewReader(`{"title":"`+strings.Repeat("x", 64)+`"}`))
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 16)
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", rec.Code)
	}
}

func TestUpdate(t *testing.T) {
	h, store := newHandler()
	rec := do(t, h, "PUT", "/books/update_book", `{"title":"TITLE ONE","author":"New Author","category":"poetry"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	b, err := store.GetByTitle(t.Context(), "title one")
	if err != nil {
		t.Fatal(err)
	}
	if b.Author != "New Author" || b.Category != "poetry" {
		t.Errorf("Update not applied: %+v", b)
	}
}

func TestUpdate_MissIsSilent(t *testing.T) {
	h, _ := newHandler()
	rec := do(t, h, "PUT", "/books/update_book", `{"title":"Nope","author":"x","category":"y"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if got := listTitles(t, do(t, h, "GET", "/books", "")); len(got) != 6 {
		t.Errorf("Expected catalog unchanged, got %v", got)
	}
}

func TestDelete(t *testing.T) {
	h, _ := newHandler()
	rec := do(t, h, "DELETE", "/books/delete_book?book_title=title%20two", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	got := strings.Join(listTitles(t, do(t, h, "GET", "/books", "")), ",")
	if got != "Title One,Title Three,Title Four,Title Five,Title Six" {
		t.Errorf("Unexpected catalog %s", got)
	}
}

func TestDelete_MissIsSilent(t *testing.T) {
	h, _ := newHandler()
	rec := do(t, h, "DELETE", "/books/delete_book?book_title=Nope", "")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if got := listTitles(t, do(t, h, "GET", "/books", "")); len(got) != 6 {
		t.Errorf("Expected catalog unchanged, got %v", got)
	}
}

func TestDelete_MissingTitle(t *testing.T) {
	h, _ := newHandler()
	rec := do(t, h, "DELETE", "/books/delete_book", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newHandler()
	rec := do(t, h, "PATCH", "/books", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
	if rec.Header().Get("Allow") == "" {
		t.Error("Expected Allow header")
	}
}
