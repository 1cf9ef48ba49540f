package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_KeepsExtraFields(t *testing.T) {
	var b Book
	err := json.Unmarshal([]byte(`{"title":"Dune","author":"Herbert","category":"scifi","pages":412,"tags":["a"]}`), &b)
	require.NoError(t, err)

	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "Herbert", b.Author)
	assert.Equal(t, "scifi", b.Category)
	assert.EqualValues(t, "412", b.Extra["pages"])

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Dune","author":"Herbert","category":"scifi","pages":412,"tags":["a"]}`, string(out))
}

func TestBook_KeepsLargeIntegersExact(t *testing.T) {
	in := `{"title":"Big","author":"A","category":"c","isbn":9780134190440123,"nested":{"n":18446744073709551615}}`
	var b Book
	require.NoError(t, json.Unmarshal([]byte(in), &b))

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"isbn":9780134190440123`)
	assert.Contains(t, string(out), `"n":18446744073709551615`)
}

func TestBook_RejectsNonStringKnownField(t *testing.T) {
	var b Book
	assert.Error(t, json.Unmarshal([]byte(`{"title":7}`), &b))
}

func TestBook_RejectsArray(t *testing.T) {
	var b Book
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &b))
}

func TestBook_CloneDoesNotShareExtra(t *testing.T) {
	b := Book{Title: "x", Extra: map[string]any{"k": "v"}}
	c := b.Clone()
	c.Extra["k"] = "changed"
	assert.Equal(t, "v", b.Extra["k"])
}

func TestBookRequest_Book(t *testing.T) {
	id, title, rating := 42, "Go", 4
	b := BookRequest{ID: &id, Title: &title, Rating: &rating}.Book()
	assert.Equal(t, BookV2{ID: 42, Title: "Go", Rating: 4}, b)
}
