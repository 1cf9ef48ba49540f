package models

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

// RecordJSON is the codec for loosely shaped records. Numbers decode as
// json.Number so integers past 2^53 keep every digit.
var RecordJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

var json = RecordJSON

// Book is a loosely shaped catalog entry. Title, author and category are
// lifted into fields; every other JSON member is kept in Extra so a record
// round-trips unchanged.
type Book struct {
	Title    string
	Author   string
	Category string
	Extra    map[string]any
}

var errNotObject = errors.New("book must be a JSON object")

func (b Book) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.Extra)+3)
	for k, v := range b.Extra {
		out[k] = v
	}
	out["title"] = b.Title
	out["author"] = b.Author
	out["category"] = b.Category
	return json.Marshal(out)
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errNotObject
	}

	var nb Book
	for key, dst := range map[string]*string{"title": &nb.Title, "author": &nb.Author, "category": &nb.Category} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		delete(raw, key)
		switch s := v.(type) {
		case nil:
		case string:
			*dst = s
		default:
			return errors.New(key + " must be a string")
		}
	}
	if len(raw) > 0 {
		nb.Extra = raw
	}
	*b = nb
	return nil
}

// Clone copies the top level of Extra so stored entries never share a map
// with the caller.
func (b Book) Clone() Book {
	if b.Extra == nil {
		return b
	}
	extra := make(map[string]any, len(b.Extra))
	for k, v := range b.Extra {
		extra[k] = v
	}
	b.Extra = extra
	return b
}
