package booksrepo

import (
	"golang.org/x/text/cases"

	"github.com/5w1tchy/books-store/internal/models"
)

// fold applies full Unicode case folding, so "STRASSE" and "straße" compare
// equal. A Caser is stateful, hence one per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

type matcher func(models.Book) bool

func byTitle(title string) matcher {
	t := fold(title)
	return func(b models.Book) bool { return fold(b.Title) == t }
}

func byCategory(category string) matcher {
	c := fold(category)
	return func(b models.Book) bool { return fold(b.Category) == c }
}

func byAuthor(author string) matcher {
	a := fold(author)
	return func(b models.Book) bool { return fold(b.Author) == a }
}

func byAuthorCategory(author, category string) matcher {
	a, c := fold(author), fold(category)
	return func(b models.Book) bool { return fold(b.Author) == a && fold(b.Category) == c }
}

func filter(books []models.Book, keep matcher) []models.Book {
	out := make([]models.Book, 0)
	for _, b := range books {
		if keep(b) {
			out = append(out, b.Clone())
		}
	}
	return out
}

func firstIndex(books []models.Book, keep matcher) int {
	for i, b := range books {
		if keep(b) {
			return i
		}
	}
	return -1
}
