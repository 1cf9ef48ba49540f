package booksv2repo

import (
	"context"

	"github.com/5w1tchy/books-store/internal/models"
)

// Store is the v2 catalog: an ordered sequence of books keyed by id.
type Store interface {
	List(ctx context.Context) ([]models.BookV2, error)
	Get(ctx context.Context, id int) (models.BookV2, error)
	ListByRating(ctx context.Context, rating int) ([]models.BookV2, error)
	ListByPublishedDate(ctx context.Context, year int) ([]models.BookV2, error)
	// Create ignores b.ID and assigns the last book's id + 1 (1 when empty).
	Create(ctx context.Context, b models.BookV2) (models.BookV2, error)
	// Update replaces the book with b.ID in place, or returns ErrNotFound.
	Update(ctx context.Context, b models.BookV2) error
	Delete(ctx context.Context, id int) error
	Reset(ctx context.Context, seed []models.BookV2) error
}

// nextID implements the tail policy: the last element's id plus one. Ids
// only ever get appended in increasing order and updates keep their id, so
// the tail is also the maximum.
func nextID(books []models.BookV2) int {
	if len(books) == 0 {
		return 1
	}
	return books[len(books)-1].ID + 1
}
