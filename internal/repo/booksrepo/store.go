package booksrepo

import (
	"context"

	"github.com/5w1tchy/books-store/internal/models"
)

// Store is the v1 catalog. Title, author and category comparisons are
// case-insensitive; lists come back in insertion order and are never nil.
type Store interface {
	List(ctx context.Context) ([]models.Book, error)
	// GetByTitle returns the first book whose title matches, or ErrNotFound.
	GetByTitle(ctx context.Context, title string) (models.Book, error)
	ListByCategory(ctx context.Context, category string) ([]models.Book, error)
	ListByAuthor(ctx context.Context, author string) ([]models.Book, error)
	ListByAuthorCategory(ctx context.Context, author, category string) ([]models.Book, error)
	Create(ctx context.Context, b models.Book) error
	// Update replaces the first book with the same title. It reports false
	// when nothing matched.
	Update(ctx context.Context, b models.Book) (bool, error)
	// Delete removes the first book with the given title. It reports false
	// when nothing matched.
	Delete(ctx context.Context, title string) (bool, error)
	// Reset replaces the whole catalog with seed.
	Reset(ctx context.Context, seed []models.Book) error
}
