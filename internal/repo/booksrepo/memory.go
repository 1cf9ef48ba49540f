package booksrepo

import (
	"context"
	"sync"

	"github.com/5w1tchy/books-store/internal/models"
)

// MemoryStore keeps the catalog in a slice guarded by a RWMutex. Every
// returned book is a copy.
type MemoryStore struct {
	mu    sync.RWMutex
	books []models.Book
}

func NewMemoryStore(seed []models.Book) *MemoryStore {
	s := &MemoryStore{}
	s.load(seed)
	return s
}

func (s *MemoryStore) load(seed []models.Book) {
	s.books = make([]models.Book, 0, len(seed))
	for _, b := range seed {
		s.books = append(s.books, b.Clone())
	}
}

func (s *MemoryStore) List(_ context.Context) ([]models.Book, error) {
	return s.find(func(models.Book) bool { return true }), nil
}

func (s *MemoryStore) GetByTitle(_ context.Context, title string) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := firstIndex(s.books, byTitle(title)); i >= 0 {
		return s.books[i].Clone(), nil
	}
	return models.Book{}, ErrNotFound
}

func (s *MemoryStore) ListByCategory(_ context.Context, category string) ([]models.Book, error) {
	return s.find(byCategory(category)), nil
}

func (s *MemoryStore) ListByAuthor(_ context.Context, author string) ([]models.Book, error) {
	return s.find(byAuthor(author)), nil
}

func (s *MemoryStore) ListByAuthorCategory(_ context.Context, author, category string) ([]models.Book, error) {
	return s.find(byAuthorCategory(author, category)), nil
}

func (s *MemoryStore) Create(_ context.Context, b models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append(s.books, b.Clone())
	return nil
}

func (s *MemoryStore) Update(_ context.Context, b models.Book) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := firstIndex(s.books, byTitle(b.Title))
	if i < 0 {
		return false, nil
	}
	s.books[i] = b.Clone()
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := firstIndex(s.books, byTitle(title))
	if i < 0 {
		return false, nil
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	return true, nil
}

func (s *MemoryStore) Reset(_ context.Context, seed []models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(seed)
	return nil
}

func (s *MemoryStore) find(keep matcher) []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.books, keep)
}
