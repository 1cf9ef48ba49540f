package booksv2repo

import (
	"context"
	"sync"

	"github.com/5w1tchy/books-store/internal/models"
)

type MemoryStore struct {
	mu    sync.RWMutex
	books []models.BookV2
}

func NewMemoryStore(seed []models.BookV2) *MemoryStore {
	return &MemoryStore{books: append([]models.BookV2{}, seed...)}
}

func (s *MemoryStore) List(_ context.Context) ([]models.BookV2, error) {
	return s.filter(func(models.BookV2) bool { return true }), nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (models.BookV2, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.books[i], nil
	}
	return models.BookV2{}, ErrNotFound
}

func (s *MemoryStore) ListByRating(_ context.Context, rating int) ([]models.BookV2, error) {
	return s.filter(func(b models.BookV2) bool { return b.Rating == rating }), nil
}

func (s *MemoryStore) ListByPublishedDate(_ context.Context, year int) ([]models.BookV2, error) {
	return s.filter(func(b models.BookV2) bool { return b.PublishedDate == year }), nil
}

func (s *MemoryStore) Create(_ context.Context, b models.BookV2) (models.BookV2, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = nextID(s.books)
	s.books = append(s.books, b)
	return b, nil
}

func (s *MemoryStore) Update(_ context.Context, b models.BookV2) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(b.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.books[i] = b
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	return nil
}

func (s *MemoryStore) Reset(_ context.Context, seed []models.BookV2) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append([]models.BookV2{}, seed...)
	return nil
}

// indexOf expects s.mu to be held.
func (s *MemoryStore) indexOf(id int) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) filter(keep func(models.BookV2) bool) []models.BookV2 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BookV2, 0)
	for _, b := range s.books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
