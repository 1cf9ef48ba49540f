package booksrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/5w1tchy/books-store/internal/models"
	"github.com/5w1tchy/books-store/internal/store/dbx"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS books (
	seq      INTEGER PRIMARY KEY AUTOINCREMENT,
	title    TEXT NOT NULL,
	author   TEXT NOT NULL,
	category TEXT NOT NULL,
	extra    TEXT
)`

// SQLiteStore keeps the catalog in a SQLite table ordered by seq. Case
// folding happens in Go so both stores agree on what matches.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates the books table if needed.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("create books table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

type seqBook struct {
	seq  int64
	book models.Book
}

func loadAll(ctx context.Context, q dbx.Queryer) ([]seqBook, error) {
	rows, err := q.QueryContext(ctx, `SELECT seq, title, author, category, extra FROM books ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []seqBook
	for rows.Next() {
		var (
			sb    seqBook
			extra sql.NullString
		)
		if err := rows.Scan(&sb.seq, &sb.book.Title, &sb.book.Author, &sb.book.Category, &extra); err != nil {
			return nil, err
		}
		if extra.Valid && extra.String != "" {
			if err := models.RecordJSON.UnmarshalFromString(extra.String, &sb.book.Extra); err != nil {
				return nil, fmt.Errorf("decode extra for seq %d: %w", sb.seq, err)
			}
		}
		out = append(out, sb)
	}
	return out, rows.Err()
}

func encodeExtra(b models.Book) (sql.NullString, error) {
	if len(b.Extra) == 0 {
		return sql.NullString{}, nil
	}
	s, err := models.RecordJSON.MarshalToString(b.Extra)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: s, Valid: true}, nil
}

func (s *SQLiteStore) books(ctx context.Context) ([]models.Book, error) {
	rows, err := loadAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]models.Book, len(rows))
	for i, r := range rows {
		out[i] = r.book
	}
	return out, nil
}

func (s *SQLiteStore) find(ctx context.Context, keep matcher) ([]models.Book, error) {
	all, err := s.books(ctx)
	if err != nil {
		return nil, err
	}
	return filter(all, keep), nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]models.Book, error) {
	return s.find(ctx, func(models.Book) bool { return true })
}

func (s *SQLiteStore) GetByTitle(ctx context.Context, title string) (models.Book, error) {
	all, err := s.books(ctx)
	if err != nil {
		return models.Book{}, err
	}
	if i := firstIndex(all, byTitle(title)); i >= 0 {
		return all[i], nil
	}
	return models.Book{}, ErrNotFound
}

func (s *SQLiteStore) ListByCategory(ctx context.Context, category string) ([]models.Book, error) {
	return s.find(ctx, byCategory(category))
}

func (s *SQLiteStore) ListByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	return s.find(ctx, byAuthor(author))
}

func (s *SQLiteStore) ListByAuthorCategory(ctx context.Context, author, category string) ([]models.Book, error) {
	return s.find(ctx, byAuthorCategory(author, category))
}

func (s *SQLiteStore) Create(ctx context.Context, b models.Book) error {
	return insertBook(ctx, s.db, b)
}

func insertBook(ctx context.Context, e dbx.Execer, b models.Book) error {
	extra, err := encodeExtra(b)
	if err != nil {
		return err
	}
	_, err = e.ExecContext(ctx,
		`INSERT INTO books (title, author, category, extra) VALUES (?, ?, ?, ?)`,
		b.Title, b.Author, b.Category, extra)
	return err
}

// firstSeq finds the seq of the first row whose title matches, inside tx.
func firstSeq(ctx context.Context, tx *sql.Tx, title string) (int64, bool, error) {
	rows, err := loadAll(ctx, tx)
	if err != nil {
		return 0, false, err
	}
	match := byTitle(title)
	for _, r := range rows {
		if match(r.book) {
			return r.seq, true, nil
		}
	}
	return 0, false, nil
}

func (s *SQLiteStore) Update(ctx context.Context, b models.Book) (bool, error) {
	extra, err := encodeExtra(b)
	if err != nil {
		return false, err
	}
	var updated bool
	err = dbx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		seq, ok, err := firstSeq(ctx, tx, b.Title)
		if err != nil || !ok {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE books SET title = ?, author = ?, category = ?, extra = ? WHERE seq = ?`,
			b.Title, b.Author, b.Category, extra, seq); err != nil {
			return err
		}
		updated = true
		return nil
	})
	return updated && err == nil, err
}

func (s *SQLiteStore) Delete(ctx context.Context, title string) (bool, error) {
	var deleted bool
	err := dbx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		seq, ok, err := firstSeq(ctx, tx, title)
		if err != nil || !ok {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM books WHERE seq = ?`, seq); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted && err == nil, err
}

func (s *SQLiteStore) Reset(ctx context.Context, seed []models.Book) error {
	return dbx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM books`); err != nil {
			return err
		}
		for _, b := range seed {
			if err := insertBook(ctx, tx, b); err != nil {
				return err
			}
		}
		return nil
	})
}
