package booksv2repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"

	"github.com/5w1tchy/books-store/internal/models"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS books_v2 (
	id             INTEGER PRIMARY KEY,
	title          TEXT NOT NULL CHECK (char_length(title) >= 3),
	author         TEXT NOT NULL CHECK (char_length(author) >= 1),
	description    TEXT NOT NULL CHECK (char_length(description) BETWEEN 1 AND 100),
	rating         SMALLINT NOT NULL CHECK (rating BETWEEN 0 AND 5),
	published_date INTEGER NOT NULL CHECK (published_date BETWEEN 1981 AND 2023)
)`

const booksTable = "books_v2"

var bookColumns = []any{"id", "title", "author", "description", "rating", "published_date"}

// selectQuery builds the read query for the rows matching where, in id order.
func selectQuery(where ...exp.Expression) (string, error) {
	q, _, err := goqu.Dialect("postgres").
		From(booksTable).
		Select(bookColumns...).
		Where(where...).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("build select: %w", err)
	}
	return q, nil
}

// PostgresStore keeps the catalog in the books_v2 table. Ids grow with
// insertion order, so ORDER BY id is insertion order.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the books_v2 table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, pgSchema); err != nil {
		return fmt.Errorf("create books_v2: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.BookV2, error) {
	return s.selectBooks(ctx)
}

func (s *PostgresStore) Get(ctx context.Context, id int) (models.BookV2, error) {
	q, err := selectQuery(goqu.C("id").Eq(id))
	if err != nil {
		return models.BookV2{}, err
	}
	var b models.BookV2
	if err := s.db.GetContext(ctx, &b, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookV2{}, ErrNotFound
		}
		return models.BookV2{}, err
	}
	return b, nil
}

func (s *PostgresStore) ListByRating(ctx context.Context, rating int) ([]models.BookV2, error) {
	return s.selectBooks(ctx, goqu.C("rating").Eq(rating))
}

func (s *PostgresStore) ListByPublishedDate(ctx context.Context, year int) ([]models.BookV2, error) {
	return s.selectBooks(ctx, goqu.C("published_date").Eq(year))
}

func (s *PostgresStore) selectBooks(ctx context.Context, where ...exp.Expression) ([]models.BookV2, error) {
	q, err := selectQuery(where...)
	if err != nil {
		return nil, err
	}
	out := make([]models.BookV2, 0)
	if err := s.db.SelectContext(ctx, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

// Create computes the tail id inside the INSERT. Two racing creates collide
// on the primary key and the loser gets a unique violation.
func (s *PostgresStore) Create(ctx context.Context, b models.BookV2) (models.BookV2, error) {
	const q = `
		INSERT INTO books_v2 (id, title, author, description, rating, published_date)
		SELECT COALESCE((SELECT id FROM books_v2 ORDER BY id DESC LIMIT 1), 0) + 1, $1, $2, $3, $4, $5
		RETURNING id`
	if err := s.db.GetContext(ctx, &b.ID, q, b.Title, b.Author, b.Description, b.Rating, b.PublishedDate); err != nil {
		return models.BookV2{}, err
	}
	return b, nil
}

func (s *PostgresStore) Update(ctx context.Context, b models.BookV2) error {
	res, err := s.db.NamedExecContext(ctx, `
		UPDATE books_v2
		SET title = :title, author = :author, description = :description,
		    rating = :rating, published_date = :published_date
		WHERE id = :id`, b)
	if err != nil {
		return err
	}
	return requireOne(res)
}

func (s *PostgresStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM books_v2 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireOne(res)
}

func (s *PostgresStore) Reset(ctx context.Context, seed []models.BookV2) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM books_v2`); err != nil {
		return err
	}
	for _, b := range seed {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO books_v2 (id, title, author, description, rating, published_date)
			VALUES (:id, :title, :author, :description, :rating, :published_date)`, b); err != nil {
			return fmt.Errorf("seed book %d: %w", b.ID, err)
		}
	}
	return tx.Commit()
}

func requireOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
