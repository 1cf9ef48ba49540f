package booksv2repo_test

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/books-store/internal/models"
	"github.com/5w1tchy/books-store/internal/repo/booksv2repo"
)

var bookCols = []string{"id", "title", "author", "description", "rating", "published_date"}

func newMockStore(t *testing.T) (*booksv2repo.PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return booksv2repo.NewPostgresStore(sqlx.NewDb(db, "pgx")), mock
}

func TestPostgresStore_List(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT "id", "title", "author", "description", "rating", "published_date" FROM "books_v2" ORDER BY "id" ASC`,
	)).WillReturnRows(
		sqlmock.NewRows(bookCols).
			AddRow(1, "Computer Science Pro", "codingwithmustansir", "A very nice book!", 5, 2020).
			AddRow(2, "Be Fast with FastAPI", "codingwithmustansir", "A great book!", 5, 2018),
	)

	books, err := store.List(t.Context())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Be Fast with FastAPI", books[1].Title)
	assert.Equal(t, 2018, books[1].PublishedDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT "id", "title", "author", "description", "rating", "published_date" FROM "books_v2" WHERE ("id" = 9) ORDER BY "id" ASC`,
	)).WillReturnError(sql.ErrNoRows)

	_, err := store.Get(t.Context(), 9)
	assert.ErrorIs(t, err, booksv2repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListByRating(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT "id", "title", "author", "description", "rating", "published_date" FROM "books_v2" WHERE ("rating" = 3) ORDER BY "id" ASC`,
	)).WillReturnRows(
		sqlmock.NewRows(bookCols).AddRow(5, "HP2", "Author 2", "Book Description", 3, 2023),
	)

	books, err := store.ListByRating(t.Context(), 3)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 5, books[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListByPublishedDateEmpty(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT "id", "title", "author", "description", "rating", "published_date" FROM "books_v2" WHERE ("published_date" = 1999) ORDER BY "id" ASC`,
	)).WillReturnRows(sqlmock.NewRows(bookCols))

	books, err := store.ListByPublishedDate(t.Context(), 1999)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateUsesReturnedID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO books_v2 \(id, title, author, description, rating, published_date\) SELECT COALESCE`).
		WithArgs("A new book", "codingwithmustansir", "A new description of a book", 5, 2022).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	b, err := store.Create(t.Context(), models.BookV2{
		ID: 100, Title: "A new book", Author: "codingwithmustansir",
		Description: "A new description of a book", Rating: 5, PublishedDate: 2022,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Update(t *testing.T) {
	store, mock := newMockStore(t)
	q := regexp.QuoteMeta(`UPDATE books_v2 SET title = $1, author = $2, description = $3, rating = $4, published_date = $5 WHERE id = $6`)

	mock.ExpectExec(q).
		WithArgs("HP1 revised", "Author 1", "Book Description", 4, 2022, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).
		WithArgs("Ghost", "x", "y", 1, 2000, 77).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Update(t.Context(), models.BookV2{ID: 4, Title: "HP1 revised", Author: "Author 1", Description: "Book Description", Rating: 4, PublishedDate: 2022}))
	err := store.Update(t.Context(), models.BookV2{ID: 77, Title: "Ghost", Author: "x", Description: "y", Rating: 1, PublishedDate: 2000})
	assert.ErrorIs(t, err, booksv2repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock := newMockStore(t)
	q := regexp.QuoteMeta(`DELETE FROM books_v2 WHERE id = $1`)

	mock.ExpectExec(q).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Delete(t.Context(), 2))
	assert.ErrorIs(t, store.Delete(t.Context(), 2), booksv2repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ResetSeedsInOneTx(t *testing.T) {
	store, mock := newMockStore(t)
	seed := models.SeedBooksV2()[:2]

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books_v2`)).WillReturnResult(sqlmock.NewResult(0, 6))
	ins := regexp.QuoteMeta(`INSERT INTO books_v2 (id, title, author, description, rating, published_date) VALUES ($1, $2, $3, $4, $5, $6)`)
	for _, b := range seed {
		mock.ExpectExec(ins).
			WithArgs(b.ID, b.Title, b.Author, b.Description, b.Rating, b.PublishedDate).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, store.Reset(t.Context(), seed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS books_v2`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Migrate(t.Context()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
