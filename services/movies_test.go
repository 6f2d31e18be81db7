package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Reelist/models"
)

var movieColumns = []string{"id", "title", "year", "description", "rating", "review", "img_url", "created_at", "updated_at"}

func newMockStore(t *testing.T) (*PostgresMovieStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresMovieStore(db), mock
}

func TestPostgresListByRating(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now()

	rows := sqlmock.NewRows(movieColumns).
		AddRow(2, "worst", 1980, "d", 2.0, "r", "u", now, now).
		AddRow(1, "best", 1999, "d", 9.9, "r", "u", now, now)
	mock.ExpectQuery(listMoviesSQL).WillReturnRows(rows)

	movies, err := store.ListByRating(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "worst", movies[0].Title)
	assert.Equal(t, 9.9, movies[1].Rating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(getMovieSQL).WithArgs(42).WillReturnError(sql.ErrNoRows)

	_, err := store.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(insertMovieSQL).
		WithArgs("Alien", 1979, "space horror", 8.5, "a classic", "https://example.com/alien.jpg").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

	created, err := store.Create(context.Background(), models.Movie{
		Title:       "Alien",
		Year:        1979,
		Description: "space horror",
		Rating:      8.5,
		Review:      "a classic",
		ImgURL:      "https://example.com/alien.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "Alien", created.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateRatingOnly(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE movies SET rating = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2").
		WithArgs(9.5, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rating := 9.5
	err := store.Update(context.Background(), 3, models.MovieUpdate{Rating: &rating})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateAllFields(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE movies SET title = $1, year = $2, description = $3, rating = $4, review = $5, img_url = $6, updated_at = CURRENT_TIMESTAMP WHERE id = $7").
		WithArgs("Aliens", 1986, "more aliens", 8.9, "bigger", "https://example.com/aliens.jpg", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	title := "Aliens"
	year := 1986
	description := "more aliens"
	rating := 8.9
	review := "bigger"
	imgURL := "https://example.com/aliens.jpg"
	err := store.Update(context.Background(), 3, models.MovieUpdate{
		Title:       &title,
		Year:        &year,
		Description: &description,
		Rating:      &rating,
		Review:      &review,
		ImgURL:      &imgURL,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE movies SET rating = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2").
		WithArgs(9.5, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rating := 9.5
	err := store.Update(context.Background(), 42, models.MovieUpdate{Rating: &rating})
	assert.ErrorIs(t, err, ErrMovieNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateEmptyStillChecksID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(getMovieSQL).WithArgs(42).WillReturnError(sql.ErrNoRows)

	err := store.Update(context.Background(), 42, models.MovieUpdate{})
	assert.ErrorIs(t, err, ErrMovieNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(deleteMovieSQL).WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(deleteMovieSQL).WithArgs(42).WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
