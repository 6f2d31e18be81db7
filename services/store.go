package services

import (
	"context"
	"errors"

	"Reelist/models"
)

// ErrMovieNotFound is returned by store lookups and mutations that reference
// an id with no stored record.
var ErrMovieNotFound = errors.New("movie not found")

// MovieStore is the persistence boundary for movie records. Handlers only
// ever talk to this interface so the backing technology stays swappable.
type MovieStore interface {
	// ListByRating returns every record ordered ascending by rating.
	ListByRating(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id int) (*models.Movie, error)
	// Create persists the record, assigns a fresh id and returns the stored copy.
	Create(ctx context.Context, movie models.Movie) (*models.Movie, error)
	// Update overwrites only the non-nil fields of the partial update.
	Update(ctx context.Context, id int, fields models.MovieUpdate) error
	Delete(ctx context.Context, id int) error
}
