package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Reelist/models"
)

const (
	listMoviesSQL  = `SELECT id, title, year, description, rating, review, img_url, created_at, updated_at FROM movies ORDER BY rating ASC, id ASC`
	getMovieSQL    = `SELECT id, title, year, description, rating, review, img_url, created_at, updated_at FROM movies WHERE id = $1`
	insertMovieSQL = `INSERT INTO movies (title, year, description, rating, review, img_url) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	deleteMovieSQL = `DELETE FROM movies WHERE id = $1`
)

// PostgresMovieStore implements MovieStore on top of a PostgreSQL table.
type PostgresMovieStore struct {
	db *sql.DB
}

func NewPostgresMovieStore(db *sql.DB) *PostgresMovieStore {
	return &PostgresMovieStore{db: db}
}

func (s *PostgresMovieStore) ListByRating(ctx context.Context) ([]models.Movie, error) {
	rows, err := s.db.QueryContext(ctx, listMoviesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Review, &m.ImgURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movies: %w", err)
	}

	return movies, nil
}

func (s *PostgresMovieStore) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	var m models.Movie
	err := s.db.QueryRowContext(ctx, getMovieSQL, id).Scan(
		&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Review, &m.ImgURL, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return &m, nil
}

func (s *PostgresMovieStore) Create(ctx context.Context, movie models.Movie) (*models.Movie, error) {
	err := s.db.QueryRowContext(ctx, insertMovieSQL,
		movie.Title, movie.Year, movie.Description, movie.Rating, movie.Review, movie.ImgURL,
	).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}
	return &movie, nil
}

func (s *PostgresMovieStore) Update(ctx context.Context, id int, fields models.MovieUpdate) error {
	if fields.IsEmpty() {
		// Nothing to write, but a missing id still has to surface.
		_, err := s.GetByID(ctx, id)
		return err
	}

	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Title != nil {
		add("title", *fields.Title)
	}
	if fields.Year != nil {
		add("year", *fields.Year)
	}
	if fields.Description != nil {
		add("description", *fields.Description)
	}
	if fields.Rating != nil {
		add("rating", *fields.Rating)
	}
	if fields.Review != nil {
		add("review", *fields.Review)
	}
	if fields.ImgURL != nil {
		add("img_url", *fields.ImgURL)
	}
	set = append(set, "updated_at = CURRENT_TIMESTAMP")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE movies SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (s *PostgresMovieStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, deleteMovieSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrMovieNotFound
	}
	return nil
}
