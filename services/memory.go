package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"Reelist/models"
)

// MemoryMovieStore is an in-memory MovieStore used by tests and local
// experiments. It mirrors the semantics of the Postgres store.
type MemoryMovieStore struct {
	mu     sync.Mutex
	nextID int
	movies map[int]models.Movie
}

func NewMemoryMovieStore() *MemoryMovieStore {
	return &MemoryMovieStore{
		nextID: 1,
		movies: make(map[int]models.Movie),
	}
}

func (s *MemoryMovieStore) ListByRating(ctx context.Context) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies := []models.Movie{}
	for _, m := range s.movies {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool {
		if movies[i].Rating != movies[j].Rating {
			return movies[i].Rating < movies[j].Rating
		}
		return movies[i].ID < movies[j].ID
	})
	return movies, nil
}

func (s *MemoryMovieStore) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	return &m, nil
}

func (s *MemoryMovieStore) Create(ctx context.Context, movie models.Movie) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie.ID = s.nextID
	s.nextID++
	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now
	s.movies[movie.ID] = movie
	return &movie, nil
}

func (s *MemoryMovieStore) Update(ctx context.Context, id int, fields models.MovieUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return ErrMovieNotFound
	}

	if fields.Title != nil {
		m.Title = *fields.Title
	}
	if fields.Year != nil {
		m.Year = *fields.Year
	}
	if fields.Description != nil {
		m.Description = *fields.Description
	}
	if fields.Rating != nil {
		m.Rating = *fields.Rating
	}
	if fields.Review != nil {
		m.Review = *fields.Review
	}
	if fields.ImgURL != nil {
		m.ImgURL = *fields.ImgURL
	}
	m.UpdatedAt = time.Now()
	s.movies[id] = m
	return nil
}

func (s *MemoryMovieStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[id]; !ok {
		return ErrMovieNotFound
	}
	delete(s.movies, id)
	return nil
}
