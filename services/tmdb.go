package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Reelist/config"
)

const (
	// TMDBAPIBase is the search API root.
	TMDBAPIBase = "https://api.themoviedb.org/3"
	// TMDBImageBase is the poster host. Search results only carry a partial
	// poster path, the displayable URL is TMDBImageBase + path.
	TMDBImageBase = "https://www.themoviedb.org/t/p/w1280"
)

type TMDBSearchResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

// Year returns the release year as shown to the user. TMDB omits or
// truncates release_date for obscure titles, those render as "?".
func (r TMDBSearchResult) Year() string {
	if len(r.ReleaseDate) < 4 {
		return "?"
	}
	return r.ReleaseDate[:4]
}

type tmdbSearchResponse struct {
	Results []TMDBSearchResult `json:"results"`
}

// TMDBClient issues movie title searches against The Movie Database.
// One blocking request per search, no retries.
type TMDBClient struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	HTTPClient   *http.Client
}

func NewTMDBClient(cfg *config.Config) *TMDBClient {
	return &TMDBClient{
		APIKey:       cfg.TMDBAPIKey,
		BaseURL:      TMDBAPIBase,
		ImageBaseURL: TMDBImageBase,
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *TMDBClient) Search(ctx context.Context, query string) ([]TMDBSearchResult, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is not set")
	}

	searchURL := fmt.Sprintf("%s/search/movie?api_key=%s&language=en-US&query=%s&page=1&include_adult=false",
		c.BaseURL, c.APIKey, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb search returned status %d", resp.StatusCode)
	}

	var searchResults tmdbSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResults); err != nil {
		return nil, fmt.Errorf("failed to decode tmdb response: %w", err)
	}

	return searchResults.Results, nil
}

// PosterURL builds the displayable image URL from a partial poster path.
func (c *TMDBClient) PosterURL(path string) string {
	return c.ImageBaseURL + path
}
