package handlers

import (
	"net/http"

	"Reelist/models"
)

type HomePageData struct {
	Flashes []string
	Movies  []models.Movie
}

// Home renders the landing page: every movie, lowest rating first.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	movies, err := h.store.ListByRating(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, "index", HomePageData{
		Flashes: h.popFlashes(w, r),
		Movies:  movies,
	})
}
