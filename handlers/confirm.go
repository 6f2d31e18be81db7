package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"Reelist/models"
)

// Confirm turns a picked search result into a minimal stored record and
// sends the user straight to its edit form. The query parameters come
// from the select view, not from user typing, so they bypass form
// validation on purpose.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year := models.UnknownYear
	if raw := q.Get("year"); raw != "" && raw != "?" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			year = parsed
		}
	}

	imgURL := models.NoPoster
	if path := q.Get("img_url"); path != "" {
		imgURL = h.tmdb.PosterURL(path)
	}

	movie := models.Movie{
		Title:       q.Get("title"),
		Year:        year,
		Description: q.Get("description"),
		Rating:      0,
		Review:      models.PendingReview,
		ImgURL:      imgURL,
	}

	created, err := h.store.Create(r.Context(), movie)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/update?id=%d", created.ID), http.StatusSeeOther)
}
