package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"Reelist/models"
	"Reelist/services"
)

type UpdatePageData struct {
	Movie  models.Movie
	Form   UpdateForm
	Errors map[string]string
}

// Update renders the pre-filled partial edit form on GET and applies
// the submitted non-blank fields on POST. Blank inputs keep the stored
// values, so changing just the rating never touches the rest.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		h.notFound(w, "Movie not found")
		return
	}

	movie, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			h.notFound(w, "Movie not found")
			return
		}
		h.serverError(w, r, err)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, "update", UpdatePageData{Movie: *movie})
		return
	}

	form, errs := ParseUpdateForm(r)
	if errs != nil {
		h.render(w, "update", UpdatePageData{Movie: *movie, Form: form, Errors: errs})
		return
	}

	if err := h.store.Update(r.Context(), id, form.Fields()); err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			h.notFound(w, "Movie not found")
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.addFlash(w, r, "Movie updated")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
