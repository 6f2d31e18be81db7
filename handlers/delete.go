package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Reelist/services"
)

// Delete removes the record named by the path id and returns to the
// list. A missing id is a 404, never a silent success.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, "Movie not found")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			h.notFound(w, "Movie not found")
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.addFlash(w, r, "Movie deleted")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
