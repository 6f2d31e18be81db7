package handlers

import (
	"net/http"

	"Reelist/models"
)

type AddPageData struct {
	Form   AddMovieForm
	Errors map[string]string
}

// Add renders the full manual creation form on GET and creates the
// record on a valid POST. Invalid submissions re-render the form with
// field errors and store nothing.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "add", AddPageData{})
		return
	}

	form, errs := ParseAddMovieForm(r)
	if errs != nil {
		h.render(w, "add", AddPageData{Form: form, Errors: errs})
		return
	}

	movie := models.Movie{
		Title:       form.Title,
		Year:        form.Year,
		Description: form.Description,
		Rating:      form.Rating,
		Review:      form.Review,
		ImgURL:      form.ImgURL,
	}
	if _, err := h.store.Create(r.Context(), movie); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.addFlash(w, r, "Movie added")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
