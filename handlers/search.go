package handlers

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

type SearchPageData struct {
	Form        SearchForm
	Errors      map[string]string
	SearchError string
}

type SearchResultView struct {
	Title      string
	Year       string
	Overview   string
	PosterURL  string
	HasPoster  bool
	ConfirmURL string
}

type SelectPageData struct {
	Query   string
	Results []SearchResultView
}

// Search renders the query form on GET and runs the external search on
// POST. An upstream failure degrades to a message on the form instead
// of a failed request.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "search", SearchPageData{})
		return
	}

	form, errs := ParseSearchForm(r)
	if errs != nil {
		h.render(w, "search", SearchPageData{Form: form, Errors: errs})
		return
	}

	results, err := h.tmdb.Search(r.Context(), form.Title)
	if err != nil {
		h.logger.Error("tmdb search failed", zap.String("query", form.Title), zap.Error(err))
		h.render(w, "search", SearchPageData{
			Form:        form,
			SearchError: "Search is unavailable right now, please try again later.",
		})
		return
	}

	views := make([]SearchResultView, 0, len(results))
	for _, res := range results {
		params := url.Values{}
		params.Set("title", res.Title)
		params.Set("year", res.Year())
		params.Set("description", res.Overview)
		if res.PosterPath != "" {
			params.Set("img_url", res.PosterPath)
		}

		view := SearchResultView{
			Title:      res.Title,
			Year:       res.Year(),
			Overview:   res.Overview,
			ConfirmURL: "/confirm?" + params.Encode(),
		}
		if res.PosterPath != "" {
			view.PosterURL = h.tmdb.PosterURL(res.PosterPath)
			view.HasPoster = true
		}
		views = append(views, view)
	}

	h.render(w, "select", SelectPageData{Query: form.Title, Results: views})
}
