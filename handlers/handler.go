package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"Reelist/config"
	"Reelist/models"
	"Reelist/services"
)

const sessionName = "reelist-session"

// Handler owns everything the route handlers need: storage, the TMDB
// client, the session store for flash messages and the parsed templates.
type Handler struct {
	cfg       *config.Config
	store     services.MovieStore
	tmdb      *services.TMDBClient
	sessions  *sessions.CookieStore
	logger    *zap.Logger
	templates map[string]*template.Template
}

func New(cfg *config.Config, store services.MovieStore, tmdb *services.TMDBClient, logger *zap.Logger, templatesDir string) (*Handler, error) {
	cookieStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	}

	funcMap := GetFuncMap()
	templates := make(map[string]*template.Template)
	for _, page := range []string{"index", "search", "select", "add", "update", "error"} {
		tmpl, err := template.New(page).Funcs(funcMap).ParseFiles(
			filepath.Join(templatesDir, "layouts", "base.html"),
			filepath.Join(templatesDir, "pages", page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Handler{
		cfg:       cfg,
		store:     store,
		tmdb:      tmdb,
		sessions:  cookieStore,
		logger:    logger,
		templates: templates,
	}, nil
}

// Routes wires every endpoint onto a fresh router.
func (h *Handler) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/", h.Home)
	r.Get("/search", h.Search)
	r.Post("/search", h.Search)
	r.Get("/confirm", h.Confirm)
	r.Post("/confirm", h.Confirm)
	r.Get("/add", h.Add)
	r.Post("/add", h.Add)
	r.Get("/update", h.Update)
	r.Post("/update", h.Update)
	r.Get("/delete/{id}", h.Delete)
	return r
}

func GetFuncMap() template.FuncMap {
	return template.FuncMap{
		"displayYear": func(year int) string {
			if year == models.UnknownYear {
				return "?"
			}
			return strconv.Itoa(year)
		},
		"displayRating": func(rating float64) string {
			return strconv.FormatFloat(rating, 'f', 1, 64)
		},
	}
}

func (h *Handler) render(w http.ResponseWriter, page string, data any) {
	tmpl, ok := h.templates[page]
	if !ok {
		h.logger.Error("unknown template", zap.String("page", page))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		h.logger.Error("failed to render template", zap.String("page", page), zap.Error(err))
	}
}

type errorPageData struct {
	Status  int
	Title   string
	Message string
}

func (h *Handler) notFound(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusNotFound)
	h.render(w, "error", errorPageData{Status: http.StatusNotFound, Title: "Not Found", Message: message})
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	w.WriteHeader(http.StatusInternalServerError)
	h.render(w, "error", errorPageData{Status: http.StatusInternalServerError, Title: "Something went wrong", Message: "The request could not be completed."})
}

func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := h.sessions.Get(r, sessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		h.logger.Warn("failed to save session", zap.Error(err))
	}
}

func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := h.sessions.Get(r, sessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		h.logger.Warn("failed to save session", zap.Error(err))
	}
	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}
	return flashes
}
