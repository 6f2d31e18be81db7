package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Reelist/config"
	"Reelist/database"
	"Reelist/handlers"
	"Reelist/logger"
	"Reelist/middleware"
	"Reelist/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.Init(cfg.LogPath, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	store := services.NewPostgresMovieStore(db)
	tmdb := services.NewTMDBClient(cfg)

	h, err := handlers.New(cfg, store, tmdb, zlog, "templates")
	if err != nil {
		zlog.Fatal("Failed to build handlers", zap.Error(err))
	}

	r := chi.NewRouter()
	r.Use(middleware.Recover(zlog))
	r.Use(middleware.Logging(zlog))
	r.Mount("/", h.Routes())

	addr := ":" + cfg.ServerPort
	zlog.Info("Reelist starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Environment),
		zap.Bool("debug", cfg.Debug),
	)

	if err := http.ListenAndServe(addr, r); err != nil {
		zlog.Fatal("Server failed", zap.Error(err))
	}
}
