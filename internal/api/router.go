package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matyo91/youtube-transcript-api/internal/api/handlers"
	"github.com/matyo91/youtube-transcript-api/internal/api/middleware"
	"github.com/matyo91/youtube-transcript-api/internal/config"
	"github.com/matyo91/youtube-transcript-api/internal/transcript"
)

func NewRouter(provider transcript.Provider, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(middleware.CORSHandler(cfg.CORSOrigins)))

	transcriptHandler := handlers.NewTranscriptHandler(provider)

	// Public routes
	r.Get("/", transcriptHandler.Welcome)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.APIKey))

		r.Get("/transcript", transcriptHandler.GetTranscript)
		r.Get("/transcripts", transcriptHandler.ListTranscripts)
	})

	return r
}
