package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds and returns the Chi router with all routes
// configured. Rate limiting is applied globally: 60 requests per
// minute per IP.
func NewRouter(handlers *Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Get("/api/v1/health", Health)

	r.Route("/api/v1/cities", func(r chi.Router) {
		r.Get("/", handlers.SearchCities)
		r.Get("/{cityID}/weather", handlers.GetWeather)
		r.Get("/{cityID}/activities", handlers.GetActivityRankings)
		r.Get("/{cityID}/travel-plan", handlers.GetTravelPlan)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
