package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dutchev/chargemap/internal/middleware"
	"github.com/dutchev/chargemap/internal/pipeline"
)

// RouterConfig carries the knobs the router needs beyond the handlers.
type RouterConfig struct {
	AllowedOrigins []string
	DefaultSeeds   pipeline.Seeds
}

// NewRouter assembles the HTTP surface: public entity endpoints, the login
// endpoint and the token-guarded admin routes.
func NewRouter(h *Handler, authMw *middleware.AuthMiddleware, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	rateLimit := middleware.NewRateLimitMiddleware()

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stations", h.GetStations)
		r.Get("/edges", h.GetEdges)
		r.Get("/trips", h.GetTrips)
		r.Get("/routes/{routeKey}", h.GetRoute)
		r.Get("/status", h.GetStatus)

		r.With(rateLimit.RateLimit(10, time.Minute)).Post("/auth/login", h.Login)

		r.Route("/admin", func(r chi.Router) {
			// Without an auth middleware the admin surface stays
			// unreachable rather than open.
			if authMw == nil {
				r.Post("/reload", adminDisabled)
				return
			}
			r.Use(authMw.RequireAdmin)
			r.Post("/reload", h.Reload(cfg.DefaultSeeds))
		})
	})

	return r
}

func adminDisabled(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "admin surface not configured"})
}
