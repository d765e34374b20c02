package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/milan/taxi-booking-website/internal/api/handlers"
	"github.com/milan/taxi-booking-website/internal/api/middleware"
	"github.com/milan/taxi-booking-website/internal/config"
	"github.com/milan/taxi-booking-website/internal/metrics"
	"github.com/milan/taxi-booking-website/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type RouterDeps struct {
	Services    *service.Services
	Collector   *metrics.Collector
	Gatherer    prometheus.Gatherer
	RateLimiter *middleware.RateLimiter
	Config      *config.Config
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics(deps.Collector))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.Services.Auth, deps.Collector, deps.Config)
	bookingHandler := handlers.NewBookingHandler(deps.Services.Booking, deps.Collector)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes, rate limited per client IP
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(deps.RateLimiter.AuthMiddleware())
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
			})

			// Logout stays public so it succeeds even with a dead session
			r.Post("/logout", authHandler.Logout)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(deps.Services.Auth))
				r.Get("/me", authHandler.Me)
				r.Put("/profile", authHandler.UpdateProfile)
			})
		})

		// Booking routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Services.Auth))

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", bookingHandler.Create)
				r.Get("/", bookingHandler.List)
			})
		})
	})

	return r
}
