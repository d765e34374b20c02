package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/milan/taxi-booking-website/internal/api"
	"github.com/milan/taxi-booking-website/internal/api/middleware"
	"github.com/milan/taxi-booking-website/internal/config"
	"github.com/milan/taxi-booking-website/internal/metrics"
	"github.com/milan/taxi-booking-website/internal/repository/postgres"
	"github.com/milan/taxi-booking-website/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Initialize services
	services := service.NewServices(repos, cfg)

	// Metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Rate limiter for the public auth endpoints
	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	defer rateLimiter.Stop()

	// Initialize router
	router := api.NewRouter(api.RouterDeps{
		Services:    services,
		Collector:   collector,
		Gatherer:    registry,
		RateLimiter: rateLimiter,
		Config:      cfg,
	})

	// Periodically sweep expired session rows. Expiry is also checked on
	// every lookup; this only keeps the table small.
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.SessionSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := services.Auth.DeleteExpiredSessions(context.Background())
				if err != nil {
					log.Printf("ERROR [main] session sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("session sweep removed %d expired sessions", n)
				}
			case <-sweepDone:
				return
			}
		}
	}()

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	close(sweepDone)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
