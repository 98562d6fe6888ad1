package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contactly/backend/internal/config"
	"github.com/contactly/backend/internal/handler"
	"github.com/contactly/backend/internal/logging"
	"github.com/contactly/backend/internal/repository"
	"github.com/contactly/backend/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.Environment, cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	contactService := service.NewContactService(contactRepo)

	h := handler.New(pool, cfg.AllowedOrigins)
	contactHandler := handler.NewContactHandler(contactService)
	submitLimiter := handler.NewRateLimiter(cfg.SubmitRateLimit)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(handler.RequestLogger)
	r.Use(handler.SecurityHeaders)
	r.Use(h.CORS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.With(submitLimiter.Limit).Post("/contact-us", contactHandler.Submit)

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", contactHandler.List)
			r.Get("/stats/summary", contactHandler.Stats)
			r.Get("/{id}", contactHandler.Get)
			r.Patch("/{id}/status", contactHandler.UpdateStatus)
			r.Delete("/{id}", contactHandler.Delete)
		})
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
