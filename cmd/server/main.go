package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/everythingcs/backend/internal/config"
	"github.com/everythingcs/backend/internal/fingerprint"
	"github.com/everythingcs/backend/internal/handler"
	"github.com/everythingcs/backend/internal/logging"
	"github.com/everythingcs/backend/internal/repository"
	"github.com/everythingcs/backend/internal/service"
	"github.com/everythingcs/backend/pkg/turnstile"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	// Missing secrets abort startup here, before any client data is touched.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	queryRepo := repository.NewPgQueryRepository(pool)
	feedbackRepo := repository.NewPgFeedbackRepository(pool)
	eventRepo := repository.NewPgEventRepository(pool)

	hasher := fingerprint.New(cfg.EventHashSecret)
	verifier := turnstile.NewClient(cfg.TurnstileSecret)

	contactService := service.NewContactService(queryRepo, cfg.BlogBaseURL)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	eventService := service.NewEventService(eventRepo, hasher)

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService, verifier)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, verifier)
	eventHandler := handler.NewEventHandler(eventService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/feedback", feedbackHandler.Submit)
	mux.HandleFunc("POST /api/events", eventHandler.Track)

	rateLimiter := handler.NewRateLimiter(cfg.RatePerMinute)
	root := handler.RequestID(
		handler.RequestLogger(
			handler.SecurityHeaders(
				rateLimiter.Middleware(
					h.CORS(mux)))))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
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
