package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vchartered/backend/internal/account"
	"github.com/vchartered/backend/internal/activitylog"
	"github.com/vchartered/backend/internal/ai"
	"github.com/vchartered/backend/internal/api"
	"github.com/vchartered/backend/internal/infrastructure/config"
	"github.com/vchartered/backend/internal/scoreboard"
	"github.com/vchartered/backend/internal/service"
	"github.com/vchartered/backend/internal/session"
	"github.com/vchartered/backend/internal/store"

	_ "github.com/vchartered/backend/docs" // generated swagger docs
)

// @title           V-Chartered API
// @version         1.0
// @description     AI study companion for CA aspirants: mock tests, answer checking, revision notes and the Kuchu chat tutor.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gemini := ai.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, logger)

	accounts := account.NewService(db, logger)
	scores := scoreboard.NewService(db)
	logs := activitylog.NewService(db, logger)
	defer logs.Close()

	sessions := session.NewManager(accounts, cfg.SessionSecret)

	handler := api.NewHandler(
		accounts,
		scores,
		logs,
		sessions,
		service.NewMockTestService(gemini, scores, logs, logger),
		service.NewCheckerService(gemini, logs),
		service.NewChatService(gemini, logs),
		service.NewLibraryService(gemini, logs),
		logger,
	)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	handler.RegisterRoutes(mux)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → Identity → mux ───────────
	chain := api.Logging(logger)(api.CORS(api.WithIdentity(sessions, mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      120 * time.Second, // model calls are slow
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
