// Command firenotes-server starts the Firenotes HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tbolorunduro/firenotes/internal/config"
	"github.com/tbolorunduro/firenotes/internal/email"
	"github.com/tbolorunduro/firenotes/internal/migrate"
	"github.com/tbolorunduro/firenotes/internal/repository/postgres"
	"github.com/tbolorunduro/firenotes/internal/server/httpserver"
	"github.com/tbolorunduro/firenotes/internal/service"
	"github.com/tbolorunduro/firenotes/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, and starts the HTTP server.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	noteRepo := postgres.NewNoteRepo(db)

	// Collaborators
	codec := token.New([]byte(cfg.Secret), cfg.AuthTokenTTL, cfg.ResetTokenTTL)
	sender := email.NewMailgun(cfg.MailgunBaseURI, cfg.MailgunAPIKey, cfg.ServiceEmail)

	// Services
	authSvc := service.NewAuthService(userRepo, codec, sender, cfg.FrontEndURL, logger)
	noteSvc := service.NewNoteService(noteRepo)
	userSvc := service.NewUserService(userRepo)

	app := httpserver.New(authSvc, noteSvc, userSvc, codec, logger)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
