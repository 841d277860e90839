// Package main implements the entry point for the BrandForge API server,
// which generates brand-consistent visual asset packages through a
// self-correcting Gemini generation loop.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/forgelab/brandforge-api/internal/api"
	"github.com/forgelab/brandforge-api/internal/api/middleware"
	"github.com/forgelab/brandforge-api/internal/brandcache"
	"github.com/forgelab/brandforge-api/internal/config"
	"github.com/forgelab/brandforge-api/internal/platform/gemini"
	"github.com/forgelab/brandforge-api/internal/platform/logger"
	"github.com/forgelab/brandforge-api/internal/service/assetgen"
	"github.com/forgelab/brandforge-api/internal/service/auth"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"text_model", cfg.LLM.TextModel,
		"image_model", cfg.LLM.ImageModel,
		"auth_enabled", cfg.Auth.JWTSecret != "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway, err := gemini.NewGateway(ctx, appLogger, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create model gateway: %w", err)
	}

	analyses := brandcache.New(gateway, appLogger)

	generator, err := assetgen.NewService(gateway, analyses, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create generation service: %w", err)
	}

	var validator auth.TokenValidator
	if cfg.Auth.JWTSecret != "" {
		validator, err = auth.NewJWTService(cfg.Auth)
		if err != nil {
			return fmt.Errorf("failed to create token validator: %w", err)
		}
	} else {
		slog.Warn("no JWT secret configured, generation endpoints are unauthenticated")
	}

	handler := api.NewAssetHandler(generator)
	router := newRouter(handler, middleware.NewAuthMiddleware(validator))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,

		// Generation runs can take minutes and the streaming endpoint
		// holds its connection open, so only the idle and header reads
		// are bounded here.
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func newRouter(handler *api.AssetHandler, authMiddleware *middleware.AuthMiddleware) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/health", handler.Health)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/api/analyze-brand", handler.AnalyzeBrand)
		r.Post("/api/generate/logos", handler.GenerateLogos)
		r.Post("/api/generate/social-media", handler.GenerateSocialMedia)
		r.Post("/api/generate/presentation", handler.GeneratePresentation)
		r.Post("/api/generate/email-templates", handler.GenerateEmailTemplates)
		r.Post("/api/generate/marketing", handler.GenerateMarketing)
		r.Post("/api/generate/complete-package", handler.GenerateCompletePackage)
		r.Post("/api/generate/complete-package/stream", handler.GenerateCompletePackageStream)
	})

	return r
}
