// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/sowilo/internal/api"
	"github.com/starford/sowilo/internal/docservice"
	"github.com/starford/sowilo/internal/index"
	"github.com/starford/sowilo/internal/provider"
	"github.com/starford/sowilo/internal/refresh"
	"github.com/starford/sowilo/internal/render"
	"github.com/starford/sowilo/internal/sse"
	"github.com/starford/sowilo/internal/storage"
	"github.com/starford/sowilo/internal/telemetry"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("workspace_path", cfg.Workspace.Path),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure workspace directory exists.
	if err := os.MkdirAll(cfg.Workspace.Path, 0o755); err != nil {
		return fmt.Errorf("create workspace dir: %w", err)
	}

	// Initialize storage.
	store, err := storage.NewFS(cfg.Workspace.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// Initialize SQLite index.
	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	// Run initial sync.
	if err := index.Sync(db, store, logger); err != nil {
		logger.Warn("initial sync failed", slog.String("error", err.Error()))
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)

	// Preview rendering pipeline. Options are re-read from the config on
	// every render so preview settings apply without a restart.
	renderer := render.New(render.NewChromaHighlighter(cfg.Preview.HighlightStyle))
	prov := provider.New(store, db, renderer, func() render.Options {
		return render.Options{
			Styles:               cfg.Preview.Styles,
			FontFamily:           cfg.Preview.FontFamily,
			FontSize:             cfg.Preview.FontSize,
			LineHeight:           cfg.Preview.LineHeight,
			HideFrontMatter:      cfg.Preview.HideFrontMatter,
			ScrollBeyondLastLine: cfg.Preview.ScrollBeyondLastLine,
			AssetsDir:            cfg.Preview.AssetsDir,
			WorkspaceRoot:        store.Root(),
		}
	}, logger)

	// Debounced preview invalidation: bursts of file events collapse into
	// one preview.updated per window.
	invalidator := refresh.NewInvalidator(refresh.DefaultDelay, broker.PublishPreviewUpdated)
	defer invalidator.Close()

	metrics := telemetry.New(cfg.App.Telemetry, logger)

	// Build API service and router.
	svc := docservice.NewService(store, db)
	apiRouter := api.NewRouter(svc, prov, metrics, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker, cfg.Workspace.Path)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start file watcher. Document events go out immediately; preview
	// refreshes are funneled through the invalidator.
	g.Go(func() error {
		index.Watch(gCtx, db, store, cfg.Workspace.Path, logger, func(kind, path string) {
			broker.PublishDocumentEvent(kind, path)
			invalidator.Update(prov.PreviewURI(path))
		})
		return nil
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		broker.Close()

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
