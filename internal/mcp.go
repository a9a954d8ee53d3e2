package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/starford/sowilo/internal/index"
	"github.com/starford/sowilo/internal/mcpserver"
	"github.com/starford/sowilo/internal/provider"
	"github.com/starford/sowilo/internal/render"
	"github.com/starford/sowilo/internal/storage"
)

// RunMCP starts the MCP server on stdin/stdout instead of the HTTP server.
// Logs go to stderr because stdout belongs to the MCP transport.
func RunMCP(cfg *Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.Workspace.Path, 0o755); err != nil {
		return fmt.Errorf("create workspace dir: %w", err)
	}

	store, err := storage.NewFS(cfg.Workspace.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	if err := index.Sync(db, store, logger); err != nil {
		logger.Warn("initial sync failed", slog.String("error", err.Error()))
	}

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

	logger.Info("Starting MCP server on stdio",
		slog.String("workspace_path", cfg.Workspace.Path))

	srv := mcpserver.New(store, db, prov)
	if err := srv.ServeStdio(); err != nil && err != io.EOF {
		return fmt.Errorf("mcp server error: %w", err)
	}
	return nil
}
