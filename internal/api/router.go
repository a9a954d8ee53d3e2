package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/sowilo/internal/docservice"
	"github.com/starford/sowilo/internal/provider"
	"github.com/starford/sowilo/internal/telemetry"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
// workspaceRoot is used to resolve raw asset files.
func NewRouter(svc *docservice.Service, prov *provider.Provider, metrics telemetry.Reporter, authEnabled bool, token string, sseHandler http.Handler, workspaceRoot string) chi.Router {
	h := NewHandler(svc, prov, metrics)
	ah := NewAssetHandler(workspaceRoot)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Documents CRUD.
	r.Get("/documents", h.ListDocuments)
	r.Post("/documents", h.CreateDocument)
	r.Get("/documents/*", h.GetDocument)
	r.Put("/documents/*", h.UpdateDocument)
	r.Delete("/documents/*", h.DeleteDocument)

	// Rendered previews.
	r.Get("/preview/*", h.Preview)

	// Editor-style commands.
	r.Post("/commands/open-preview", h.OpenPreview)
	r.Post("/commands/show-source", h.ShowSource)

	// Search.
	r.Get("/search", h.Search)

	// Raw workspace assets referenced by previews.
	r.Get("/assets/*", ah.ServeFile)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
