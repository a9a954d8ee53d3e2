// Package provider implements the preview content provider: given a preview
// URI it resolves the original document and produces the full preview HTML
// document.
package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/checksum"
	"github.com/starford/sowilo/internal/frontmatter"
	"github.com/starford/sowilo/internal/index"
	"github.com/starford/sowilo/internal/previewuri"
	"github.com/starford/sowilo/internal/render"
	"github.com/starford/sowilo/internal/storage"
)

// OptionsFunc supplies a fresh configuration snapshot for each render, so
// configuration edits take effect without a restart.
type OptionsFunc func() render.Options

// Provider renders preview documents on demand.
type Provider struct {
	store    storage.Provider
	db       index.DocumentIndex
	renderer *render.Renderer
	options  OptionsFunc
	logger   *slog.Logger
}

// New creates a Provider. db may be nil to disable the render cache.
func New(store storage.Provider, db index.DocumentIndex, renderer *render.Renderer, options OptionsFunc, logger *slog.Logger) *Provider {
	return &Provider{
		store:    store,
		db:       db,
		renderer: renderer,
		options:  options,
		logger:   logger,
	}
}

// OriginalURI returns the file URI of a workspace-relative document path.
func (p *Provider) OriginalURI(rel string) *url.URL {
	return &url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(filepath.Join(p.store.Root(), rel)),
	}
}

// PreviewURI returns the preview URI string for a workspace-relative path.
func (p *Provider) PreviewURI(rel string) string {
	return previewuri.Derive(p.OriginalURI(rel)).String()
}

// Provide resolves a preview URI and returns the rendered preview document.
// An unresolvable document yields apperr.ErrNotFound; the caller surfaces it.
func (p *Provider) Provide(ctx context.Context, preview string) (string, error) {
	original, err := previewuri.ParseString(preview)
	if err != nil {
		return "", err
	}
	rel, err := p.relPath(original)
	if err != nil {
		return "", err
	}
	return p.ProvidePath(ctx, rel)
}

// ProvidePath renders the preview for a workspace-relative document path.
func (p *Provider) ProvidePath(_ context.Context, rel string) (string, error) {
	data, err := p.store.Read(rel)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("provider: %s: %w", rel, apperr.ErrNotFound)
		}
		return "", err
	}

	// Configuration is read fresh on every render, never cached.
	opts := p.options()

	source := data
	if opts.HideFrontMatter {
		source = frontmatter.Strip(source)
	}

	body, err := p.renderBody(rel, source)
	if err != nil {
		return "", err
	}

	// The shell is always reassembled so style/config changes apply even on
	// a render-cache hit.
	return render.BuildDocument(body, p.OriginalURI(rel), opts), nil
}

// renderBody converts source to body HTML, serving an unchanged document
// from the render cache when possible.
func (p *Provider) renderBody(rel string, source []byte) ([]byte, error) {
	cs := checksum.Sum(source)

	if p.db != nil {
		cached, html, ok, err := p.db.GetRender(rel)
		if err != nil {
			p.logger.Warn("provider: render cache read failed",
				slog.String("path", rel), slog.String("error", err.Error()))
		} else if ok && cached == cs {
			return []byte(html), nil
		}
	}

	body, err := p.renderer.Render(source)
	if err != nil {
		return nil, err
	}

	if p.db != nil {
		if err := p.db.PutRender(rel, cs, string(body)); err != nil {
			p.logger.Warn("provider: render cache write failed",
				slog.String("path", rel), slog.String("error", err.Error()))
		}
	}
	return body, nil
}

// relPath maps an original file URI back to a workspace-relative path.
// Documents outside the workspace resolve to not-found.
func (p *Provider) relPath(original *url.URL) (string, error) {
	if original.Scheme != "file" {
		return "", fmt.Errorf("provider: unsupported scheme %q: %w", original.Scheme, apperr.ErrNotFound)
	}
	rel, err := filepath.Rel(p.store.Root(), filepath.FromSlash(original.Path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("provider: %s outside workspace: %w", original.Path, apperr.ErrNotFound)
	}
	return rel, nil
}
