// Package render converts Markdown documents to preview HTML: a goldmark
// pipeline with source-line tagging and chroma syntax highlighting, plus
// assembly of the surrounding HTML document shell.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Renderer converts Markdown body text to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer. Raw HTML in the source passes through unchanged
// (previews are local, trusted content). Code blocks are highlighted via h.
func New(h Highlighter) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newSourceLineRenderer(), 100),
				util.Prioritized(newCodeBlockRenderer(h), 100),
			),
		),
	)
	return &Renderer{md: md}
}

// Render converts Markdown source to body HTML.
func (r *Renderer) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("render: convert: %w", err)
	}
	return buf.Bytes(), nil
}
