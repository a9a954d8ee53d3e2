// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Sowilo tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/sowilo/internal/index"
	"github.com/starford/sowilo/internal/provider"
	"github.com/starford/sowilo/internal/storage"
)

// Server wraps the MCP server with Sowilo tools.
type Server struct {
	mcp   *server.MCPServer
	store storage.Provider
	db    *index.DB
	prov  *provider.Provider
}

// New creates a new MCP server with all Sowilo tools registered.
func New(store storage.Provider, db *index.DB, prov *provider.Provider) *Server {
	s := &Server{store: store, db: db, prov: prov}

	s.mcp = server.NewMCPServer(
		"Sowilo",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("render_preview",
		mcp.WithDescription("Render a Markdown document to a full HTML preview page. "+
			"Headings and paragraphs carry data-line attributes mapping back to source lines."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the document (e.g. guides/intro.md)")),
	), s.renderPreview)

	s.mcp.AddTool(mcp.NewTool("read_document",
		mcp.WithDescription("Read the raw Markdown content of a document."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the document")),
	), s.readDocument)

	s.mcp.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List all Markdown documents, or documents in a specific folder."),
		mcp.WithString("folder", mcp.Description("Optional folder to list (empty for all)")),
	), s.listDocuments)

	s.mcp.AddTool(mcp.NewTool("search_documents",
		mcp.WithDescription("Full-text search through document content and titles."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchDocuments)

	// Resource: preview URI scheme.
	s.mcp.AddResource(
		mcp.NewResource("sowilo://preview-scheme", "Preview URI Scheme",
			mcp.WithResourceDescription("How preview URIs are derived from document URIs and resolved back."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readPreviewSchemeResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) renderPreview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	html, err := s.prov.ProvidePath(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	return mcp.NewToolResultText(html), nil
}

func (s *Server) readDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) listDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := ""
	if f, err := req.RequireString("folder"); err == nil {
		folder = f
	}

	metas, err := s.store.List(folder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var paths []string
	for _, m := range metas {
		paths = append(paths, m.Path)
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) searchDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.db.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readPreviewSchemeResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "sowilo://preview-scheme",
			MIMEType: "text/markdown",
			Text:     PreviewSchemeContract,
		},
	}, nil
}
