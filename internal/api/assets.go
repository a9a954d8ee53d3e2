package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// AssetHandler serves raw workspace files (images, stylesheets) that
// rendered previews reference by relative path.
type AssetHandler struct {
	workspaceRoot string
}

// NewAssetHandler creates a handler rooted at the workspace directory.
func NewAssetHandler(workspaceRoot string) *AssetHandler {
	return &AssetHandler{workspaceRoot: workspaceRoot}
}

// safePath validates the relative asset path and returns the absolute path
// under the workspace root. Traversal outside the root is rejected.
func (h *AssetHandler) safePath(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("asset path is required")
	}
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid asset path: %s", rel)
	}
	abs := filepath.Join(h.workspaceRoot, cleaned)
	if !strings.HasPrefix(abs, h.workspaceRoot+string(os.PathSeparator)) && abs != h.workspaceRoot {
		return "", fmt.Errorf("path escapes workspace")
	}
	return abs, nil
}

// ServeFile handles GET /assets/*.
func (h *AssetHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	abs, err := h.safePath(rel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	info, statErr := os.Stat(abs)
	if os.IsNotExist(statErr) || (statErr == nil && info.IsDir()) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, abs)
}
