// Package previewuri derives and parses the synthetic markdown: URIs that
// identify rendered previews of source documents.
//
// A preview URI is always derivable from, and reversible to, the original
// document URI: the original is carried verbatim in the query component.
// Preview URIs are never persisted.
package previewuri

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/starford/sowilo/internal/apperr"
)

// Scheme is the URI scheme under which rendered previews are published.
const Scheme = "markdown"

// Suffix is appended to the original path to form the preview path.
const Suffix = ".rendered"

// Derive builds the preview URI for an original document URI.
func Derive(original *url.URL) *url.URL {
	return &url.URL{
		Scheme:   Scheme,
		Path:     original.Path + Suffix,
		RawQuery: url.QueryEscape(original.String()),
	}
}

// Parse recovers the original document URI from a preview URI.
// It fails when the scheme is not "markdown" or the query component does
// not carry a parsable original URI.
func Parse(preview *url.URL) (*url.URL, error) {
	if preview.Scheme != Scheme {
		return nil, fmt.Errorf("previewuri: scheme %q: %w", preview.Scheme, apperr.ErrBadPreviewURI)
	}
	if preview.RawQuery == "" {
		return nil, fmt.Errorf("previewuri: empty query: %w", apperr.ErrBadPreviewURI)
	}
	raw, err := url.QueryUnescape(preview.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("previewuri: unescape query: %w", apperr.ErrBadPreviewURI)
	}
	original, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("previewuri: parse query %q: %w", raw, apperr.ErrBadPreviewURI)
	}
	return original, nil
}

// ParseString is Parse for a raw preview URI string.
func ParseString(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("previewuri: parse %q: %w", s, apperr.ErrBadPreviewURI)
	}
	return Parse(u)
}

// IsPreview reports whether s looks like a preview URI.
func IsPreview(s string) bool {
	return strings.HasPrefix(s, Scheme+":")
}
