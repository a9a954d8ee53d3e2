package render

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Options is the per-render configuration snapshot. It is populated fresh
// on every render so configuration edits take effect on the next refresh.
type Options struct {
	Styles               []string
	FontFamily           string
	FontSize             float64
	LineHeight           float64
	HideFrontMatter      bool
	ScrollBeyondLastLine bool
	AssetsDir            string
	WorkspaceRoot        string
}

// Fixed stylesheets shipped with the server, resolved under Options.AssetsDir.
var baseStylesheets = []string{"markdown.css", "highlight.css"}

// FixHref resolves a user-configured stylesheet reference to an href:
//  1. unchanged when it already carries a URL scheme,
//  2. as a file URI when it is an absolute local path,
//  3. joined under the workspace root when one is configured,
//  4. otherwise joined against the previewed document's directory.
func FixHref(href, workspaceRoot, docDir string) string {
	if href == "" {
		return href
	}
	if u, err := url.Parse(href); err == nil && u.Scheme != "" {
		return href
	}
	if filepath.IsAbs(href) {
		return fileURI(href)
	}
	if workspaceRoot != "" {
		return fileURI(filepath.Join(workspaceRoot, href))
	}
	return fileURI(filepath.Join(docDir, href))
}

func fileURI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// BuildDocument wraps rendered body HTML in a complete preview document:
// doctype, head with base stylesheets, user stylesheets, optional font
// override block, a <base> tag pointing at the original document, and a
// body carrying the scroll class when enabled.
func BuildDocument(body []byte, original *url.URL, opts Options) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta http-equiv="Content-type" content="text/html;charset=UTF-8">` + "\n")

	for _, name := range baseStylesheets {
		writeStylesheet(&b, fileURI(filepath.Join(opts.AssetsDir, name)))
	}

	docDir := filepath.Dir(original.Path)
	for _, style := range opts.Styles {
		writeStylesheet(&b, FixHref(style, opts.WorkspaceRoot, docDir))
	}

	if css := fontOverrideCSS(opts); css != "" {
		fmt.Fprintf(&b, "<style>\n%s</style>\n", css)
	}

	fmt.Fprintf(&b, "<base href=%q>\n", original.String())
	b.WriteString("</head>\n")

	if opts.ScrollBeyondLastLine {
		b.WriteString(`<body class="scrollBeyondLastLine">` + "\n")
	} else {
		b.WriteString("<body>\n")
	}
	b.Write(body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeStylesheet(b *strings.Builder, href string) {
	fmt.Fprintf(b, "<link rel=%q type=%q href=%q>\n", "stylesheet", "text/css", href)
}

// fontOverrideCSS builds a body rule from the font overrides. Each
// declaration is included only when the corresponding value is present or
// positive.
func fontOverrideCSS(opts Options) string {
	var decls []string
	if opts.FontFamily != "" {
		decls = append(decls, fmt.Sprintf("font-family: %s;", opts.FontFamily))
	}
	if opts.FontSize > 0 {
		decls = append(decls, fmt.Sprintf("font-size: %vpx;", opts.FontSize))
	}
	if opts.LineHeight > 0 {
		decls = append(decls, fmt.Sprintf("line-height: %v;", opts.LineHeight))
	}
	if len(decls) == 0 {
		return ""
	}
	return "body {\n\t" + strings.Join(decls, "\n\t") + "\n}\n"
}
