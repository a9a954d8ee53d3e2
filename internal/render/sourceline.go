package render

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// sourceLineRenderer tags paragraph and heading elements with a data-line
// attribute carrying their originating source line (1-based) when the node
// has a non-empty source segment. Scroll-sync clients use the attribute to
// align the preview with a cursor position.
type sourceLineRenderer struct{}

func newSourceLineRenderer() renderer.NodeRenderer {
	return &sourceLineRenderer{}
}

func (r *sourceLineRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindHeading, r.renderHeading)
}

// sourceLine returns the 1-based line of the node's first source segment,
// or 0 when the node has no source map.
func sourceLine(source []byte, node ast.Node) int {
	lines := node.Lines()
	if lines.Len() == 0 {
		return 0
	}
	start := lines.At(0).Start
	if start > len(source) {
		return 0
	}
	return bytes.Count(source[:start], []byte{'\n'}) + 1
}

func tagSourceLine(source []byte, node ast.Node) {
	if line := sourceLine(source, node); line > 0 {
		node.SetAttributeString("data-line", []byte(strconv.Itoa(line)))
	}
}

func (r *sourceLineRenderer) renderParagraph(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		tagSourceLine(source, node)
		_, _ = w.WriteString("<p")
		html.RenderAttributes(w, node, html.ParagraphAttributeFilter)
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

func (r *sourceLineRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		tagSourceLine(source, node)
		_, _ = w.WriteString("<h")
		_ = w.WriteByte("0123456"[n.Level])
		html.RenderAttributes(w, node, html.HeadingAttributeFilter)
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</h")
		_ = w.WriteByte("0123456"[n.Level])
		_, _ = w.WriteString(">\n")
	}
	return ast.WalkContinue, nil
}
