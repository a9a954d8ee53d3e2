package render

import (
	"bytes"
	"log/slog"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// codeBlockRenderer renders fenced and indented code blocks through a
// Highlighter. A recognised language yields highlighted output; any
// highlight failure, or an absent/unrecognised language tag, falls back to
// escaped plain text inside the same <pre><code> wrapper. The fallback is
// a recovered condition and is never surfaced to the user.
type codeBlockRenderer struct {
	highlighter Highlighter
}

func newCodeBlockRenderer(h Highlighter) renderer.NodeRenderer {
	return &codeBlockRenderer{highlighter: h}
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
}

func (r *codeBlockRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	lang := ""
	if fenced, ok := node.(*ast.FencedCodeBlock); ok {
		lang = string(fenced.Language(source))
	}

	var code bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	_, _ = w.WriteString("<pre><code")
	if lang != "" {
		_, _ = w.WriteString(` class="language-`)
		_, _ = w.Write(util.EscapeHTML([]byte(lang)))
		_, _ = w.WriteString(`"`)
	}
	_ = w.WriteByte('>')

	if r.highlighter != nil && lang != "" {
		highlighted, err := r.highlighter.Highlight(code.String(), lang)
		if err == nil {
			_, _ = w.WriteString(highlighted)
			_, _ = w.WriteString("</code></pre>\n")
			return ast.WalkSkipChildren, nil
		}
		slog.Debug("render: highlight fallback",
			slog.String("lang", lang),
			slog.String("error", err.Error()))
	}

	_, _ = w.Write(util.EscapeHTML(code.Bytes()))
	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkSkipChildren, nil
}
