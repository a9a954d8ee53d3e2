package render

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownLanguage is returned when no lexer matches the language hint.
var ErrUnknownLanguage = errors.New("render: unknown language")

// Highlighter turns a code block into HTML fit for embedding inside a
// <pre><code> wrapper. Implementations return an error instead of panicking
// or emitting partial output; callers fall back to escaped plain text.
type Highlighter interface {
	Highlight(code, lang string) (string, error)
}

// ChromaHighlighter implements Highlighter on top of chroma.
type ChromaHighlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// NewChromaHighlighter creates a highlighter using the named chroma style.
// An unknown style name falls back to chroma's default style.
func NewChromaHighlighter(styleName string) *ChromaHighlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &ChromaHighlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
		style: style,
	}
}

// Highlight tokenises code with the lexer registered for lang and renders
// span-wrapped HTML. The <pre><code> wrapper is the caller's concern.
func (h *ChromaHighlighter) Highlight(code, lang string) (string, error) {
	if lang == "" {
		return "", ErrUnknownLanguage
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("render: tokenise: %w", err)
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("render: format: %w", err)
	}
	return buf.String(), nil
}
