package viewmodel

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Tokenizer splits source text into per-line syntax tokens.
type Tokenizer interface {
	// TokenizeLines returns one token slice per source line. The result
	// always has exactly as many entries as the source has lines.
	TokenizeLines(source, lang string) [][]Token
}

// ChromaTokenizer implements Tokenizer with chroma lexers. An unknown
// language hint falls back to plain text tokens.
type ChromaTokenizer struct{}

func (ChromaTokenizer) TokenizeLines(source, lang string) [][]Token {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return plainLines(source)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return plainLines(source)
	}

	lines := [][]Token{nil}
	for _, tok := range iterator.Tokens() {
		class := classFor(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			cur := len(lines) - 1
			lines[cur] = append(lines[cur], Token{Text: part, Class: class})
		}
	}

	want := lineCount(source)
	for len(lines) < want {
		lines = append(lines, nil)
	}
	return lines[:want]
}

// classFor resolves the short chroma class for a token type, walking up the
// type hierarchy like chroma's own HTML formatter does.
func classFor(t chroma.TokenType) string {
	if c, ok := chroma.StandardTypes[t]; ok {
		return c
	}
	if c, ok := chroma.StandardTypes[t.SubCategory()]; ok {
		return c
	}
	if c, ok := chroma.StandardTypes[t.Category()]; ok {
		return c
	}
	return ""
}

func plainLines(source string) [][]Token {
	raw := strings.Split(source, "\n")
	out := make([][]Token, len(raw))
	for i, line := range raw {
		if line != "" {
			out[i] = []Token{{Text: line}}
		}
	}
	return out
}

func lineCount(source string) int {
	return strings.Count(source, "\n") + 1
}
