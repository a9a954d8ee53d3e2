package viewmodel

import (
	"strings"
	"testing"
)

type staticTokenizer struct {
	lines [][]Token
}

func (s staticTokenizer) TokenizeLines(string, string) [][]Token {
	return s.lines
}

func plainTokenizer() Tokenizer {
	return tokenizerFunc(func(source, _ string) [][]Token {
		return plainLines(source)
	})
}

type tokenizerFunc func(source, lang string) [][]Token

func (f tokenizerFunc) TokenizeLines(source, lang string) [][]Token {
	return f(source, lang)
}

func TestWrapped_NoWrap(t *testing.T) {
	w := New("alpha\nbeta\n", Config{Tokenizer: plainTokenizer()})

	if got := w.LineCount(); got != 3 {
		t.Fatalf("LineCount() = %d, want 3", got)
	}
	if got := w.LineContent(1); got != "alpha" {
		t.Fatalf("LineContent(1) = %q, want %q", got, "alpha")
	}
	if got := w.LineContent(3); got != "" {
		t.Fatalf("LineContent(3) = %q, want empty", got)
	}
	if got := w.LineMaxColumn(2); got != 5 {
		t.Fatalf("LineMaxColumn(2) = %d, want 5", got)
	}
	if got := w.LineMaxColumn(3); got != 1 {
		t.Fatalf("LineMaxColumn(3) = %d, want 1", got)
	}
}

func TestWrapped_WrapsLongLines(t *testing.T) {
	// 10 runes wrapped at 4 -> rows of 4, 4, 2.
	w := New("abcdefghij\nshort", Config{WrapColumn: 4, Tokenizer: plainTokenizer()})

	if got := w.LineCount(); got != 4 {
		t.Fatalf("LineCount() = %d, want 4", got)
	}
	want := []string{"abcd", "efgh", "ij"}
	for i, content := range []string{w.LineContent(1), w.LineContent(2), w.LineContent(3)} {
		if content != want[i] {
			t.Errorf("LineContent(%d) = %q, want %q", i+1, content, want[i])
		}
	}
	if got := w.LineContent(4); got != "short" {
		t.Fatalf("LineContent(4) = %q, want %q", got, "short")
	}
}

func TestWrapped_LineNumbers(t *testing.T) {
	w := New("abcdefghij\nbeta", Config{WrapColumn: 4, Tokenizer: plainTokenizer()})

	want := []string{"1", "", "", "2"}
	for i, n := range want {
		if got := w.LineNumber(i + 1); got != n {
			t.Errorf("LineNumber(%d) = %q, want %q", i+1, got, n)
		}
	}
	if got := w.MaxLineNumberWidth(); got != 1 {
		t.Fatalf("MaxLineNumberWidth() = %d, want 1", got)
	}

	long := strings.Repeat("x\n", 11)
	w = New(long, Config{Tokenizer: plainTokenizer()})
	if got := w.MaxLineNumberWidth(); got != 2 {
		t.Fatalf("MaxLineNumberWidth() = %d, want 2", got)
	}
}

func TestWrapped_ViewModelRoundTrip(t *testing.T) {
	w := New("abcdefghij\nbeta", Config{WrapColumn: 4, Tokenizer: plainTokenizer()})

	// Model -> view -> model is identity for every valid model position.
	for line := 1; line <= 2; line++ {
		for col := 1; col <= len(w.lines[line-1])+1; col++ {
			p := Position{Line: line, Column: col}
			back := w.ViewToModel(w.ModelToView(p))
			if back != p {
				t.Errorf("round trip of %+v returned %+v", p, back)
			}
		}
	}

	// View line 2 starts at model column 5.
	if got := w.ViewToModel(Position{Line: 2, Column: 1}); got != (Position{Line: 1, Column: 5}) {
		t.Fatalf("ViewToModel(2,1) = %+v", got)
	}
	// A position at a wrap boundary maps to the end of the earlier row.
	if got := w.ModelToView(Position{Line: 1, Column: 5}); got != (Position{Line: 1, Column: 5}) {
		t.Fatalf("ModelToView(1,5) = %+v", got)
	}
}

func TestWrapped_ClampsInvalidPositions(t *testing.T) {
	w := New("abc\nde", Config{Tokenizer: plainTokenizer()})

	cases := []struct {
		name string
		in   Position
		want Position
	}{
		{"line too small", Position{Line: -3, Column: 2}, Position{Line: 1, Column: 2}},
		{"line too large", Position{Line: 99, Column: 1}, Position{Line: 2, Column: 1}},
		{"column too small", Position{Line: 1, Column: 0}, Position{Line: 1, Column: 1}},
		{"column too large", Position{Line: 2, Column: 50}, Position{Line: 2, Column: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.ValidateModelPosition(tc.in); got != tc.want {
				t.Fatalf("ValidateModelPosition(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
			if w.IsModelPositionVisible(tc.in) {
				t.Fatalf("IsModelPositionVisible(%+v) = true, want false", tc.in)
			}
		})
	}

	if !w.IsModelPositionVisible(Position{Line: 1, Column: 4}) {
		t.Fatal("end-of-line position should be visible")
	}
}

func TestWrapped_WhitespaceColumns(t *testing.T) {
	w := New("\tfoo  \n   \n", Config{TabSize: 4, Tokenizer: plainTokenizer()})

	if got := w.LineFirstNonWhitespaceColumn(1); got != 2 {
		t.Fatalf("LineFirstNonWhitespaceColumn(1) = %d, want 2", got)
	}
	if got := w.LineLastNonWhitespaceColumn(1); got != 5 {
		t.Fatalf("LineLastNonWhitespaceColumn(1) = %d, want 5", got)
	}
	if got := w.LineFirstNonWhitespaceColumn(2); got != 0 {
		t.Fatalf("LineFirstNonWhitespaceColumn(2) = %d, want 0 for blank line", got)
	}
	if got := w.LineLastNonWhitespaceColumn(2); got != 0 {
		t.Fatalf("LineLastNonWhitespaceColumn(2) = %d, want 0 for blank line", got)
	}
	if got := w.LineIndentLevel(1); got != 1 {
		t.Fatalf("LineIndentLevel(1) = %d, want 1", got)
	}
}

func TestWrapped_IndentLevelOnContinuations(t *testing.T) {
	w := New("        abcdefgh", Config{WrapColumn: 6, TabSize: 4, Tokenizer: plainTokenizer()})

	if w.LineCount() < 2 {
		t.Fatalf("LineCount() = %d, want wrapped rows", w.LineCount())
	}
	for line := 1; line <= w.LineCount(); line++ {
		if got := w.LineIndentLevel(line); got != 2 {
			t.Errorf("LineIndentLevel(%d) = %d, want 2", line, got)
		}
	}
}

func TestWrapped_TokensFollowWrap(t *testing.T) {
	tok := staticTokenizer{lines: [][]Token{{
		{Text: "abcd", Class: "k"},
		{Text: "efghij", Class: "s"},
	}}}
	w := New("abcdefghij", Config{WrapColumn: 4, Tokenizer: tok})

	got := w.LineTokens(1)
	if len(got) != 1 || got[0] != (Token{Text: "abcd", Class: "k"}) {
		t.Fatalf("LineTokens(1) = %+v", got)
	}

	got = w.LineTokens(2)
	if len(got) != 1 || got[0] != (Token{Text: "efgh", Class: "s"}) {
		t.Fatalf("LineTokens(2) = %+v", got)
	}

	got = w.LineTokens(3)
	if len(got) != 1 || got[0] != (Token{Text: "ij", Class: "s"}) {
		t.Fatalf("LineTokens(3) = %+v", got)
	}
}

func TestWrapped_DecorationsInRange(t *testing.T) {
	w := New("abcdefghij\nbeta\ngamma", Config{WrapColumn: 4, Tokenizer: plainTokenizer()})

	spanning := &Decoration{
		Payload:   "spell",
		ClassName: "squiggle",
		ModelRange: Range{
			Start: Position{Line: 1, Column: 3},
			End:   Position{Line: 1, Column: 9},
		},
	}
	whole := &Decoration{
		Payload: "bookmark",
		ModelRange: Range{
			Start: Position{Line: 2, Column: 1},
			End:   Position{Line: 2, Column: 1},
		},
	}
	outside := &Decoration{
		Payload: "far",
		ModelRange: Range{
			Start: Position{Line: 3, Column: 1},
			End:   Position{Line: 3, Column: 3},
		},
	}
	w.AddDecoration(spanning)
	w.AddDecoration(whole)
	w.AddDecoration(outside)

	// View lines 1..4 cover model lines 1 and 2.
	got := w.DecorationsInRange(1, 4)

	if len(got.Decorations) != 2 {
		t.Fatalf("got %d decorations, want 2", len(got.Decorations))
	}
	if spanning.ViewRange.Start != (Position{Line: 1, Column: 3}) {
		t.Fatalf("spanning view start = %+v", spanning.ViewRange.Start)
	}
	if spanning.ViewRange.End != (Position{Line: 2, Column: 5}) {
		t.Fatalf("spanning view end = %+v", spanning.ViewRange.End)
	}

	if len(got.Inline) != 4 {
		t.Fatalf("got %d inline slots, want 4", len(got.Inline))
	}
	// The class-bearing decoration yields clipped per-line segments; the
	// payload-only decoration yields none.
	if len(got.Inline[0]) != 1 || got.Inline[0][0].Range.Start.Column != 3 {
		t.Fatalf("inline[0] = %+v", got.Inline[0])
	}
	if len(got.Inline[1]) != 1 {
		t.Fatalf("inline[1] = %+v", got.Inline[1])
	}
	if len(got.Inline[3]) != 0 {
		t.Fatalf("inline[3] = %+v, want none", got.Inline[3])
	}
}

func TestWrapped_DecorationsViewportClipping(t *testing.T) {
	w := New("one\ntwo\nthree\nfour", Config{Tokenizer: plainTokenizer()})

	d := &Decoration{
		Payload:   "sel",
		ClassName: "hl",
		ModelRange: Range{
			Start: Position{Line: 1, Column: 1},
			End:   Position{Line: 4, Column: 2},
		},
	}
	w.AddDecoration(d)

	got := w.DecorationsInRange(2, 3)
	if len(got.Decorations) != 1 {
		t.Fatalf("got %d decorations, want 1", len(got.Decorations))
	}
	if len(got.Inline) != 2 {
		t.Fatalf("got %d inline slots, want 2", len(got.Inline))
	}
	// Middle lines are covered end to end.
	if got.Inline[0][0].Range.End.Column != w.LineMaxColumn(2) {
		t.Fatalf("inline[0] end = %+v", got.Inline[0][0].Range.End)
	}
}

func TestChromaTokenizer_GoSource(t *testing.T) {
	tok := ChromaTokenizer{}
	lines := tok.TokenizeLines("package main\nvar x = 1\n", "go")

	if len(lines) != 3 {
		t.Fatalf("got %d token lines, want 3", len(lines))
	}
	var joined strings.Builder
	for _, tk := range lines[0] {
		joined.WriteString(tk.Text)
	}
	if joined.String() != "package main" {
		t.Fatalf("first line reassembles to %q", joined.String())
	}
	if lines[0][0].Class == "" {
		t.Fatal("expected a CSS class on the package keyword")
	}
}

func TestChromaTokenizer_UnknownLanguage(t *testing.T) {
	tok := ChromaTokenizer{}
	lines := tok.TokenizeLines("hello\nworld", "no-such-language")

	if len(lines) != 2 {
		t.Fatalf("got %d token lines, want 2", len(lines))
	}
	if lines[0][0].Text != "hello" || lines[0][0].Class != "" {
		t.Fatalf("unknown language should yield plain tokens, got %+v", lines[0][0])
	}
}
