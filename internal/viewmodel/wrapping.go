package viewmodel

import (
	"strconv"
	"strings"
)

// Config controls the wrapped layout.
type Config struct {
	// WrapColumn is the number of runes per view line; 0 disables wrapping.
	WrapColumn int
	// TabSize is the indent unit used for indent-guide levels. Defaults to 4.
	TabSize int
	// Language is the tokenizer hint for syntax coloring.
	Language string
	// Tokenizer overrides the default ChromaTokenizer.
	Tokenizer Tokenizer
}

// row is one rendered view line: a slice of a model line.
type row struct {
	modelLine int // 1-based
	startCol  int // 1-based rune column within the model line
	text      []rune
}

// Wrapped is a soft-wrapping ViewModel over a fixed text snapshot. It is
// rebuilt, not mutated, when the underlying text changes.
type Wrapped struct {
	cfg      Config
	lines    [][]rune // model lines
	rows     []row
	firstRow []int     // model line (0-based) → index of its first row
	tokens   [][]Token // per model line
	decos    []*Decoration
}

var _ ViewModel = (*Wrapped)(nil)

// New builds a wrapped layout for source.
func New(source string, cfg Config) *Wrapped {
	if cfg.TabSize <= 0 {
		cfg.TabSize = 4
	}
	if cfg.Tokenizer == nil {
		cfg.Tokenizer = ChromaTokenizer{}
	}

	rawLines := strings.Split(source, "\n")
	w := &Wrapped{
		cfg:      cfg,
		lines:    make([][]rune, len(rawLines)),
		firstRow: make([]int, len(rawLines)),
	}
	for i, l := range rawLines {
		w.lines[i] = []rune(strings.TrimSuffix(l, "\r"))
	}

	for i, line := range w.lines {
		w.firstRow[i] = len(w.rows)
		w.rows = append(w.rows, wrapLine(i+1, line, cfg.WrapColumn)...)
	}

	w.tokens = cfg.Tokenizer.TokenizeLines(source, cfg.Language)
	return w
}

// wrapLine splits one model line into rows of at most wrap runes.
func wrapLine(modelLine int, line []rune, wrap int) []row {
	if wrap <= 0 || len(line) <= wrap {
		return []row{{modelLine: modelLine, startCol: 1, text: line}}
	}
	var out []row
	for start := 0; start < len(line); start += wrap {
		end := start + wrap
		if end > len(line) {
			end = len(line)
		}
		out = append(out, row{modelLine: modelLine, startCol: start + 1, text: line[start:end]})
	}
	return out
}

// AddDecoration registers a decoration. Its view range stays unset until
// the next DecorationsInRange pass.
func (w *Wrapped) AddDecoration(d *Decoration) {
	w.decos = append(w.decos, d)
}

func (w *Wrapped) LineCount() int {
	return len(w.rows)
}

func (w *Wrapped) clampViewLine(line int) int {
	if line < 1 {
		return 1
	}
	if line > len(w.rows) {
		return len(w.rows)
	}
	return line
}

func (w *Wrapped) rowAt(line int) row {
	return w.rows[w.clampViewLine(line)-1]
}

func (w *Wrapped) LineContent(line int) string {
	return string(w.rowAt(line).text)
}

func (w *Wrapped) LineMinColumn(_ int) int {
	return 1
}

func (w *Wrapped) LineMaxColumn(line int) int {
	return len(w.rowAt(line).text) + 1
}

func (w *Wrapped) LineFirstNonWhitespaceColumn(line int) int {
	for i, r := range w.rowAt(line).text {
		if r != ' ' && r != '\t' {
			return i + 1
		}
	}
	return 0
}

func (w *Wrapped) LineLastNonWhitespaceColumn(line int) int {
	text := w.rowAt(line).text
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] != ' ' && text[i] != '\t' {
			return i + 2
		}
	}
	return 0
}

// LineIndentLevel reports the indent level of the underlying model line, so
// wrap continuations align with their origin.
func (w *Wrapped) LineIndentLevel(line int) int {
	model := w.lines[w.rowAt(line).modelLine-1]
	width := 0
	for _, r := range model {
		switch r {
		case ' ':
			width++
		case '\t':
			width += w.cfg.TabSize
		default:
			return width / w.cfg.TabSize
		}
	}
	return 0
}

func (w *Wrapped) LineNumber(line int) string {
	r := w.rowAt(line)
	if r.startCol != 1 {
		return ""
	}
	return strconv.Itoa(r.modelLine)
}

func (w *Wrapped) MaxLineNumberWidth() int {
	return len(strconv.Itoa(len(w.lines)))
}

// LineTokens clips the model line's tokens to the view row.
func (w *Wrapped) LineTokens(line int) []Token {
	r := w.rowAt(line)
	if r.modelLine-1 >= len(w.tokens) {
		return nil
	}
	return clipTokens(w.tokens[r.modelLine-1], r.startCol-1, len(r.text))
}

// clipTokens returns the tokens covering [start, start+length) rune offsets.
func clipTokens(tokens []Token, start, length int) []Token {
	var out []Token
	offset := 0
	end := start + length
	for _, tok := range tokens {
		runes := []rune(tok.Text)
		tokStart, tokEnd := offset, offset+len(runes)
		offset = tokEnd
		if tokEnd <= start {
			continue
		}
		if tokStart >= end {
			break
		}
		lo, hi := 0, len(runes)
		if tokStart < start {
			lo = start - tokStart
		}
		if tokEnd > end {
			hi = end - tokStart
		}
		if lo < hi {
			out = append(out, Token{Text: string(runes[lo:hi]), Class: tok.Class})
		}
	}
	return out
}

func (w *Wrapped) ViewToModel(p Position) Position {
	line := w.clampViewLine(p.Line)
	r := w.rows[line-1]
	col := p.Column
	if col < 1 {
		col = 1
	}
	if max := len(r.text) + 1; col > max {
		col = max
	}
	return Position{Line: r.modelLine, Column: r.startCol + col - 1}
}

func (w *Wrapped) ModelToView(p Position) Position {
	p = w.ValidateModelPosition(p)
	idx := w.firstRow[p.Line-1]
	for {
		r := w.rows[idx]
		last := idx+1 >= len(w.rows) || w.rows[idx+1].modelLine != p.Line
		if last || p.Column <= r.startCol+len(r.text) {
			return Position{Line: idx + 1, Column: p.Column - r.startCol + 1}
		}
		idx++
	}
}

func (w *Wrapped) ViewRangeToModel(r Range) Range {
	return Range{Start: w.ViewToModel(r.Start), End: w.ViewToModel(r.End)}
}

func (w *Wrapped) ModelRangeToView(r Range) Range {
	return Range{Start: w.ModelToView(r.Start), End: w.ModelToView(r.End)}
}

func (w *Wrapped) ViewSelectionToModel(s Selection) Selection {
	return Selection{Anchor: w.ViewToModel(s.Anchor), Active: w.ViewToModel(s.Active)}
}

func (w *Wrapped) ModelSelectionToView(s Selection) Selection {
	return Selection{Anchor: w.ModelToView(s.Anchor), Active: w.ModelToView(s.Active)}
}

func (w *Wrapped) IsModelPositionVisible(p Position) bool {
	return p == w.ValidateModelPosition(p)
}

func (w *Wrapped) ValidateModelPosition(p Position) Position {
	line := p.Line
	if line < 1 {
		line = 1
	}
	if line > len(w.lines) {
		line = len(w.lines)
	}
	col := p.Column
	if col < 1 {
		col = 1
	}
	if max := len(w.lines[line-1]) + 1; col > max {
		col = max
	}
	return Position{Line: line, Column: col}
}

func (w *Wrapped) DecorationsInRange(start, end int) ViewportDecorations {
	start = w.clampViewLine(start)
	end = w.clampViewLine(end)
	if end < start {
		start, end = end, start
	}

	out := ViewportDecorations{
		Inline: make([][]InlineDecoration, end-start+1),
	}

	for _, d := range w.decos {
		vr := w.ModelRangeToView(d.ModelRange)
		d.ViewRange = vr
		if vr.End.Line < start || vr.Start.Line > end {
			continue
		}
		out.Decorations = append(out.Decorations, d)

		if d.ClassName == "" {
			continue
		}
		first, last := vr.Start.Line, vr.End.Line
		if first < start {
			first = start
		}
		if last > end {
			last = end
		}
		for ln := first; ln <= last; ln++ {
			sc := w.LineMinColumn(ln)
			ec := w.LineMaxColumn(ln)
			if ln == vr.Start.Line {
				sc = vr.Start.Column
			}
			if ln == vr.End.Line {
				ec = vr.End.Column
			}
			if ec < sc {
				continue
			}
			out.Inline[ln-start] = append(out.Inline[ln-start], InlineDecoration{
				Range: Range{
					Start: Position{Line: ln, Column: sc},
					End:   Position{Line: ln, Column: ec},
				},
				ClassName: d.ClassName,
			})
		}
	}
	return out
}
