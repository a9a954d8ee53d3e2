package viewmodel

import "fmt"

// Position is a 1-based line/column coordinate. Columns are measured in
// runes; column N sits before the N-th rune, so a line of length L has
// valid columns 1..L+1.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Before reports whether p comes before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Range is a half-open span between two positions, Start inclusive and End
// exclusive.
type Range struct {
	Start Position
	End   Position
}

// IsEmpty reports whether the range spans no content.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Selection is an oriented range: Anchor is the fixed end, Active the
// moving end (the cursor).
type Selection struct {
	Anchor Position
	Active Position
}

// Token is a syntax-highlighted segment of a view line.
type Token struct {
	Text  string
	Class string // short chroma class, empty for plain text
}

// Decoration associates an opaque payload with a model-space range. Its
// view-space range starts unset and is recomputed on every viewport query
// as the layout changes.
type Decoration struct {
	Payload    interface{}
	ModelRange Range
	ClassName  string

	// ViewRange is set by the view model during DecorationsInRange.
	ViewRange Range
}

// InlineDecoration is an immutable per-line fragment of a decoration,
// created for one render pass and discarded after use.
type InlineDecoration struct {
	Range     Range // view space, clipped to a single line
	ClassName string
}

// ViewportDecorations is the result of a decoration query over a view-line
// range: the intersecting decorations, plus their per-line inline fragments
// indexed by line offset from the start of the queried range.
type ViewportDecorations struct {
	Decorations []*Decoration
	Inline      [][]InlineDecoration
}
