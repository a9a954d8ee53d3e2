// Package viewmodel maps a text buffer ("model" space) onto its rendered,
// possibly soft-wrapped layout ("view" space): per-line metrics, syntax
// tokens, decorations, and bidirectional coordinate translation. Scroll-sync
// clients use it to align buffer positions with what is on screen.
package viewmodel

// ViewModel exposes line metrics of a rendered view and coordinate
// translation between view space and model space.
//
// Mapping invariant: translating a valid coordinate across and back is the
// identity; invalid or out-of-range input is clamped to the nearest valid
// coordinate, never rejected.
type ViewModel interface {
	// LineCount returns the total number of view lines.
	LineCount() int
	// LineContent returns the text of a view line.
	LineContent(line int) string
	// LineMinColumn returns the minimum valid column of a view line.
	LineMinColumn(line int) int
	// LineMaxColumn returns the maximum valid column of a view line.
	LineMaxColumn(line int) int
	// LineFirstNonWhitespaceColumn returns the column of the first
	// non-whitespace rune, or 0 when the line is blank.
	LineFirstNonWhitespaceColumn(line int) int
	// LineLastNonWhitespaceColumn returns the column just past the last
	// non-whitespace rune, or 0 when the line is blank.
	LineLastNonWhitespaceColumn(line int) int
	// LineIndentLevel returns the indent-guide level of a view line.
	LineIndentLevel(line int) int
	// LineNumber returns the display line-number string for a view line;
	// wrap continuation lines yield the empty string.
	LineNumber(line int) string
	// MaxLineNumberWidth returns a width hint (in characters) covering the
	// largest display line number.
	MaxLineNumberWidth() int
	// LineTokens returns the syntax tokens of a view line.
	LineTokens(line int) []Token

	// DecorationsInRange collects decorations for the view lines
	// [start, end], partitioned into whole decorations and per-line inline
	// fragments.
	DecorationsInRange(start, end int) ViewportDecorations

	ViewToModel(p Position) Position
	ModelToView(p Position) Position
	ViewRangeToModel(r Range) Range
	ModelRangeToView(r Range) Range
	ViewSelectionToModel(s Selection) Selection
	ModelSelectionToView(s Selection) Selection

	// IsModelPositionVisible reports whether a model position maps to a
	// rendered view position without clamping.
	IsModelPositionVisible(p Position) bool
	// ValidateModelPosition clamps an arbitrary model position to the
	// nearest valid coordinate.
	ValidateModelPosition(p Position) Position
}
