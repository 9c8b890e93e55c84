// Package view implements a scrollable, cursor-tracking viewport over a
// sequence of renderable lines with variable per-character screen widths.
package view

// Line is a line that can be displayed by a Viewport. Implementations count
// logical characters, not screen columns; the two differ for tabs.
type Line interface {
	// CharsCount returns the number of logical characters in the line.
	CharsCount() int

	// CharWidth returns the screen columns occupied by character i (>= 1).
	CharWidth(i int) int

	// Render returns the text of the characters starting at char index
	// start whose cumulative screen width fits in width columns. A
	// character is never split: if it does not fit entirely it is
	// excluded. The result may carry terminal styling; styling never
	// counts toward widths.
	Render(start, width int) string

	// Indent recomputes character widths assuming the line begins at
	// absolute screen column firstCol. Tab stops depend on the absolute
	// column, so this must be called when the starting column changes.
	Indent(firstCol int)
}
