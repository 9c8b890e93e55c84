package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles the viewport renders with.
type Styles struct {
	LineNumber       lipgloss.Style
	ActiveLineNumber lipgloss.Style
	Cursor           lipgloss.Style
}

// DefaultStyles returns plain styles with a reverse-video cursor.
func DefaultStyles() Styles {
	return Styles{
		Cursor: lipgloss.NewStyle().Reverse(true),
	}
}

// Viewport is a read-only window over some lines. It owns the line sequence
// and tracks the visible frame and the cursor. All navigation saturates at
// the document bounds; on an empty document every operation is a no-op.
//
// The vertical cursor is a screen row plus a frame offset; the horizontal
// cursor is a character index into the active line. maxLineCharIx remembers
// the horizontal target across vertical moves, so the cursor snaps back out
// to its old column when a longer line is reached again (vim behavior).
type Viewport[L Line] struct {
	lines  []L
	width  int
	height int

	// gutter is the screen width of the line-number column, 0 when line
	// numbers are disabled. pad is the digit count of the widest number.
	gutter int
	pad    int

	frameStartRow    int
	frameStartCharIx int

	lineCharIx    int
	maxLineCharIx int

	// Screen-space cursor, 0-based, derived from the fields above.
	cursorRow int
	cursorCol int

	styles Styles
}

// New creates a Viewport of the given size. When numbers is true a line
// number gutter is reserved on the left; the lines are re-indented so tab
// stops account for it.
func New[L Line](width, height int, lines []L, numbers bool, styles Styles) *Viewport[L] {
	v := &Viewport[L]{
		lines:  lines,
		width:  width,
		height: height,
		styles: styles,
	}

	if numbers {
		v.pad = len(strconv.Itoa(len(lines)))
		v.gutter = v.pad + 3 // line number, space, │, space
	}
	for _, l := range lines {
		l.Indent(v.gutter)
	}

	return v
}

// LineCount returns the number of document lines.
func (v *Viewport[L]) LineCount() int { return len(v.lines) }

// Position returns the cursor position in document space: the line index
// and the character index within that line.
func (v *Viewport[L]) Position() (row, col int) {
	if v.empty() {
		return 0, 0
	}
	return v.docRow(), v.lineCharIx
}

// ScreenCursor returns the cursor cell in screen space, 0-based, including
// the gutter offset.
func (v *Viewport[L]) ScreenCursor() (row, col int) {
	return v.cursorRow, v.gutter + v.cursorCol
}

// Line returns the document line at index row.
func (v *Viewport[L]) Line(row int) (L, bool) {
	var zero L
	if row < 0 || row >= len(v.lines) {
		return zero, false
	}
	return v.lines[row], true
}

// MoveRight moves the cursor one character to the right, clamped at the end
// of the line, and abandons the sticky column.
func (v *Viewport[L]) MoveRight() {
	if v.empty() {
		return
	}
	if v.lineCharIx+1 < v.line().CharsCount() {
		v.lineCharIx++
	}
	v.maxLineCharIx = v.lineCharIx
	v.centerHorizontally()
}

// MoveLeft moves the cursor one character to the left, clamped at the start
// of the line, and abandons the sticky column.
func (v *Viewport[L]) MoveLeft() {
	if v.empty() {
		return
	}
	if v.lineCharIx > 0 {
		v.lineCharIx--
	}
	v.maxLineCharIx = v.lineCharIx
	v.centerHorizontally()
}

// MoveUp moves the active row up one line, scrolling when the cursor is at
// the top of the frame.
func (v *Viewport[L]) MoveUp() {
	if v.empty() {
		return
	}
	if v.cursorRow > 0 {
		v.cursorRow--
	} else if v.frameStartRow > 0 {
		v.frameStartRow--
	}
	v.snap()
}

// MoveDown moves the active row down one line, scrolling when the cursor is
// at the bottom of the frame.
func (v *Viewport[L]) MoveDown() {
	if v.empty() || v.docRow()+1 >= len(v.lines) {
		return
	}
	if v.cursorRow+1 < v.height {
		v.cursorRow++
	} else {
		v.frameStartRow++
	}
	v.snap()
}

// MoveToSOL moves the sticky column to the start of the current line.
func (v *Viewport[L]) MoveToSOL() {
	if v.empty() {
		return
	}
	v.maxLineCharIx = 0
	v.snap()
}

// MoveToEOL moves the sticky column to the end of the current line.
func (v *Viewport[L]) MoveToEOL() {
	if v.empty() {
		return
	}
	v.maxLineCharIx = v.line().CharsCount() - 1
	if v.maxLineCharIx < 0 {
		v.maxLineCharIx = 0
	}
	v.snap()
}

// PageUp scrolls the frame up by a full viewport height.
func (v *Viewport[L]) PageUp() {
	if v.empty() {
		return
	}
	if v.frameStartRow == 0 {
		v.cursorRow = 0
	} else {
		v.frameStartRow -= v.height
		if v.frameStartRow < 0 {
			v.frameStartRow = 0
		}
	}
	v.snap()
}

// PageDown scrolls the frame down by a full viewport height.
func (v *Viewport[L]) PageDown() {
	if v.empty() {
		return
	}
	v.frameStartRow += v.height
	if v.frameStartRow+v.cursorRow >= len(v.lines) {
		v.frameStartRow = len(v.lines) - 1
		v.cursorRow = 0
	}
	v.snap()
}

// Goto jumps to the given document row and character index, both clamped to
// valid positions. If the row is outside the current frame, the frame is
// recentered around it.
func (v *Viewport[L]) Goto(row, col int) {
	if v.empty() {
		return
	}

	if row >= len(v.lines) {
		row = len(v.lines) - 1
	}
	if row < 0 {
		row = 0
	}
	if row < v.frameStartRow || row >= v.frameStartRow+v.height {
		v.frameStartRow = row - v.height/2
		if v.frameStartRow < 0 {
			v.frameStartRow = 0
		}
	}
	v.cursorRow = row - v.frameStartRow

	if n := v.lines[row].CharsCount(); col >= n {
		col = n - 1
	}
	if col < 0 {
		col = 0
	}
	v.maxLineCharIx = col
	v.snap()
}

// View renders the full visible frame as styled text. The viewport performs
// no terminal I/O; the caller emits the result.
func (v *Viewport[L]) View() string {
	var b strings.Builder
	tw := v.textWidth()

	for i := 0; i < v.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}

		r := v.frameStartRow + i
		if r >= len(v.lines) {
			continue
		}

		if v.gutter > 0 {
			num := fmt.Sprintf("%*d │ ", v.pad, r+1)
			if i == v.cursorRow {
				b.WriteString(v.styles.ActiveLineNumber.Render(num))
			} else {
				b.WriteString(v.styles.LineNumber.Render(num))
			}
		}

		if i == v.cursorRow {
			b.WriteString(v.renderActiveRow(v.lines[r], tw))
		} else {
			b.WriteString(v.lines[r].Render(v.frameStartCharIx, tw))
		}
	}

	return b.String()
}

// renderActiveRow renders the cursor row in three parts so the cursor cell
// can be drawn reverse-video.
func (v *Viewport[L]) renderActiveRow(l L, tw int) string {
	left := l.Render(v.frameStartCharIx, v.cursorCol)

	cell := " "
	var right string
	if v.lineCharIx < l.CharsCount() {
		cw := l.CharWidth(v.lineCharIx)
		if c := l.Render(v.lineCharIx, cw); c != "" {
			cell = c
		}
		if rest := tw - v.cursorCol - cw; rest > 0 {
			right = l.Render(v.lineCharIx+1, rest)
		}
	}

	return left + v.styles.Cursor.Render(cell) + right
}

// snap recomputes the character index after a vertical move: the cursor
// lands on the sticky column, clamped to the new line's length. The sticky
// target itself is preserved.
func (v *Viewport[L]) snap() {
	n := v.line().CharsCount()
	ix := v.maxLineCharIx
	if ix > n-1 {
		ix = n - 1
	}
	if ix < 0 {
		ix = 0
	}
	v.lineCharIx = ix
	v.centerHorizontally()
}

// centerHorizontally recomputes the horizontal frame so the cursor character
// is visible, then derives the screen column.
func (v *Viewport[L]) centerHorizontally() {
	l := v.line()
	n := l.CharsCount()
	tw := v.textWidth()

	if n == 0 {
		v.frameStartCharIx = 0
		v.cursorCol = 0
		return
	}

	// Fast path: the target character is already inside the visible
	// window, so the frame stays put and only the screen column is
	// recomputed. The scan is bounded by the text width.
	if v.lineCharIx >= v.frameStartCharIx && v.frameStartCharIx < n {
		w := 0
		fits := true
		for i := v.frameStartCharIx; i < v.lineCharIx; i++ {
			w += l.CharWidth(i)
			if w >= tw {
				fits = false
				break
			}
		}
		if fits && w+l.CharWidth(v.lineCharIx) <= tw {
			v.cursorCol = w
			return
		}
	}

	// Scroll: scan backward from the target accumulating widths until the
	// next character would overflow the text width.
	w := 0
	start := v.lineCharIx + 1
	for i := v.lineCharIx; i >= 0; i-- {
		cw := l.CharWidth(i)
		if w+cw > tw {
			break
		}
		w += cw
		start = i
	}

	if start > v.lineCharIx {
		// The target character alone is wider than the window.
		v.frameStartCharIx = v.lineCharIx
		v.cursorCol = 0
		return
	}

	v.frameStartCharIx = start
	v.cursorCol = w - l.CharWidth(v.lineCharIx)
}

func (v *Viewport[L]) empty() bool { return len(v.lines) == 0 }

func (v *Viewport[L]) docRow() int { return v.frameStartRow + v.cursorRow }

func (v *Viewport[L]) line() L { return v.lines[v.docRow()] }

func (v *Viewport[L]) textWidth() int {
	tw := v.width - v.gutter
	if tw < 1 {
		return 1
	}
	return tw
}
