// Package ascii implements ASCII-only text lines that know how many screen
// columns each character occupies. Widths are 1 except for tabs, which expand
// to the next tab stop relative to the line's absolute starting column.
package ascii

import (
	"fmt"
	"strings"
	"unicode"
)

// TabStop is the fixed tab stop width in screen columns.
const TabStop = 8

// NonASCIIError reports that a line could not be built because the input
// contains non-ASCII bytes. It carries the offending text so callers can
// report it verbatim.
type NonASCIIError struct {
	Text string
}

func (e *NonASCIIError) Error() string {
	return fmt.Sprintf("%q is not ascii", e.Text)
}

// Line is an immutable ASCII text line. The zero value is an empty line.
type Line struct {
	text string

	// widths holds screen widths only for characters whose width is not 1,
	// i.e. tabs. firstCol is the absolute screen column the line starts at
	// (after a line-number gutter, for example); tab stops depend on it.
	widths   map[int]int
	firstCol int
	hasTabs  bool
}

// New builds a Line from text. It fails if any byte is non-ASCII; the
// returned error carries the original text unchanged.
func New(text string) (*Line, error) {
	for i := 0; i < len(text); i++ {
		if text[i] > unicode.MaxASCII {
			return nil, &NonASCIIError{Text: text}
		}
	}

	l := &Line{text: text, hasTabs: strings.IndexByte(text, '\t') >= 0}
	if l.hasTabs {
		l.recomputeWidths()
	}
	return l, nil
}

// Text returns the raw line text.
func (l *Line) Text() string { return l.text }

// CharsCount returns the number of logical characters, not screen columns.
func (l *Line) CharsCount() int { return len(l.text) }

// CharWidth returns the screen width of character i.
func (l *Line) CharWidth(i int) int {
	if w, ok := l.widths[i]; ok {
		return w
	}
	return 1
}

// ScreenWidth returns the total screen width of the line.
func (l *Line) ScreenWidth() int {
	w := len(l.text)
	for _, tw := range l.widths {
		w += tw - 1
	}
	return w
}

// Fit reports how many characters starting at char index start fit within
// width screen columns, and the columns they occupy. A character that would
// overflow the budget is excluded entirely, never split.
func (l *Line) Fit(start, width int) (chars, cols int) {
	if start < 0 || start >= len(l.text) {
		return 0, 0
	}
	for i := start; i < len(l.text); i++ {
		w := l.CharWidth(i)
		if cols+w > width {
			break
		}
		chars++
		cols += w
	}
	return chars, cols
}

// Render returns the text of the characters starting at char index start
// that fit in width screen columns. Tabs are expanded to spaces.
func (l *Line) Render(start, width int) string {
	chars, _ := l.Fit(start, width)
	if chars == 0 {
		return ""
	}
	if !l.hasTabs {
		return l.text[start : start+chars]
	}

	var b strings.Builder
	for i := start; i < start+chars; i++ {
		if l.text[i] == '\t' {
			for j := 0; j < l.CharWidth(i); j++ {
				b.WriteByte(' ')
			}
		} else {
			b.WriteByte(l.text[i])
		}
	}
	return b.String()
}

// Indent recomputes the width table assuming the line starts at absolute
// screen column firstCol. It must be called whenever the starting column
// changes, e.g. when the line-number gutter width changes.
func (l *Line) Indent(firstCol int) {
	l.firstCol = firstCol
	if l.hasTabs {
		l.recomputeWidths()
	}
}

func (l *Line) recomputeWidths() {
	l.widths = make(map[int]int)

	col := 0
	for i := 0; i < len(l.text); i++ {
		if l.text[i] == '\t' {
			w := TabStop - (col+l.firstCol)%TabStop
			if w != 1 {
				l.widths[i] = w
			}
			col += w
		} else {
			col++
		}
	}
}
