package ascii

import "unicode"

// EditableLine is a Line that supports single-character edits. It backs the
// status line's text entry; document lines stay immutable.
type EditableLine struct {
	Line
}

// NewEditable returns an empty editable line.
func NewEditable() *EditableLine {
	return &EditableLine{}
}

// Insert inserts c before char index ix. Non-ASCII runes are rejected and
// reported via the return value. The width table is recomputed only when a
// tab is inserted or the line already contains one, keeping the common
// no-tab case cheap.
func (e *EditableLine) Insert(ix int, c rune) bool {
	if c > unicode.MaxASCII {
		return false
	}
	if ix < 0 || ix > len(e.text) {
		return false
	}

	e.text = e.text[:ix] + string(c) + e.text[ix:]
	if c == '\t' || e.hasTabs {
		e.hasTabs = true
		e.recomputeWidths()
	}
	return true
}

// Remove deletes the character at char index ix.
func (e *EditableLine) Remove(ix int) {
	if ix < 0 || ix >= len(e.text) {
		return
	}

	tab := e.text[ix] == '\t'
	e.text = e.text[:ix] + e.text[ix+1:]
	if tab || e.hasTabs {
		e.hasTabs = false
		for i := 0; i < len(e.text); i++ {
			if e.text[i] == '\t' {
				e.hasTabs = true
				break
			}
		}
		e.recomputeWidths()
	}
}

// SetText replaces the whole line. Non-ASCII text is rejected and the line
// is left unchanged.
func (e *EditableLine) SetText(s string) bool {
	l, err := New(s)
	if err != nil {
		return false
	}
	e.Line = *l
	return true
}

// Clear empties the line.
func (e *EditableLine) Clear() {
	e.text = ""
	e.widths = nil
	e.hasTabs = false
}

// IsEmpty reports whether the line has no characters.
func (e *EditableLine) IsEmpty() bool { return len(e.text) == 0 }
