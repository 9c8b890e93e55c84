package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jv/internal/ascii"
	"jv/internal/ui/theme"
)

// Mode says what kind of input the status line is collecting.
type Mode int

const (
	ModeNone    Mode = iota // passive: file name and cursor position
	ModeCommand             // ":" goto input
	ModeQuery               // "#" path query input
)

// StatusLine is the single-row bar under the viewport. Passive, it shows the
// file name and cursor position; active, it collects command or query input
// into an editable ASCII buffer with its own cursor and history.
type StatusLine struct {
	Theme theme.Theme
	Width int

	mode   Mode
	buf    *ascii.EditableLine
	cursor int

	history    []string
	histIx     int
	maxHistory int
	draft      string

	errText  string
	fileName string
	position string
}

// NewStatusLine creates a passive status line. maxHistory caps the in-memory
// input history; zero or negative disables recall.
func NewStatusLine(th theme.Theme, maxHistory int) *StatusLine {
	return &StatusLine{
		Theme:      th,
		buf:        ascii.NewEditable(),
		maxHistory: maxHistory,
	}
}

// SetWidth sets the bar width in screen columns.
func (s *StatusLine) SetWidth(w int) { s.Width = w }

// SetFile sets the file name shown in passive mode.
func (s *StatusLine) SetFile(name string) { s.fileName = name }

// SetPosition sets the cursor position shown in passive mode. row and col
// are zero-based document coordinates.
func (s *StatusLine) SetPosition(row, col int) {
	s.position = fmt.Sprintf("%d:%d", row+1, col+1)
}

// Mode returns the current input mode.
func (s *StatusLine) Mode() Mode { return s.mode }

// Activate switches to an input mode with an empty buffer. Any displayed
// error is dropped.
func (s *StatusLine) Activate(m Mode) {
	s.mode = m
	s.buf.Clear()
	s.cursor = 0
	s.histIx = len(s.history)
	s.draft = ""
	s.errText = ""
}

// Deactivate discards the buffer and returns to passive mode.
func (s *StatusLine) Deactivate() {
	s.mode = ModeNone
	s.buf.Clear()
	s.cursor = 0
}

// Insert inserts c at the buffer cursor. Non-ASCII runes are ignored.
func (s *StatusLine) Insert(c rune) {
	if s.buf.Insert(s.cursor, c) {
		s.cursor++
	}
}

// Backspace removes the character before the cursor. It reports true when
// the buffer was already empty, which dismisses the input.
func (s *StatusLine) Backspace() bool {
	if s.buf.IsEmpty() {
		return true
	}
	if s.cursor > 0 {
		s.cursor--
		s.buf.Remove(s.cursor)
	}
	return false
}

// Left moves the buffer cursor one character left.
func (s *StatusLine) Left() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Right moves the buffer cursor one character right. The cursor may sit one
// past the last character.
func (s *StatusLine) Right() {
	if s.cursor < s.buf.CharsCount() {
		s.cursor++
	}
}

// Text returns the buffer contents.
func (s *StatusLine) Text() string { return s.buf.Text() }

// Submit records the buffer in the history, deactivates the input and
// returns the entered text.
func (s *StatusLine) Submit() string {
	text := s.buf.Text()
	s.push(text)
	s.Deactivate()
	return text
}

// HistoryPrev replaces the buffer with the previous history entry. The
// in-progress input is stashed and restored by HistoryNext.
func (s *StatusLine) HistoryPrev() {
	if s.histIx == 0 || len(s.history) == 0 {
		return
	}
	if s.histIx == len(s.history) {
		s.draft = s.buf.Text()
	}
	s.histIx--
	s.setBuffer(s.history[s.histIx])
}

// HistoryNext replaces the buffer with the next history entry, or the
// stashed draft when past the newest one.
func (s *StatusLine) HistoryNext() {
	if s.histIx >= len(s.history) {
		return
	}
	s.histIx++
	if s.histIx == len(s.history) {
		s.setBuffer(s.draft)
		return
	}
	s.setBuffer(s.history[s.histIx])
}

// Error shows msg until the next Activate.
func (s *StatusLine) Error(msg string) {
	s.mode = ModeNone
	s.errText = msg
}

// ClearError drops a displayed error.
func (s *StatusLine) ClearError() { s.errText = "" }

// HasError reports whether an error is being shown.
func (s *StatusLine) HasError() bool { return s.errText != "" }

func (s *StatusLine) push(text string) {
	if s.maxHistory <= 0 || text == "" {
		return
	}
	if n := len(s.history); n > 0 && s.history[n-1] == text {
		return
	}
	s.history = append(s.history, text)
	if len(s.history) > s.maxHistory {
		s.history = s.history[len(s.history)-s.maxHistory:]
	}
}

func (s *StatusLine) setBuffer(text string) {
	if s.buf.SetText(text) {
		s.cursor = s.buf.CharsCount()
	}
}

// View renders the bar.
func (s *StatusLine) View() string {
	bar := lipgloss.NewStyle().Background(s.Theme.StatusBar).Width(s.Width)

	if s.errText != "" {
		err := lipgloss.NewStyle().Foreground(s.Theme.Error).Bold(true)
		return bar.Render(err.Render(s.errText))
	}

	if s.mode == ModeNone {
		fg := lipgloss.NewStyle().Foreground(s.Theme.Foreground)
		gap := s.Width - len(s.fileName) - len(s.position)
		if gap < 1 {
			gap = 1
		}
		return bar.Render(fg.Render(s.fileName + strings.Repeat(" ", gap) + s.position))
	}

	prompt := ":"
	if s.mode == ModeQuery {
		prompt = "#"
	}
	text := s.buf.Text()
	fg := lipgloss.NewStyle().Foreground(s.Theme.Prompt)
	cur := lipgloss.NewStyle().Reverse(true)

	cell := " "
	after := ""
	if s.cursor < len(text) {
		cell = string(text[s.cursor])
		after = text[s.cursor+1:]
	}
	return bar.Render(fg.Render(prompt+text[:s.cursor]) + cur.Render(cell) + fg.Render(after))
}
