package view

import (
	"math/rand"
	"strings"
	"testing"

	"jv/internal/ascii"
)

func mkLines(t *testing.T, texts ...string) []*ascii.Line {
	t.Helper()
	lines := make([]*ascii.Line, 0, len(texts))
	for _, s := range texts {
		l, err := ascii.New(s)
		if err != nil {
			t.Fatal(err)
		}
		lines = append(lines, l)
	}
	return lines
}

func TestGotoClamps(t *testing.T) {
	lines := mkLines(t, "a very long line", "", "line 3")
	v := New(80, 24, lines, false, DefaultStyles())

	v.Goto(10, 100)
	row, col := v.Position()
	if row != 2 || col != 5 {
		t.Errorf("expected clamped position (2, 5), got (%d, %d)", row, col)
	}

	v.Goto(0, 0)
	row, col = v.Position()
	if row != 0 || col != 0 {
		t.Errorf("expected position (0, 0), got (%d, %d)", row, col)
	}
}

func TestStickyColumn(t *testing.T) {
	lines := mkLines(t, "a very long line", "", "line 3")
	v := New(80, 24, lines, false, DefaultStyles())

	v.Goto(0, 5)
	if _, col := v.Position(); col != 5 {
		t.Fatalf("expected col 5 after goto, got %d", col)
	}

	// The empty line clamps the cursor to 0 but keeps the sticky target.
	v.MoveDown()
	if row, col := v.Position(); row != 1 || col != 0 {
		t.Errorf("expected (1, 0) on empty line, got (%d, %d)", row, col)
	}

	// "line 3" has 6 characters, so index 5 is restored.
	v.MoveDown()
	if row, col := v.Position(); row != 2 || col != 5 {
		t.Errorf("expected (2, 5) after sticky restore, got (%d, %d)", row, col)
	}
}

func TestHorizontalMovesAbandonSticky(t *testing.T) {
	lines := mkLines(t, "abcdefgh", "ab", "abcdefgh")
	v := New(80, 24, lines, false, DefaultStyles())

	v.Goto(0, 7)
	v.MoveDown() // clamped to index 1 on "ab"
	v.MoveLeft() // sticky target becomes 0
	v.MoveDown()
	if _, col := v.Position(); col != 0 {
		t.Errorf("expected col 0 after explicit horizontal move, got %d", col)
	}
}

func TestMoveRightLeftClamps(t *testing.T) {
	lines := mkLines(t, "ab")
	v := New(80, 24, lines, false, DefaultStyles())

	v.MoveLeft()
	if _, col := v.Position(); col != 0 {
		t.Errorf("expected col 0 at line start, got %d", col)
	}

	v.MoveRight()
	v.MoveRight()
	v.MoveRight()
	if _, col := v.Position(); col != 1 {
		t.Errorf("expected col clamped at 1, got %d", col)
	}
}

func TestSOLAndEOL(t *testing.T) {
	lines := mkLines(t, "hello world")
	v := New(80, 24, lines, false, DefaultStyles())

	v.MoveToEOL()
	if _, col := v.Position(); col != 10 {
		t.Errorf("expected col 10 at eol, got %d", col)
	}

	v.MoveToSOL()
	if _, col := v.Position(); col != 0 {
		t.Errorf("expected col 0 at sol, got %d", col)
	}
}

func TestVerticalScrolling(t *testing.T) {
	texts := make([]string, 30)
	for i := range texts {
		texts[i] = "line"
	}
	v := New(80, 10, mkLines(t, texts...), false, DefaultStyles())

	for i := 0; i < 15; i++ {
		v.MoveDown()
	}
	if row, _ := v.Position(); row != 15 {
		t.Errorf("expected row 15, got %d", row)
	}
	if v.frameStartRow != 6 {
		t.Errorf("expected frame start 6, got %d", v.frameStartRow)
	}
	if v.cursorRow != 9 {
		t.Errorf("expected cursor on last screen row, got %d", v.cursorRow)
	}

	for i := 0; i < 100; i++ {
		v.MoveDown()
	}
	if row, _ := v.Position(); row != 29 {
		t.Errorf("expected row clamped at 29, got %d", row)
	}

	for i := 0; i < 100; i++ {
		v.MoveUp()
	}
	if row, _ := v.Position(); row != 0 {
		t.Errorf("expected row 0, got %d", row)
	}
	if v.frameStartRow != 0 {
		t.Errorf("expected frame start 0, got %d", v.frameStartRow)
	}
}

func TestPaging(t *testing.T) {
	texts := make([]string, 45)
	for i := range texts {
		texts[i] = "line"
	}
	v := New(80, 10, mkLines(t, texts...), false, DefaultStyles())

	v.PageDown()
	if v.frameStartRow != 10 {
		t.Errorf("expected frame start 10 after page down, got %d", v.frameStartRow)
	}

	v.PageDown()
	v.PageDown()
	v.PageDown()
	v.PageDown()
	if v.frameStartRow != 44 || v.cursorRow != 0 {
		t.Errorf("expected clamped page down (44, 0), got (%d, %d)", v.frameStartRow, v.cursorRow)
	}

	v.PageUp()
	if v.frameStartRow != 34 {
		t.Errorf("expected frame start 34 after page up, got %d", v.frameStartRow)
	}

	v.PageUp()
	v.PageUp()
	v.PageUp()
	v.PageUp()
	if v.frameStartRow != 0 || v.cursorRow != 0 {
		t.Errorf("expected page up clamped to top, got (%d, %d)", v.frameStartRow, v.cursorRow)
	}
}

func TestGotoRecenters(t *testing.T) {
	texts := make([]string, 100)
	for i := range texts {
		texts[i] = "line"
	}
	v := New(80, 10, mkLines(t, texts...), false, DefaultStyles())

	v.Goto(50, 0)
	if v.frameStartRow != 45 {
		t.Errorf("expected frame recentered at 45, got %d", v.frameStartRow)
	}
	if v.cursorRow != 5 {
		t.Errorf("expected cursor row 5, got %d", v.cursorRow)
	}

	// A target inside the current frame must not scroll.
	v.Goto(47, 0)
	if v.frameStartRow != 45 {
		t.Errorf("expected frame unchanged at 45, got %d", v.frameStartRow)
	}
}

func TestHorizontalScrollAndIdempotence(t *testing.T) {
	long := strings.Repeat("abcdefghij", 20)
	v := New(20, 5, mkLines(t, long), false, DefaultStyles())

	v.Goto(0, 150)
	start := v.frameStartCharIx
	if start == 0 {
		t.Fatal("expected horizontal scroll for far column")
	}
	if _, col := v.Position(); col != 150 {
		t.Errorf("expected char index 150, got %d", col)
	}

	v.centerHorizontally()
	if v.frameStartCharIx != start {
		t.Errorf("center_horizontally is not idempotent: %d != %d", v.frameStartCharIx, start)
	}

	// Moving within the visible window must not move the frame.
	v.MoveLeft()
	if v.frameStartCharIx != start {
		t.Errorf("expected frame unchanged on in-window move, got %d", v.frameStartCharIx)
	}
}

func TestCursorColTracksTabWidths(t *testing.T) {
	v := New(40, 5, mkLines(t, "\tA\tBB"), false, DefaultStyles())

	v.MoveRight() // onto "A", after an 8-wide tab
	if v.cursorCol != 8 {
		t.Errorf("expected cursor col 8 after tab, got %d", v.cursorCol)
	}

	v.MoveRight() // onto the second tab
	if v.cursorCol != 9 {
		t.Errorf("expected cursor col 9, got %d", v.cursorCol)
	}

	v.MoveRight() // onto "B" at column 16
	if v.cursorCol != 16 {
		t.Errorf("expected cursor col 16, got %d", v.cursorCol)
	}
}

func TestEmptyDocumentIsInert(t *testing.T) {
	v := New(80, 24, []*ascii.Line{}, true, DefaultStyles())

	v.MoveDown()
	v.MoveUp()
	v.MoveLeft()
	v.MoveRight()
	v.MoveToSOL()
	v.MoveToEOL()
	v.PageUp()
	v.PageDown()
	v.Goto(10, 10)

	if row, col := v.Position(); row != 0 || col != 0 {
		t.Errorf("expected position (0, 0), got (%d, %d)", row, col)
	}
	if got := strings.Count(v.View(), "\n"); got != 23 {
		t.Errorf("expected 23 newlines in empty frame, got %d", got)
	}
}

func TestViewShowsGutterAndText(t *testing.T) {
	v := New(40, 5, mkLines(t, "first", "second"), true, DefaultStyles())

	out := v.View()
	if !strings.Contains(out, "1 │ first") {
		t.Errorf("expected numbered first line, got %q", out)
	}
	if !strings.Contains(out, "2 │ second") {
		t.Errorf("expected numbered second line, got %q", out)
	}
}

// Random navigation over random lines: the cursor must stay inside the
// frame, the char index inside the line, and the screen column must equal
// the width of the characters between the frame start and the cursor.
func TestNavigationInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	alphabet := "abcdefghijklmnopqrstuvwxyz \t"
	for doc := 0; doc < 20; doc++ {
		n := 1 + rng.Intn(40)
		texts := make([]string, n)
		for i := range texts {
			var b strings.Builder
			for j := rng.Intn(120); j > 0; j-- {
				b.WriteByte(alphabet[rng.Intn(len(alphabet))])
			}
			texts[i] = b.String()
		}

		width := 10 + rng.Intn(100)
		height := 1 + rng.Intn(40)
		v := New(width, height, mkLines(t, texts...), rng.Intn(2) == 0, DefaultStyles())

		for step := 0; step < 500; step++ {
			switch rng.Intn(10) {
			case 0:
				v.MoveUp()
			case 1:
				v.MoveDown()
			case 2:
				v.MoveLeft()
			case 3:
				v.MoveRight()
			case 4:
				v.MoveToSOL()
			case 5:
				v.MoveToEOL()
			case 6:
				v.PageUp()
			case 7:
				v.PageDown()
			default:
				v.Goto(rng.Intn(n+10), rng.Intn(150))
			}

			checkInvariants(t, v, doc, step)
			if t.Failed() {
				return
			}
		}
	}
}

func checkInvariants(t *testing.T, v *Viewport[*ascii.Line], doc, step int) {
	t.Helper()

	if v.cursorRow < 0 || v.cursorRow >= v.height {
		t.Errorf("doc %d step %d: cursor row %d out of [0, %d)", doc, step, v.cursorRow, v.height)
	}
	row := v.docRow()
	if row < 0 || row >= len(v.lines) {
		t.Fatalf("doc %d step %d: document row %d out of range", doc, step, row)
	}

	line := v.lines[row]
	if n := line.CharsCount(); n == 0 {
		if v.lineCharIx != 0 {
			t.Errorf("doc %d step %d: char index %d on empty line", doc, step, v.lineCharIx)
		}
	} else if v.lineCharIx < 0 || v.lineCharIx >= n {
		t.Errorf("doc %d step %d: char index %d out of [0, %d)", doc, step, v.lineCharIx, n)
	}

	want := 0
	for i := v.frameStartCharIx; i < v.lineCharIx; i++ {
		want += line.CharWidth(i)
	}
	if v.cursorCol != want {
		t.Errorf("doc %d step %d: cursor col %d, want width sum %d", doc, step, v.cursorCol, want)
	}
	if v.cursorCol < 0 || v.cursorCol >= v.textWidth()+1 {
		t.Errorf("doc %d step %d: cursor col %d outside text width %d", doc, step, v.cursorCol, v.textWidth())
	}
}
