package document

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetect(t *testing.T) {
	if Detect("data.json") != KindJSON {
		t.Error("expected .json to be detected as JSON")
	}
	if Detect("data.JSON") != KindJSON {
		t.Error("expected extension match to be case-insensitive")
	}
	if Detect("notes.txt") != KindText {
		t.Error("expected .txt to be detected as text")
	}
}

func TestLoadJSON(t *testing.T) {
	path := write(t, "data.json", `{"b": 1, "a": [true]}`)

	doc, err := Load(path, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Kind != KindJSON {
		t.Error("expected JSON kind")
	}
	if len(doc.Lines) != 6 {
		t.Errorf("expected 6 lines, got %d", len(doc.Lines))
	}
	if _, ok := doc.Index.Lookup("#/a/0"); !ok {
		t.Error("expected index entry for #/a/0")
	}
}

func TestLoadText(t *testing.T) {
	path := write(t, "notes.txt", "first\nsecond\n")

	doc, err := Load(path, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Kind != KindText {
		t.Error("expected text kind")
	}
	if len(doc.Lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(doc.Lines))
	}
	if got := doc.Lines[1].Render(0, 80); got != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}
	if len(doc.Index) != 0 {
		t.Error("expected empty index for text documents")
	}
}

func TestLoadForceJSON(t *testing.T) {
	path := write(t, "data.txt", `[1, 2]`)

	doc, err := Load(path, true, nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Kind != KindJSON {
		t.Error("expected forced JSON kind")
	}
	if _, ok := doc.Index.Lookup("#/1"); !ok {
		t.Error("expected index entry for #/1")
	}
}

func TestLoadRejectsNonASCIIText(t *testing.T) {
	path := write(t, "notes.txt", "caffè\n")

	if _, err := Load(path, false, nil); err == nil {
		t.Fatal("expected error for non-ascii text")
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := write(t, "data.json", `{"a":`)

	if _, err := Load(path, false, nil); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := write(t, "empty.txt", "")

	doc, err := Load(path, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Lines) != 0 {
		t.Errorf("expected no lines for empty file, got %d", len(doc.Lines))
	}
}
