// Package document loads a file into viewport lines, tokenizing JSON
// documents and splitting everything else into plain ASCII lines.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jv/internal/ascii"
	"jv/internal/jsondoc"
	"jv/internal/view"
)

// Kind says how a file's contents are interpreted.
type Kind int

const (
	KindText Kind = iota
	KindJSON
)

// Document is a loaded file, ready to hand to a viewport. The path index is
// empty for plain-text documents.
type Document struct {
	Path  string
	Kind  Kind
	Lines []view.Line
	Index jsondoc.Index
}

// Detect decides how to interpret a file. JSON is recognized by extension;
// content sniffing is deliberately not done so that a .txt file that happens
// to hold JSON is still shown verbatim.
func Detect(path string) Kind {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return KindJSON
	}
	return KindText
}

// Load reads path and builds a Document. forceJSON overrides detection. Any
// non-ASCII content or JSON syntax error fails the whole load; no partial
// document is ever returned.
func Load(path string, forceJSON bool, pal *jsondoc.Palette) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	kind := Detect(path)
	if forceJSON {
		kind = KindJSON
	}

	doc := &Document{Path: path, Kind: kind}

	switch kind {
	case KindJSON:
		lines, err := jsondoc.Parse(bytes.NewReader(data), pal)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		doc.Lines = make([]view.Line, len(lines))
		for i, l := range lines {
			doc.Lines[i] = l
		}
		doc.Index = jsondoc.BuildIndex(lines)

	case KindText:
		if len(data) > 0 {
			text := strings.TrimSuffix(string(data), "\n")
			for _, raw := range strings.Split(text, "\n") {
				l, err := ascii.New(strings.TrimSuffix(raw, "\r"))
				if err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
				doc.Lines = append(doc.Lines, l)
			}
		}
		doc.Index = make(jsondoc.Index)
	}

	return doc, nil
}
