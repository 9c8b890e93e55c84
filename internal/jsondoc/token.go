// Package jsondoc turns a parsed JSON value into pretty-printed lines of
// typed tokens and builds an index from canonical JSON paths ("#/a/0/b") to
// the screen coordinates of the values they name.
package jsondoc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jv/internal/ascii"
)

// RefPrefix marks a string value as a path reference to another value in
// the same document.
const RefPrefix = "#/"

// Tag identifies the kind of a token.
type Tag int

const (
	TagObjectStart Tag = iota
	TagObjectEnd
	TagArrayStart
	TagArrayEnd
	TagColon
	TagComma
	TagNull
	TagBool
	TagNumber
	TagString
	TagRef
	TagObjectKey
	TagWhitespace
)

// Token is a single typed fragment of a pretty-printed JSON line. Text holds
// the literal token text, including surrounding quotes for strings and keys.
type Token struct {
	Tag  Tag
	Text *ascii.Line
}

// Palette maps token kinds to lipgloss styles. A nil palette renders plain
// text, which is what tests use.
type Palette struct {
	Punctuation lipgloss.Style
	Key         lipgloss.Style
	String      lipgloss.Style
	Ref         lipgloss.Style
	Number      lipgloss.Style
	Boolean     lipgloss.Style
	Null        lipgloss.Style
}

// Line is an ordered sequence of tokens produced by Tokenize. Lines are
// immutable once built and implement the viewport's Line capability.
type Line struct {
	Tokens []Token

	pal *Palette
}

// CharsCount returns the number of logical characters across all tokens.
func (l *Line) CharsCount() int {
	n := 0
	for _, t := range l.Tokens {
		n += t.Text.CharsCount()
	}
	return n
}

// CharWidth returns the screen width of the line's i-th character.
func (l *Line) CharWidth(i int) int {
	for _, t := range l.Tokens {
		n := t.Text.CharsCount()
		if i < n {
			return t.Text.CharWidth(i)
		}
		i -= n
	}
	return 1
}

// Indent recomputes token widths assuming the line starts at absolute
// screen column firstCol. Each token starts where the previous one ends.
func (l *Line) Indent(firstCol int) {
	col := firstCol
	for _, t := range l.Tokens {
		t.Text.Indent(col)
		col += t.Text.ScreenWidth()
	}
}

// Render returns the styled text of the characters starting at char index
// start that fit in width screen columns.
func (l *Line) Render(start, width int) string {
	var b strings.Builder
	skip := start
	budget := width

	for _, t := range l.Tokens {
		n := t.Text.CharsCount()
		if skip >= n {
			skip -= n
			continue
		}

		chars, cols := t.Text.Fit(skip, budget)
		if chars > 0 {
			b.WriteString(l.styled(t, t.Text.Render(skip, budget)))
			budget -= cols
		}
		if skip+chars < n {
			// A character did not fit, typically a tab wider than the
			// remaining budget. Later tokens must not take its columns.
			break
		}

		skip = 0
		if budget <= 0 {
			break
		}
	}

	return b.String()
}

// RefAt returns the path a reference token covering char index i points to.
// The surrounding quotes are stripped. ok is false when i does not fall on
// a reference.
func (l *Line) RefAt(i int) (path string, ok bool) {
	for _, t := range l.Tokens {
		n := t.Text.CharsCount()
		if i < n {
			if t.Tag != TagRef {
				return "", false
			}
			s := t.Text.Text()
			return s[1 : len(s)-1], true
		}
		i -= n
	}
	return "", false
}

// Text returns the full unstyled line text.
func (l *Line) Text() string {
	var b strings.Builder
	for _, t := range l.Tokens {
		b.WriteString(t.Text.Text())
	}
	return b.String()
}

func (l *Line) styled(t Token, text string) string {
	if l.pal == nil {
		return text
	}
	switch t.Tag {
	case TagObjectKey:
		return l.pal.Key.Render(text)
	case TagString:
		return l.pal.String.Render(text)
	case TagRef:
		return l.pal.Ref.Render(text)
	case TagNumber:
		return l.pal.Number.Render(text)
	case TagBool:
		return l.pal.Boolean.Render(text)
	case TagNull:
		return l.pal.Null.Render(text)
	case TagWhitespace:
		return text
	default:
		return l.pal.Punctuation.Render(text)
	}
}

// mustToken builds a token from a literal known to be ASCII.
func mustToken(tag Tag, text string) Token {
	al, err := ascii.New(text)
	if err != nil {
		panic(fmt.Sprintf("jsondoc: non-ascii literal %q", text))
	}
	return Token{Tag: tag, Text: al}
}

func objectStart() Token { return mustToken(TagObjectStart, "{") }
func objectEnd() Token   { return mustToken(TagObjectEnd, "}") }
func arrayStart() Token  { return mustToken(TagArrayStart, "[") }
func arrayEnd() Token    { return mustToken(TagArrayEnd, "]") }
func colon() Token       { return mustToken(TagColon, ":") }
func comma() Token       { return mustToken(TagComma, ",") }
func null() Token        { return mustToken(TagNull, "null") }

func boolean(b bool) Token {
	if b {
		return mustToken(TagBool, "true")
	}
	return mustToken(TagBool, "false")
}

func number(n json.Number) (Token, error) {
	al, err := ascii.New(n.String())
	if err != nil {
		return Token{}, err
	}
	return Token{Tag: TagNumber, Text: al}, nil
}

func ws(n int) Token { return mustToken(TagWhitespace, strings.Repeat(" ", n)) }

// str builds a quoted string value token; strings that start with RefPrefix
// are tagged as path references instead.
func str(s string) (Token, error) {
	al, err := ascii.New(`"` + s + `"`)
	if err != nil {
		return Token{}, &ascii.NonASCIIError{Text: s}
	}
	tag := TagString
	if strings.HasPrefix(s, RefPrefix) {
		tag = TagRef
	}
	return Token{Tag: tag, Text: al}, nil
}

func objectKey(k string) (Token, error) {
	al, err := ascii.New(`"` + k + `"`)
	if err != nil {
		return Token{}, &ascii.NonASCIIError{Text: k}
	}
	return Token{Tag: TagObjectKey, Text: al}, nil
}
