package jsondoc

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// indentStep is the indentation added per nesting level.
const indentStep = 4

// Parse decodes a single JSON document from r and tokenizes it. Numbers keep
// their literal source text.
func Parse(r io.Reader, pal *Palette) ([]*Line, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return Tokenize(v, pal)
}

// Tokenize flattens a parsed JSON value into pretty-printed token lines:
// 4-space indentation per level, one child per line, empty containers
// collapsed onto a single line, object members in lexicographic key order
// for deterministic output and stable path indices. Any non-ASCII string or
// key fails the whole operation.
func Tokenize(v any, pal *Palette) ([]*Line, error) {
	lines, err := tokenize(v, 0)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		l.pal = pal
	}
	return lines, nil
}

func tokenize(v any, indent int) ([]*Line, error) {
	switch val := v.(type) {
	case nil:
		return []*Line{{Tokens: []Token{null()}}}, nil

	case bool:
		return []*Line{{Tokens: []Token{boolean(val)}}}, nil

	case json.Number:
		tok, err := number(val)
		if err != nil {
			return nil, err
		}
		return []*Line{{Tokens: []Token{tok}}}, nil

	case float64:
		// Callers that decoded without UseNumber still work; the literal
		// text of the source is lost in that case.
		tok, err := number(json.Number(strconv.FormatFloat(val, 'g', -1, 64)))
		if err != nil {
			return nil, err
		}
		return []*Line{{Tokens: []Token{tok}}}, nil

	case string:
		tok, err := str(val)
		if err != nil {
			return nil, err
		}
		return []*Line{{Tokens: []Token{tok}}}, nil

	case []any:
		return tokenizeArray(val, indent)

	case map[string]any:
		return tokenizeObject(val, indent)

	default:
		return nil, fmt.Errorf("unsupported JSON value of type %T", v)
	}
}

func tokenizeArray(arr []any, indent int) ([]*Line, error) {
	if len(arr) == 0 {
		return []*Line{{Tokens: []Token{arrayStart(), arrayEnd()}}}, nil
	}

	lines := []*Line{{Tokens: []Token{arrayStart()}}}

	for i, child := range arr {
		cl, err := tokenize(child, indent+indentStep)
		if err != nil {
			return nil, err
		}

		cl[0].Tokens = append([]Token{ws(indent + indentStep)}, cl[0].Tokens...)
		if i < len(arr)-1 {
			last := cl[len(cl)-1]
			last.Tokens = append(last.Tokens, comma())
		}
		lines = append(lines, cl...)
	}

	return append(lines, &Line{Tokens: []Token{ws(indent), arrayEnd()}}), nil
}

func tokenizeObject(obj map[string]any, indent int) ([]*Line, error) {
	if len(obj) == 0 {
		return []*Line{{Tokens: []Token{objectStart(), objectEnd()}}}, nil
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := []*Line{{Tokens: []Token{objectStart()}}}

	for i, k := range keys {
		cl, err := tokenize(obj[k], indent+indentStep)
		if err != nil {
			return nil, err
		}

		keyTok, err := objectKey(k)
		if err != nil {
			return nil, err
		}

		cl[0].Tokens = append(
			[]Token{ws(indent + indentStep), keyTok, colon(), ws(1)},
			cl[0].Tokens...,
		)
		if i < len(keys)-1 {
			last := cl[len(cl)-1]
			last.Tokens = append(last.Tokens, comma())
		}
		lines = append(lines, cl...)
	}

	return append(lines, &Line{Tokens: []Token{ws(indent), objectEnd()}}), nil
}
