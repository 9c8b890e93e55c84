package jsondoc

import (
	"strconv"
	"strings"
)

// Pos is a document-space coordinate: a line index and a character index
// within that line.
type Pos struct {
	Row int
	Col int
}

// Index maps canonical path strings ("#/a/0/b") to the coordinate of the
// value they name. It holds exactly one entry per container open and one per
// leaf value; the root entry "#/" is always present for non-empty documents.
type Index map[string]Pos

// Lookup resolves a query path. The bare root "#" is normalized to "#/".
func (ix Index) Lookup(query string) (Pos, bool) {
	if query == "#" {
		query = "#/"
	}
	p, ok := ix[query]
	return p, ok
}

type containerFrame struct {
	isArray  bool
	arrayIx  int
	hasEntry bool
}

// BuildIndex replays the token stream in row-major, left-to-right order and
// records the coordinate of every container start and leaf value under its
// canonical path.
//
// The path is a segment stack joined without a separator: "/" segments are
// pushed explicitly when a container opens, keys and array indices replace
// each other as siblings are separated by commas, and container ends pop the
// trailing segment left behind by their last child.
func BuildIndex(lines []*Line) Index {
	ix := make(Index)
	path := []string{"#"}
	var stack []containerFrame

	for r, line := range lines {
		c := 0

		for _, tok := range line.Tokens {
			switch tok.Tag {
			case TagObjectStart, TagArrayStart:
				if len(stack) > 0 && stack[len(stack)-1].isArray {
					path = append(path, strconv.Itoa(stack[len(stack)-1].arrayIx))
				}
				record(ix, path, r, c)
				path = append(path, "/")
				stack = append(stack, containerFrame{isArray: tok.Tag == TagArrayStart})

			case TagObjectEnd, TagArrayEnd:
				if len(stack) == 0 {
					break
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.hasEntry {
					path = path[:len(path)-1]
				}
				path = path[:len(path)-1]

			case TagComma:
				if len(stack) == 0 {
					break
				}
				top := &stack[len(stack)-1]
				top.hasEntry = true
				if top.isArray {
					top.arrayIx++
				}
				path = path[:len(path)-1]

			case TagObjectKey:
				k := tok.Text.Text()
				path = append(path, k[1:len(k)-1])

			case TagNull, TagBool, TagNumber, TagString, TagRef:
				if len(stack) > 0 {
					top := &stack[len(stack)-1]
					top.hasEntry = true
					if top.isArray {
						path = append(path, strconv.Itoa(top.arrayIx))
					}
				}
				record(ix, path, r, c)
			}

			c += tok.Text.CharsCount()
		}
	}

	return ix
}

func record(ix Index, path []string, r, c int) {
	key := strings.Join(path, "")
	if key == "#" {
		key = "#/"
	}
	ix[key] = Pos{Row: r, Col: c}
}
