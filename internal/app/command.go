package app

import (
	"fmt"
	"strconv"
	"strings"
)

// parseGoto parses the body of a ":" command. The form is "row", "row:col"
// or ":col" with one-based values; an omitted side keeps the current
// zero-based value passed in. Anything else is a malformed command.
func parseGoto(text string, curRow, curCol int) (row, col int, err error) {
	rowPart, colPart, _ := strings.Cut(text, ":")
	if rowPart == "" && colPart == "" {
		return 0, 0, fmt.Errorf("malformed goto %q", text)
	}

	row, col = curRow, curCol
	if rowPart != "" {
		n, err := strconv.Atoi(rowPart)
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("malformed goto %q", text)
		}
		row = n - 1
	}
	if colPart != "" {
		n, err := strconv.Atoi(colPart)
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("malformed goto %q", text)
		}
		col = n - 1
	}
	return row, col, nil
}

// queryKey builds the index key for the body of a "#" query. One trailing
// slash is tolerated so "#/a/" and "#/a" name the same value.
func queryKey(text string) string {
	return "#" + strings.TrimSuffix(text, "/")
}
