// Package mapcodec converts tile grids to and from the C string-literal
// map format consumed by the game runtime.
//
// The encoded form is byte-exact:
//
//	"\
//	<cols characters>*\
//	<cols characters>*\
//	";
//
// Every row carries exactly cols editable characters followed by the '*'
// terminator and a line-continuation backslash. Decoding is lenient about
// row lengths and row counts (pads or truncates) but strict about the
// terminator; that asymmetry is part of the contract with the runtime.
package mapcodec

import (
	"fmt"
	"strings"
)

// Terminator is the fixed character every encoded row ends with, one
// position past the last editable column.
const Terminator = '*'

// FormatError reports a malformed map literal during Decode.
type FormatError struct {
	Row    int // 0-based index of the offending input row
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid map format at row %d: %s", e.Row, e.Reason)
}

// Encode converts a cell matrix into the map literal. It is total and
// deterministic for any rectangular matrix.
func Encode(cells [][]rune) string {
	var b strings.Builder
	b.WriteString("\"\\\n")
	for _, row := range cells {
		b.WriteString(string(row))
		b.WriteRune(Terminator)
		b.WriteString("\\\n")
	}
	b.WriteString("\";")
	return b.String()
}

// Decode parses a map literal into a rows×cols cell matrix.
//
// Short rows are right-padded with spaces, long rows truncated to cols+1
// characters; after adjustment the character at index cols must be the
// terminator or decoding fails. Missing trailing rows become blank rows,
// surplus rows are dropped. On error nothing useful is returned and the
// caller's state must be left untouched.
func Decode(text string, rows, cols int) ([][]rune, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	// Drop the `"\` header line and the `";` footer line if present.
	if len(lines) > 0 && strings.HasPrefix(lines[0], "\"\\") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.HasSuffix(lines[len(lines)-1], "\";") {
		lines = lines[:len(lines)-1]
	}

	cells := make([][]rune, 0, rows)
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\\")
		row := []rune(line)

		if len(row) < cols+1 {
			for len(row) < cols {
				row = append(row, ' ')
			}
			row = append(row, Terminator)
		} else {
			row = row[:cols+1]
		}

		// The terminator check applies to every supplied row, including
		// rows beyond the grid height.
		if row[cols] != Terminator {
			return nil, &FormatError{
				Row:    i,
				Reason: fmt.Sprintf("missing %q terminator at column %d", Terminator, cols),
			}
		}

		cells = append(cells, row[:cols])
	}

	// Adjust the row count: pad with blank rows or truncate.
	for len(cells) < rows {
		blank := make([]rune, cols)
		for j := range blank {
			blank[j] = ' '
		}
		cells = append(cells, blank)
	}
	if len(cells) > rows {
		cells = cells[:rows]
	}

	return cells, nil
}
