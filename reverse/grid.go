// Package reverse rebuilds a Mermaid flowchart description from
// rendered character art: grid reconstruction, three complementary
// box-detection strategies, arrow tracing with source disambiguation,
// and label extraction.
package reverse

import (
	"strings"

	"asciigraph/canvas"
)

// placeholder occupies the column immediately after a wide code
// point, so grid columns line up 1:1 with printed terminal columns.
const placeholder = '\x00'

// Grid is a reconstructed character grid, row-major for parsing
// convenience (the render package's canvas is column-major; the two
// need not agree on layout, only on coordinates).
type Grid struct {
	rows  [][]rune
	Width int
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// At returns the rune at (x, y), or a space out of bounds.
func (g *Grid) At(x, y int) rune {
	if y < 0 || y >= len(g.rows) {
		return ' '
	}
	row := g.rows[y]
	if x < 0 || x >= len(row) {
		return ' '
	}
	return row[x]
}

// BuildGrid splits the rendered string on newlines, widens every row
// to the maximum display width, and inserts a placeholder column
// after every wide code point.
func BuildGrid(s string) *Grid {
	lines := strings.Split(s, "\n")
	rows := make([][]rune, len(lines))
	maxW := 0
	for i, line := range lines {
		row := widenLine(line)
		rows[i] = row
		if len(row) > maxW {
			maxW = len(row)
		}
	}
	for i := range rows {
		for len(rows[i]) < maxW {
			rows[i] = append(rows[i], ' ')
		}
	}
	return &Grid{rows: rows, Width: maxW}
}

func widenLine(line string) []rune {
	var out []rune
	for _, r := range line {
		out = append(out, r)
		if canvas.UnicodeWidth(r) == 2 {
			out = append(out, placeholder)
		}
	}
	return out
}

func isPlaceholderOrSpace(r rune) bool {
	return r == placeholder || r == ' '
}
