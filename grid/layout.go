package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse builds a grid from a text layout, one row per line, using the runes
// of Cell.Rune: '#' wall, '.' open, 'S' start, 'G' goal, '*' visited,
// '@' frontier. Blank lines and surrounding whitespace are ignored.
//
// The corners are forced to Start and Goal exactly as Fill does, so a layout
// cannot move them; 'S' or 'G' anywhere else is read as Open.
func Parse(layout string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := utf8.RuneCountInString(lines[0])
	for _, line := range lines {
		if utf8.RuneCountInString(line) != cols {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		c := 0
		for _, ch := range line {
			cell, ok := cellFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidLayout, ch, r, c)
			}
			if cell == Start || cell == Goal {
				cell = Open
			}
			g.cells[r*cols+c] = cell
			c++
		}
	}
	g.placeCorners()

	return g, nil
}

// String renders g as its text layout, one row per line, each line ending
// in '\n'. Parse(g.String()) reproduces g.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for _, c := range g.cells[r*g.cols : (r+1)*g.cols] {
			b.WriteRune(c.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Lines returns the text layout of g as one string per row.
func (g *Grid) Lines() []string {
	return strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
}
