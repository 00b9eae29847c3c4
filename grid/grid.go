package grid

import (
	"fmt"
)

// Grid is a rows×cols maze. The zero value is not usable; construct with
// New, Generate or Parse.
//
// Grid performs no locking. One owner mutates it at a time; renderers read it
// between search steps.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major: cells[row*cols+col]
}

// New returns a rows×cols grid with every cell Open except the Start and
// Goal corners. Returns ErrEmptyGrid if rows or cols < 1.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for i := range g.cells {
		g.cells[i] = Open
	}
	g.placeCorners()

	return g, nil
}

// placeCorners forces Start and Goal. On a 1×1 grid the Goal wins.
func (g *Grid) placeCorners() {
	g.cells[g.index(g.Start())] = Start
	g.cells[g.index(g.Goal())] = Goal
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the fixed start position (0,0).
func (g *Grid) Start() Position { return Position{} }

// Goal returns the fixed goal position (rows-1, cols-1).
func (g *Grid) Goal() Position { return Position{Row: g.rows - 1, Col: g.cols - 1} }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// index maps p to its row-major offset. p must be in bounds.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Get returns the cell at p, or ErrOutOfBounds.
func (g *Grid) Get(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return 0, g.outOfBounds(p)
	}
	return g.cells[g.index(p)], nil
}

// Set stores c at p, or returns ErrOutOfBounds. Set does not check that the
// transition is legal; callers keep the cell lifecycle documented on the package.
func (g *Grid) Set(p Position, c Cell) error {
	if !g.InBounds(p) {
		return g.outOfBounds(p)
	}
	g.cells[g.index(p)] = c
	return nil
}

func (g *Grid) outOfBounds(p Position) error {
	return fmt.Errorf("%w: %s outside %dx%d", ErrOutOfBounds, p, g.rows, g.cols)
}

// Reset turns every Visited or Frontier cell back into Open and returns how
// many cells changed. Wall, Start and Goal are untouched.
func (g *Grid) Reset() int {
	cleared := 0
	for i, c := range g.cells {
		if c.Transient() {
			g.cells[i] = Open
			cleared++
		}
	}
	return cleared
}

// Count returns how many cells are in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Cells returns a deep copy of the grid as [row][col].
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}
