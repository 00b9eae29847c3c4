package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrWallProbability indicates a wall probability outside [0,1].
	ErrWallProbability = errors.New("grid: wall probability must be within [0,1]")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all layout rows must have the same length")
	// ErrInvalidLayout indicates an unknown rune in a text layout.
	ErrInvalidLayout = errors.New("grid: invalid layout rune")
)

// DefaultWallProbability is the chance that Fill turns a cell into a Wall.
const DefaultWallProbability = 1.0 / 3.0

// Cell is the state of one grid position.
type Cell uint8

const (
	// Wall blocks movement.
	Wall Cell = iota
	// Open is traversable and not yet reached by the current search.
	Open
	// Start is the fixed origin of every search.
	Start
	// Goal is the fixed target of every search.
	Goal
	// Visited marks a cell already reached or expanded.
	Visited
	// Frontier marks the cell currently being examined.
	Frontier
)

var cellNames = [...]string{
	Wall:     "wall",
	Open:     "open",
	Start:    "start",
	Goal:     "goal",
	Visited:  "visited",
	Frontier: "frontier",
}

var cellRunes = [...]rune{
	Wall:     '#',
	Open:     '.',
	Start:    'S',
	Goal:     'G',
	Visited:  '*',
	Frontier: '@',
}

// String returns the lower-case name of c.
func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Rune returns the layout rune of c, or '?' for unknown values.
func (c Cell) Rune() rune {
	if int(c) < len(cellRunes) {
		return cellRunes[c]
	}
	return '?'
}

// Transient reports whether c is a search mark cleared by Reset.
func (c Cell) Transient() bool {
	return c == Visited || c == Frontier
}

// cellFromRune is the inverse of Cell.Rune.
func cellFromRune(r rune) (Cell, bool) {
	for c, cr := range cellRunes {
		if cr == r {
			return Cell(c), true
		}
	}
	return 0, false
}

// Position addresses a cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}
