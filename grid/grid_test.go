package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/grid"
)

//----------------------------------------------------------------------------//
// New, Get, Set
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows, tc.cols)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrEmptyGrid)
		})
	}
}

// TestNew_Corners checks the fixed Start/Goal placement.
func TestNew_Corners(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, grid.Position{Row: 2, Col: 3}, g.Goal())

	c, err := g.Get(g.Start())
	require.NoError(t, err)
	assert.Equal(t, grid.Start, c)
	c, err = g.Get(g.Goal())
	require.NoError(t, err)
	assert.Equal(t, grid.Goal, c)
	assert.Equal(t, 10, g.Count(grid.Open))
}

// TestNew_SingleCell: on a 1×1 grid the only cell is the Goal.
func TestNew_SingleCell(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	assert.Equal(t, g.Start(), g.Goal())

	c, err := g.Get(grid.Position{})
	require.NoError(t, err)
	assert.Equal(t, grid.Goal, c)
}

// TestGetSet_OutOfBounds verifies the bounds contract of Get and Set.
func TestGetSet_OutOfBounds(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	invalid := []grid.Position{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 2, Col: 0}, {Row: 0, Col: 3}}
	for _, p := range invalid {
		_, err = g.Get(p)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "Get%s", p)
		assert.ErrorIs(t, g.Set(p, grid.Wall), grid.ErrOutOfBounds, "Set%s", p)
		assert.False(t, g.InBounds(p))
	}

	p := grid.Position{Row: 1, Col: 1}
	require.NoError(t, g.Set(p, grid.Wall))
	c, err := g.Get(p)
	require.NoError(t, err)
	assert.Equal(t, grid.Wall, c)
}

// TestCells_IsCopy ensures snapshots do not alias the grid.
func TestCells_IsCopy(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	snap := g.Cells()
	snap[0][1] = grid.Wall
	c, _ := g.Get(grid.Position{Row: 0, Col: 1})
	assert.Equal(t, grid.Open, c)

	clone := g.Clone()
	require.NoError(t, clone.Set(grid.Position{Row: 1, Col: 0}, grid.Wall))
	c, _ = g.Get(grid.Position{Row: 1, Col: 0})
	assert.Equal(t, grid.Open, c)
}

//----------------------------------------------------------------------------//
// Reset
//----------------------------------------------------------------------------//

// TestReset clears search marks only, and is idempotent.
func TestReset(t *testing.T) {
	g, err := grid.Parse(`
		S.#*
		@*#.
		..*G`)
	require.NoError(t, err)

	cleared := g.Reset()
	assert.Equal(t, 4, cleared)
	assert.Zero(t, g.Count(grid.Visited))
	assert.Zero(t, g.Count(grid.Frontier))

	want := []string{
		"S.#.",
		"..#.",
		"...G",
	}
	if diff := cmp.Diff(want, g.Lines()); diff != "" {
		t.Errorf("layout after Reset mismatch (-want +got):\n%s", diff)
	}

	once := g.Cells()
	assert.Zero(t, g.Reset(), "second Reset must change nothing")
	if diff := cmp.Diff(once, g.Cells()); diff != "" {
		t.Errorf("Reset not idempotent (-once +twice):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Layout
//----------------------------------------------------------------------------//

// TestParse_Errors covers malformed layouts.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		err    error
	}{
		{"Empty", "  \n\n", grid.ErrEmptyGrid},
		{"Ragged", "S..\n.G", grid.ErrNonRectangular},
		{"BadRune", "S.x\n..G", grid.ErrInvalidLayout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.layout)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_ForcesCorners: corners follow the generation rule, whatever the text says.
func TestParse_ForcesCorners(t *testing.T) {
	g, err := grid.Parse("#S.\n.G#")
	require.NoError(t, err)
	assert.Equal(t, []string{"S..", "..G"}, g.Lines())
}

// TestString_RoundTrip checks Parse(String()) reproduces the grid.
func TestString_RoundTrip(t *testing.T) {
	g, err := grid.Generate(7, 9, 0.4, 99)
	require.NoError(t, err)

	back, err := grid.Parse(g.String())
	require.NoError(t, err)
	if diff := cmp.Diff(g.Cells(), back.Cells()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestCell_Names covers String and Rune for every state.
func TestCell_Names(t *testing.T) {
	cases := []struct {
		c    grid.Cell
		name string
		r    rune
	}{
		{grid.Wall, "wall", '#'},
		{grid.Open, "open", '.'},
		{grid.Start, "start", 'S'},
		{grid.Goal, "goal", 'G'},
		{grid.Visited, "visited", '*'},
		{grid.Frontier, "frontier", '@'},
		{grid.Cell(42), "cell(42)", '?'},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, tc.c.String())
		assert.Equal(t, tc.r, tc.c.Rune())
	}
}
