package grid

// neighborOffsets lists the 4-connected moves in exploration order:
// up, down, left, right. The order decides BFS/DFS tie-breaks.
var neighborOffsets = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Traversable reports whether a search may step onto p: p is in bounds and
// holds Open or Goal. Walls, Start and already reached cells are excluded.
func (g *Grid) Traversable(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	c := g.cells[g.index(p)]
	return c == Open || c == Goal
}

// Neighbors returns the traversable orthogonal neighbors of p in the order
// up, down, left, right. Every returned position is in bounds.
// The slice is freshly allocated and reflects the grid at call time.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := p.Add(d)
		if g.Traversable(n) {
			out = append(out, n)
		}
	}
	return out
}
