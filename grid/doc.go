// Package grid models a rectangular maze of cells and the rules for moving
// between them.
//
// What:
//
//   - Grid is a fixed rows×cols array of Cell states stored row-major.
//   - Start is always (0,0); Goal is always (rows-1, cols-1).
//   - Generate/Fill randomize walls with a given probability and force the corners.
//   - Reset clears transient search marks (Visited, Frontier) without touching layout.
//   - Neighbors yields the traversable 4-connected neighbors of a cell in a fixed order.
//   - Parse/String convert between a Grid and its text layout.
//
// Why:
//
//   - Search algorithms mutate cell states in place so a renderer can observe
//     exploration one step at a time.
//   - A deterministic neighbor order makes BFS/DFS exploration reproducible.
//
// Cell lifecycle within one search run:
//
//	Open ──push──► Visited ──pop──► Frontier ──► Visited
//
// Wall, Start and Goal never change during a run. Nothing but Reset moves a
// cell back to Open.
//
// Complexity:
//
//   - Get, Set, InBounds, Neighbors: O(1).
//   - Fill, Reset, Cells, Clone, String: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols < 1.
//   - ErrOutOfBounds: position outside [0,rows)×[0,cols).
//   - ErrWallProbability: wall probability outside [0,1].
//   - ErrNonRectangular: layout rows of differing lengths.
//   - ErrInvalidLayout: unknown rune in a text layout.
package grid
