// Package traverse provides animated grid search: breadth-first (FIFO),
// depth-first (LIFO) and greedy best-first (min-heap on Manhattan distance),
// all driven by one loop skeleton that differs only in its frontier container.
//
// What
//
//   - Seed the frontier with the grid's Start cell.
//   - Pop; if the popped cell is the Goal, stop with Found.
//   - Otherwise run the step visitor on it (skipped for Start):
//     mark Frontier → OnVisit hook → optional delay → mark Visited.
//   - Push every traversable neighbor (grid.Neighbors order: up, down, left, right)
//     and mark it Visited immediately unless it is the Goal.
//   - Empty frontier: stop with NotFound.
//
// Every run returns a Result with an Outcome (Found, NotFound, Cancelled),
// the expansion order, and frontier counters. No route is reconstructed.
//
// Greedy best-first is not A*
//
//	Each entry's priority is the Manhattan distance from the cell to the goal,
//	computed once at insertion. No accumulated path cost is tracked, so the
//	search is greedy: fast toward the goal on open ground, never cost-optimal.
//	Equal priorities pop in insertion order.
//
// Push-time marking
//
//	Neighbors are marked Visited when pushed, not when expanded. That stops
//	duplicate pushes without a separate seen-set, and it means a cell shows as
//	Visited before its own Frontier tick. The Goal is never marked, so it can
//	sit in the frontier more than once; the first pop ends the search.
//
// Determinism
//
//	Neighbor order is fixed and the heap breaks ties by insertion order, so
//	the same grid always produces the same expansion sequence.
//
// Observation
//
//	The step visitor is the only place a cell becomes Frontier. A renderer
//	either subscribes via WithOnVisit, or polls the grid between steps when
//	a delay is set with WithDelay. Tests run with zero delay.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS: O(N) time, O(N) memory.
//   - GreedyBestFirst: O(N log N) time, O(N) memory.
//   - Plus Delay × expanded cells of wall-clock time.
//
// Options
//
//   - DefaultOptions():   background Context, no delay, no-op hooks.
//   - WithContext(ctx):   cancel between steps or during the delay → Cancelled.
//   - WithDelay(d):       per-step animation delay (d ≥ 0).
//   - WithOnVisit(fn):    animation hook; returning an error aborts the run.
//   - WithOnPush(fn):     every frontier insertion.
//   - WithOnPop(fn):      every frontier removal.
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrUnknownAlgorithm  for an Algorithm outside Algorithms.
//   - ErrOptionViolation   for a negative delay.
//   - Wrapped OnVisit errors.
//   - Wrapped grid.ErrOutOfBounds, which indicates a bug in the neighbor policy.
package traverse
