// Package traverse animates breadth-first, depth-first and greedy
// best-first search over a grid.Grid, mutating cell states step by step so an
// observer can watch the frontier expand.
package traverse

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/mazewalk/grid"
)

// walker encapsulates mutable search state.
type walker struct {
	grid     *grid.Grid
	alg      Algorithm
	opts     Options
	ctx      context.Context
	frontier frontier
	goal     grid.Position
	res      *Result
}

// BFS runs breadth-first search from g.Start() to g.Goal().
func BFS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Run(g, AlgBFS, opts...)
}

// DFS runs depth-first search from g.Start() to g.Goal().
func DFS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Run(g, AlgDFS, opts...)
}

// GreedyBestFirst runs best-first search keyed on Manhattan distance to the
// goal. Entries carry no path cost, so this is not A* and the route it
// stumbles on is not necessarily shortest.
func GreedyBestFirst(g *grid.Grid, opts ...Option) (*Result, error) {
	return Run(g, AlgGreedyBestFirst, opts...)
}

// Run searches g with the frontier discipline of alg, mutating g in place.
// The caller resets g beforehand if it holds marks from an earlier run.
//
// Returns ErrGridNil, ErrUnknownAlgorithm or ErrOptionViolation for invalid
// input, a wrapped OnVisit error, or a wrapped grid.ErrOutOfBounds (a bug).
// Found, NotFound and Cancelled are outcomes, not errors.
func Run(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	f, err := newFrontier(alg, g.Rows()+g.Cols())
	if err != nil {
		return nil, fmt.Errorf("%w: %d", err, int(alg))
	}

	w := &walker{
		grid:     g,
		alg:      alg,
		opts:     o,
		ctx:      o.Ctx,
		frontier: f,
		goal:     g.Goal(),
		res: &Result{
			Algorithm: alg,
			Outcome:   NotFound,
			Expanded:  make([]grid.Position, 0, g.Rows()*g.Cols()/2),
		},
	}

	return w.res, w.loop()
}

// loop is the skeleton shared by every algorithm: pop, goal check, visit,
// expand, until the goal is popped or the frontier runs dry.
func (w *walker) loop() error {
	w.push(w.grid.Start())

	for w.frontier.len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			w.res.Outcome = Cancelled
			return nil
		default:
		}

		e := w.frontier.pop()
		w.res.Popped++
		w.opts.OnPop(e)

		cell, err := w.grid.Get(e.Pos)
		if err != nil {
			return fmt.Errorf("traverse: pop: %w", err)
		}
		if cell == grid.Goal {
			w.res.Outcome = Found
			return nil
		}
		if cell != grid.Start {
			if err = w.visit(e.Pos); err != nil {
				return err
			}
			if w.res.Outcome == Cancelled {
				return nil
			}
		}
		if err = w.expand(e.Pos); err != nil {
			return err
		}
	}

	w.res.Outcome = NotFound
	return nil
}

// push adds p to the frontier, keyed by its distance to the goal.
func (w *walker) push(p grid.Position) {
	e := Entry{Pos: p}
	if w.alg == AlgGreedyBestFirst {
		e.Priority = Manhattan(p, w.goal)
	}
	w.frontier.push(e)
	w.res.Pushed++
	w.opts.OnPush(e)
}

// visit is the animation tick: mark p Frontier, let the observer see it,
// wait, then mark it Visited. A cancelled wait still leaves p Visited.
func (w *walker) visit(p grid.Position) error {
	if err := w.grid.Set(p, grid.Frontier); err != nil {
		return fmt.Errorf("traverse: visit: %w", err)
	}
	w.res.Expanded = append(w.res.Expanded, p)
	step := Step{Algorithm: w.alg, Index: len(w.res.Expanded), Pos: p}

	hookErr := w.opts.OnVisit(step)
	if hookErr == nil && !w.wait() {
		w.res.Outcome = Cancelled
	}
	if err := w.grid.Set(p, grid.Visited); err != nil {
		return fmt.Errorf("traverse: visit: %w", err)
	}
	if hookErr != nil {
		return fmt.Errorf("traverse: OnVisit error at %s: %w", p, hookErr)
	}
	return nil
}

// wait sleeps for the configured delay. It reports false if the context
// ended first.
func (w *walker) wait() bool {
	if w.opts.Delay <= 0 {
		return true
	}
	t := time.NewTimer(w.opts.Delay)
	defer t.Stop()
	select {
	case <-w.ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// expand pushes every traversable neighbor of p. Neighbors other than the
// goal are marked Visited at push time, which keeps them from being queued
// twice; a cell can therefore be Visited before its own visit.
func (w *walker) expand(p grid.Position) error {
	for _, n := range w.grid.Neighbors(p) {
		w.push(n)
		if n == w.goal {
			continue
		}
		if err := w.grid.Set(n, grid.Visited); err != nil {
			return fmt.Errorf("traverse: expand: %w", err)
		}
	}
	return nil
}
