// Package maze is the command surface of the visualizer. A Maze owns one
// grid.Grid and exposes the operations a dispatcher binds to user commands:
// ResetMaze, Regenerate, RunBFS, RunDFS and RunGreedyBestFirst.
//
// The Maze is the single owner of its grid. Search runs and renderers borrow
// it through Grid(); a Maze must not be used from several goroutines at once.
package maze

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazewalk/config"
	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/logging"
	"github.com/katalvlaran/mazewalk/traverse"
)

// Options configures a Maze.
type Options struct {
	Rows            int
	Cols            int
	WallProbability float64
	StepDelay       time.Duration
	Seed            int64 // 0 picks a time-based seed
	Logger          *slog.Logger
}

// OptionsFromConfig copies the maze settings out of cfg.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Rows:            cfg.Rows,
		Cols:            cfg.Cols,
		WallProbability: cfg.WallProbability,
		StepDelay:       cfg.StepDelay,
		Seed:            cfg.Seed,
	}
}

// Maze owns a grid and the seed stream used to regenerate it.
type Maze struct {
	grid  *grid.Grid
	opts  Options
	seeds *rand.Rand
	seed  int64
	log   *slog.Logger
}

// Run is the record of one search started through a Maze.
type Run struct {
	ID      uuid.UUID        `json:"run_id"`
	Result  *traverse.Result `json:"result"`
	Elapsed time.Duration    `json:"elapsed"`
}

// New generates a random maze. With Options.Seed == 0 the first layout is
// seeded from the clock; otherwise the whole sequence of layouts produced by
// New and Regenerate is reproducible.
func New(opts Options) (*Maze, error) {
	m := newMaze(opts)
	m.seed = resolveSeed(opts.Seed)
	m.seeds = newSeedSource(m.seed)

	g, err := grid.Generate(opts.Rows, opts.Cols, opts.WallProbability, m.seed)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	m.grid = g
	m.log.Debug("maze generated", "rows", g.Rows(), "cols", g.Cols(), "seed", m.seed, "walls", g.Count(grid.Wall))

	return m, nil
}

// FromGrid wraps an existing layout, e.g. one parsed from a file. Rows and
// Cols in opts are replaced by the grid's dimensions; Regenerate still
// produces random layouts of that size, with opts.WallProbability walls
// (0 means wall-free, as for New).
func FromGrid(g *grid.Grid, opts Options) (*Maze, error) {
	if g == nil {
		return nil, traverse.ErrGridNil
	}
	if opts.WallProbability < 0 || opts.WallProbability > 1 {
		return nil, fmt.Errorf("maze: %w: got %v", grid.ErrWallProbability, opts.WallProbability)
	}
	opts.Rows, opts.Cols = g.Rows(), g.Cols()
	m := newMaze(opts)
	m.seeds = newSeedSource(resolveSeed(opts.Seed))
	m.grid = g

	return m, nil
}

func newMaze(opts Options) *Maze {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Maze{opts: opts, log: log}
}

// Grid lends the owned grid to renderers and searches.
func (m *Maze) Grid() *grid.Grid { return m.grid }

// Seed returns the seed of the current layout, or 0 for a layout supplied
// through FromGrid. grid.Generate with this seed rebuilds the layout.
func (m *Maze) Seed() int64 { return m.seed }

// StepDelay returns the default animation delay applied to runs.
func (m *Maze) StepDelay() time.Duration { return m.opts.StepDelay }

// ResetMaze clears search marks and returns how many cells were cleared.
// Walls, Start and Goal are left alone.
func (m *Maze) ResetMaze() int {
	n := m.grid.Reset()
	m.log.Debug("maze reset", "cleared", n)
	return n
}

// Regenerate replaces the layout with a fresh random one of the same size,
// drawing the next seed from the maze's seed stream.
func (m *Maze) Regenerate() error {
	seed := m.seeds.Int63()
	if err := m.grid.Fill(m.opts.WallProbability, rand.New(rand.NewSource(seed))); err != nil {
		return fmt.Errorf("maze: %w", err)
	}
	m.seed = seed
	m.log.Info("maze regenerated", "seed", seed, "walls", m.grid.Count(grid.Wall))
	return nil
}

// Run resets the grid, then searches it with alg. The maze's step delay is
// applied first so extra options can override it. The outcome is logged and
// returned; NotFound and Cancelled are not errors.
func (m *Maze) Run(ctx context.Context, alg traverse.Algorithm, extra ...traverse.Option) (*Run, error) {
	m.ResetMaze()

	opts := make([]traverse.Option, 0, len(extra)+2)
	opts = append(opts, traverse.WithContext(ctx), traverse.WithDelay(m.opts.StepDelay))
	opts = append(opts, extra...)

	run := &Run{ID: uuid.New()}
	log := m.log.With("run_id", run.ID.String(), "algorithm", alg.String())
	log.Debug("search started", "delay", m.opts.StepDelay)

	began := time.Now()
	res, err := traverse.Run(m.grid, alg, opts...)
	run.Elapsed = time.Since(began)
	run.Result = res
	if err != nil {
		log.Error("search failed", "error", err)
		return run, fmt.Errorf("maze: %s: %w", alg, err)
	}

	attrs := []any{"steps", res.Steps(), "pushed", res.Pushed, "elapsed", run.Elapsed}
	switch res.Outcome {
	case traverse.Found:
		log.Info("path found", attrs...)
	case traverse.NotFound:
		log.Info("no path found", attrs...)
	case traverse.Cancelled:
		log.Warn("search cancelled", attrs...)
	}
	return run, nil
}

// RunBFS resets the grid and runs breadth-first search.
func (m *Maze) RunBFS(ctx context.Context, extra ...traverse.Option) (*Run, error) {
	return m.Run(ctx, traverse.AlgBFS, extra...)
}

// RunDFS resets the grid and runs depth-first search.
func (m *Maze) RunDFS(ctx context.Context, extra ...traverse.Option) (*Run, error) {
	return m.Run(ctx, traverse.AlgDFS, extra...)
}

// RunGreedyBestFirst resets the grid and runs greedy best-first search.
func (m *Maze) RunGreedyBestFirst(ctx context.Context, extra ...traverse.Option) (*Run, error) {
	return m.Run(ctx, traverse.AlgGreedyBestFirst, extra...)
}
