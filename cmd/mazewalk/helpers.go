package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/logging"
	"github.com/katalvlaran/mazewalk/maze"
)

// newMaze builds the maze every command works on: the layout file when one
// is configured, a seeded random layout otherwise.
func (a *app) newMaze() (*maze.Maze, error) {
	opts := maze.OptionsFromConfig(a.cfg)
	opts.Logger = logging.New("maze")

	if a.cfg.Layout == "" {
		return maze.New(opts)
	}

	data, err := os.ReadFile(a.cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	g, err := grid.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", a.cfg.Layout, err)
	}
	return maze.FromGrid(g, opts)
}
