package api

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
)

// MazeResponse describes the current layout. Cells holds one string per row
// in layout glyphs.
type MazeResponse struct {
	Rows  int           `json:"rows"`
	Cols  int           `json:"cols"`
	Seed  int64         `json:"seed"`
	Start grid.Position `json:"start"`
	Goal  grid.Position `json:"goal"`
	Cells []string      `json:"cells"`
}

// ResetResponse reports how many search marks were cleared.
type ResetResponse struct {
	Cleared int `json:"cleared"`
}

// RunResponse reports one finished search and the grid it left behind.
type RunResponse struct {
	RunID     uuid.UUID          `json:"run_id"`
	Algorithm traverse.Algorithm `json:"algorithm"`
	Outcome   traverse.Outcome   `json:"outcome"`
	Steps     int                `json:"steps"`
	Pushed    int                `json:"pushed"`
	Popped    int                `json:"popped"`
	ElapsedMS int64              `json:"elapsed_ms"`
	Expanded  []grid.Position    `json:"expanded"`
	Cells     []string           `json:"cells"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newMazeResponse(m *maze.Maze) MazeResponse {
	g := m.Grid()
	return MazeResponse{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Seed:  m.Seed(),
		Start: g.Start(),
		Goal:  g.Goal(),
		Cells: g.Lines(),
	}
}

func newRunResponse(run *maze.Run, g *grid.Grid) RunResponse {
	res := run.Result
	expanded := res.Expanded
	if expanded == nil {
		expanded = []grid.Position{}
	}
	return RunResponse{
		RunID:     run.ID,
		Algorithm: res.Algorithm,
		Outcome:   res.Outcome,
		Steps:     res.Steps(),
		Pushed:    res.Pushed,
		Popped:    res.Popped,
		ElapsedMS: run.Elapsed.Milliseconds(),
		Expanded:  expanded,
		Cells:     g.Lines(),
	}
}
