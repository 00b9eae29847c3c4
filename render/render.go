// Package render draws grid snapshots as text. On a terminal each frame
// clears the screen first so successive frames animate in place; on any other
// writer frames are simply appended.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/traverse"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Legend lists the cell glyphs in layout order.
var Legend = func() string {
	cells := []grid.Cell{grid.Wall, grid.Open, grid.Start, grid.Goal, grid.Visited, grid.Frontier}
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%c %s", c.Rune(), c)
	}
	return strings.Join(parts, "  ")
}()

// Renderer writes frames to w.
type Renderer struct {
	w      io.Writer
	ansi   bool
	legend bool
	frames int
}

// New returns a Renderer for w. ANSI redraw is enabled when w is a terminal.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, ansi: IsTerminal(w), legend: true}
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetANSI forces ANSI redraw on or off.
func (r *Renderer) SetANSI(on bool) { r.ansi = on }

// SetLegend toggles the legend line under each frame.
func (r *Renderer) SetLegend(on bool) { r.legend = on }

// Frames returns how many frames have been drawn.
func (r *Renderer) Frames() int { return r.frames }

// Frame renders g and an optional status line without writing anything.
func (r *Renderer) Frame(g *grid.Grid, status string) string {
	var b strings.Builder
	b.WriteString(g.String())
	if r.legend {
		b.WriteString(Legend)
		b.WriteByte('\n')
	}
	if status != "" {
		b.WriteString(status)
		b.WriteByte('\n')
	}
	return b.String()
}

// Draw writes one frame.
func (r *Renderer) Draw(g *grid.Grid, status string) error {
	frame := r.Frame(g, status)
	if r.ansi {
		frame = clearScreen + frame
	} else if r.frames > 0 {
		frame = "\n" + frame
	}
	if _, err := io.WriteString(r.w, frame); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	r.frames++
	return nil
}

// OnVisit returns a traverse hook that draws g after every expanded cell.
// Write errors abort the search.
func (r *Renderer) OnVisit(g *grid.Grid) func(traverse.Step) error {
	return func(s traverse.Step) error {
		return r.Draw(g, fmt.Sprintf("%s  step %d  %s", s.Algorithm, s.Index, s.Pos))
	}
}

// Summary formats a finished search for the status line.
func Summary(res *traverse.Result) string {
	switch res.Outcome {
	case traverse.Found:
		return fmt.Sprintf("%s: goal found after %d steps", res.Algorithm, res.Steps())
	case traverse.Cancelled:
		return fmt.Sprintf("%s: cancelled after %d steps", res.Algorithm, res.Steps())
	default:
		return fmt.Sprintf("%s: no path, %d cells explored", res.Algorithm, res.Steps())
	}
}

// HideCursor hides the terminal cursor and returns a func restoring it.
// It is a no-op without ANSI.
func (r *Renderer) HideCursor() func() {
	if !r.ansi {
		return func() {}
	}
	_, _ = io.WriteString(r.w, hideCursor)
	return func() { _, _ = io.WriteString(r.w, showCursor) }
}
