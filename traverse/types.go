// Package traverse defines options, hooks, outcomes and sentinel errors for
// searching a grid.Grid.
package traverse

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/mazewalk/grid"
)

// Sentinel errors for traversal.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("traverse: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name or value.
	ErrUnknownAlgorithm = errors.New("traverse: unknown algorithm")
)

// Algorithm selects the frontier discipline.
type Algorithm int

const (
	// AlgBFS expands in FIFO order.
	AlgBFS Algorithm = iota
	// AlgDFS expands in LIFO order.
	AlgDFS
	// AlgGreedyBestFirst expands the entry with the lowest Manhattan distance to the goal.
	AlgGreedyBestFirst
)

// Algorithms lists every Algorithm in declaration order.
var Algorithms = []Algorithm{AlgBFS, AlgDFS, AlgGreedyBestFirst}

// String returns the short name used on the command line and in logs.
func (a Algorithm) String() string {
	switch a {
	case AlgBFS:
		return "bfs"
	case AlgDFS:
		return "dfs"
	case AlgGreedyBestFirst:
		return "greedy"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// MarshalText encodes a by name.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes any name ParseAlgorithm accepts.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlgorithm maps a name to an Algorithm. Matching is case-insensitive.
// "astar" and "a*" select AlgGreedyBestFirst: the search ranks entries by
// heuristic alone and is not A*, but users know the key by that name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth", "breadth-first":
		return AlgBFS, nil
	case "dfs", "depth", "depth-first":
		return AlgDFS, nil
	case "greedy", "best-first", "greedy-best-first", "astar", "a*":
		return AlgGreedyBestFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Outcome is the terminal state of one search run.
type Outcome int

const (
	// NotFound means the frontier emptied before the goal was popped.
	NotFound Outcome = iota
	// Found means the goal was popped from the frontier.
	Found
	// Cancelled means the context ended the run between steps.
	Cancelled
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not_found"
	case Found:
		return "found"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText lets outcomes appear by name in JSON and logs.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, v := range []Outcome{NotFound, Found, Cancelled} {
		if v.String() == string(text) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("traverse: unknown outcome %q", text)
}

// Entry is one frontier element. Priority is the Manhattan distance to the
// goal for AlgGreedyBestFirst and zero for AlgBFS and AlgDFS.
type Entry struct {
	Pos      grid.Position
	Priority int
}

// Step describes one animation tick: the moment Pos is marked Frontier.
type Step struct {
	Algorithm Algorithm
	Index     int // 1-based
	Pos       grid.Position
}

// Option configures traversal behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and hooks for one search run.
type Options struct {
	// Ctx allows cancellation between steps and during the step delay.
	Ctx context.Context

	// Delay is how long a cell stays Frontier before it becomes Visited.
	// Zero disables waiting.
	Delay time.Duration

	// OnVisit is called while the expanded cell is marked Frontier.
	// Returning an error aborts the search and propagates that error.
	OnVisit func(s Step) error

	// OnPush is called for every entry added to the frontier, including the seed.
	OnPush func(e Entry)

	// OnPop is called for every entry removed from the frontier, before the goal check.
	OnPop func(e Entry)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no delay, and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Delay:   0,
		OnVisit: func(Step) error { return nil },
		OnPush:  func(Entry) {},
		OnPop:   func(Entry) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDelay sets the per-step animation delay. A negative delay is an
// ErrOptionViolation.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithOnVisit registers the animation hook.
func WithOnVisit(fn func(s Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPush registers a callback run on every frontier insertion.
func WithOnPush(fn func(e Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback run on every frontier removal.
func WithOnPop(fn func(e Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// Result holds the outcome of one search run:
//   - Expanded: cells passed through the step visitor, in order.
//   - Pushed/Popped: frontier traffic, including the seed and the goal.
//
// No route is reconstructed.
type Result struct {
	Algorithm Algorithm       `json:"algorithm"`
	Outcome   Outcome         `json:"outcome"`
	Expanded  []grid.Position `json:"expanded"`
	Pushed    int             `json:"pushed"`
	Popped    int             `json:"popped"`
}

// Steps returns the number of animation ticks.
func (r *Result) Steps() int { return len(r.Expanded) }
