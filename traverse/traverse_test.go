package traverse_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/traverse"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

// mustParse builds a grid from a layout or fails the test.
func mustParse(t testing.TB, layout string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(layout)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

func TestRun_NilGrid(t *testing.T) {
	res, err := traverse.BFS(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrGridNil)
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	res, err := traverse.Run(g, traverse.Algorithm(9))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrUnknownAlgorithm)
}

func TestRun_NegativeDelay(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = traverse.DFS(g, traverse.WithDelay(-time.Millisecond))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}

//----------------------------------------------------------------------------//
// Outcomes shared by every algorithm
//----------------------------------------------------------------------------//

// TestAll_OpenGridFound: without walls every algorithm reaches the goal.
func TestAll_OpenGridFound(t *testing.T) {
	for _, alg := range traverse.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g, err := grid.Generate(15, 20, 0, 1)
			require.NoError(t, err)

			res, err := traverse.Run(g, alg)
			require.NoError(t, err)
			assert.Equal(t, traverse.Found, res.Outcome)
			assert.Equal(t, alg, res.Algorithm)
			assert.NotEmpty(t, res.Expanded)
		})
	}
}

// TestAll_EnclosedGoalNotFound: a walled-in goal exhausts the frontier.
func TestAll_EnclosedGoalNotFound(t *testing.T) {
	const layout = `
		S....
		.....
		.....
		....#
		...#G`
	for _, alg := range traverse.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustParse(t, layout)

			res, err := traverse.Run(g, alg)
			require.NoError(t, err)
			assert.Equal(t, traverse.NotFound, res.Outcome)
			// every reachable open cell is expanded exactly once
			assert.Len(t, res.Expanded, 25-2-1-1)
			assert.Equal(t, 25-2-2, g.Count(grid.Visited))
		})
	}
}

// TestAll_SingleCell: the start is the goal; no step is animated.
func TestAll_SingleCell(t *testing.T) {
	for _, alg := range traverse.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g, err := grid.New(1, 1)
			require.NoError(t, err)

			visits := 0
			res, err := traverse.Run(g, alg, traverse.WithOnVisit(func(traverse.Step) error {
				visits++
				return nil
			}))
			require.NoError(t, err)
			assert.Equal(t, traverse.Found, res.Outcome)
			assert.Zero(t, visits)
			assert.Empty(t, res.Expanded)
			assert.Equal(t, 1, res.Popped)
		})
	}
}

// TestAll_StartGoalPreserved: Start and Goal keep their identity and the grid
// holds no Frontier mark once the run returns.
func TestAll_StartGoalPreserved(t *testing.T) {
	for _, alg := range traverse.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g, err := grid.Generate(12, 12, 0.25, 5)
			require.NoError(t, err)

			_, err = traverse.Run(g, alg, traverse.WithOnVisit(func(s traverse.Step) error {
				assert.NotEqual(t, g.Start(), s.Pos)
				assert.NotEqual(t, g.Goal(), s.Pos)
				return nil
			}))
			require.NoError(t, err)

			c, _ := g.Get(g.Start())
			assert.Equal(t, grid.Start, c)
			c, _ = g.Get(g.Goal())
			assert.Equal(t, grid.Goal, c)
			assert.Zero(t, g.Count(grid.Frontier))
		})
	}
}

// TestAll_RepeatAfterReset: reset restores the pre-run layout, and a second
// run expands exactly the same cells.
func TestAll_RepeatAfterReset(t *testing.T) {
	for _, alg := range traverse.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g, err := grid.Generate(10, 14, grid.DefaultWallProbability, 11)
			require.NoError(t, err)
			before := g.String()

			first, err := traverse.Run(g, alg)
			require.NoError(t, err)
			g.Reset()
			assert.Equal(t, before, g.String())

			second, err := traverse.Run(g, alg)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

//----------------------------------------------------------------------------//
// The observable step contract
//----------------------------------------------------------------------------//

// TestVisit_FrontierDuringHook: inside OnVisit exactly one cell is Frontier,
// and it is the step's position.
func TestVisit_FrontierDuringHook(t *testing.T) {
	g, err := grid.Generate(8, 8, 0.2, 3)
	require.NoError(t, err)

	index := 0
	_, err = traverse.BFS(g, traverse.WithOnVisit(func(s traverse.Step) error {
		index++
		assert.Equal(t, index, s.Index)
		assert.Equal(t, traverse.AlgBFS, s.Algorithm)
		assert.Equal(t, 1, g.Count(grid.Frontier))
		c, _ := g.Get(s.Pos)
		assert.Equal(t, grid.Frontier, c)
		return nil
	}))
	require.NoError(t, err)
}

// TestVisit_HookErrorAborts wraps the hook error and leaves no Frontier mark.
func TestVisit_HookErrorAborts(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	boom := errors.New("boom")

	calls := 0
	res, err := traverse.DFS(g, traverse.WithOnVisit(func(traverse.Step) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Len(t, res.Expanded, 3)
	assert.Zero(t, g.Count(grid.Frontier))
}

// TestPushTimeMarking: after the first expansion of the start, both of its
// neighbors are already Visited though neither has been animated.
func TestPushTimeMarking(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	var seen []string
	_, err = traverse.BFS(g, traverse.WithOnVisit(func(s traverse.Step) error {
		if s.Index == 1 {
			seen = g.Lines()
		}
		return nil
	}))
	require.NoError(t, err)
	// (1,0) is being animated; (0,1) was pre-marked when the start expanded.
	assert.Equal(t, []string{"S*.", "@..", "..G"}, seen)
}

//----------------------------------------------------------------------------//
// Cancellation
//----------------------------------------------------------------------------//

func TestCancel_BeforeStart(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := traverse.GreedyBestFirst(g, traverse.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, traverse.Cancelled, res.Outcome)
	assert.Empty(t, res.Expanded)
}

// TestCancel_DuringDelay interrupts the wait of the second step.
func TestCancel_DuringDelay(t *testing.T) {
	g, err := grid.New(6, 6)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := traverse.BFS(g,
		traverse.WithContext(ctx),
		traverse.WithDelay(time.Hour),
		traverse.WithOnVisit(func(s traverse.Step) error {
			if s.Index == 1 {
				cancel()
			}
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, traverse.Cancelled, res.Outcome)
	assert.Len(t, res.Expanded, 1)
	assert.Zero(t, g.Count(grid.Frontier), "cancelled cell must settle as Visited")
}

func TestCancel_ShortDelayCompletes(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	res, err := traverse.DFS(g, traverse.WithDelay(time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, traverse.Found, res.Outcome)
}

//----------------------------------------------------------------------------//
// Names
//----------------------------------------------------------------------------//

// TestEntryPoints_MatchRun: each named search is Run with its Algorithm.
func TestEntryPoints_MatchRun(t *testing.T) {
	cases := []struct {
		alg    traverse.Algorithm
		search func(*grid.Grid, ...traverse.Option) (*traverse.Result, error)
	}{
		{traverse.AlgBFS, traverse.BFS},
		{traverse.AlgDFS, traverse.DFS},
		{traverse.AlgGreedyBestFirst, traverse.GreedyBestFirst},
	}
	for _, tc := range cases {
		t.Run(tc.alg.String(), func(t *testing.T) {
			a, b := mustParse(t, "S.#\n..#\n#.G"), mustParse(t, "S.#\n..#\n#.G")
			got, err := tc.search(a)
			require.NoError(t, err)
			want, err := traverse.Run(b, tc.alg)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, tc.alg, got.Algorithm)
			assert.Equal(t, b.String(), a.String())
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]traverse.Algorithm{
		"bfs":        traverse.AlgBFS,
		" BFS ":      traverse.AlgBFS,
		"depth":      traverse.AlgDFS,
		"dfs":        traverse.AlgDFS,
		"greedy":     traverse.AlgGreedyBestFirst,
		"best-first": traverse.AlgGreedyBestFirst,
		"astar":      traverse.AlgGreedyBestFirst,
		"A*":         traverse.AlgGreedyBestFirst,
	}
	for in, want := range cases {
		got, err := traverse.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := traverse.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, traverse.ErrUnknownAlgorithm)

	for _, alg := range traverse.Algorithms {
		back, err := traverse.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, back)
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "found", traverse.Found.String())
	assert.Equal(t, "not_found", traverse.NotFound.String())
	assert.Equal(t, "cancelled", traverse.Cancelled.String())
	assert.Equal(t, "outcome(7)", traverse.Outcome(7).String())
}

func TestText_Decode(t *testing.T) {
	var a traverse.Algorithm
	require.NoError(t, a.UnmarshalText([]byte("Best-First")))
	assert.Equal(t, traverse.AlgGreedyBestFirst, a)
	assert.ErrorIs(t, a.UnmarshalText([]byte("bogo")), traverse.ErrUnknownAlgorithm)

	var o traverse.Outcome
	require.NoError(t, o.UnmarshalText([]byte("cancelled")))
	assert.Equal(t, traverse.Cancelled, o)
	assert.Error(t, o.UnmarshalText([]byte("maybe")))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, traverse.Manhattan(pos(2, 2), pos(2, 2)))
	assert.Equal(t, 4, traverse.Manhattan(pos(0, 0), pos(2, 2)))
	assert.Equal(t, 7, traverse.Manhattan(pos(5, 1), pos(1, 4)))
}
