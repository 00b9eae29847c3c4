package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/traverse"
)

// comparison is one row of the compare table.
type comparison struct {
	Algorithm traverse.Algorithm `json:"algorithm"`
	Outcome   traverse.Outcome   `json:"outcome"`
	Steps     int                `json:"steps"`
	Pushed    int                `json:"pushed"`
	Popped    int                `json:"popped"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
}

func newCompareCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every search on the same maze and tabulate the work done",
		Long: `Runs BFS, DFS and greedy best-first concurrently, each on its own copy
of one layout, and prints one row per algorithm. The step delay is ignored
unless --delay is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unknown format %q (want table or json)", format)
			}
			m, err := a.newMaze()
			if err != nil {
				return err
			}
			delay := time.Duration(0)
			if cmd.Flags().Changed("delay") {
				delay = a.cfg.StepDelay
			}

			rows, err := compare(cmd, m.Grid(), delay)
			if err != nil {
				return err
			}
			a.log.Info("comparison finished", "seed", m.Seed(), "algorithms", len(rows))

			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			fmt.Fprintf(out, "seed %d, %dx%d\n", m.Seed(), m.Grid().Rows(), m.Grid().Cols())
			return writeTable(out, rows)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}

// compare searches a private clone of g per algorithm. Rows come back in
// traverse.Algorithms order.
func compare(cmd *cobra.Command, g *grid.Grid, delay time.Duration) ([]comparison, error) {
	rows := make([]comparison, len(traverse.Algorithms))
	eg, ctx := errgroup.WithContext(cmd.Context())

	for i, alg := range traverse.Algorithms {
		i, alg := i, alg
		clone := g.Clone()
		eg.Go(func() error {
			began := time.Now()
			res, err := traverse.Run(clone, alg, traverse.WithContext(ctx), traverse.WithDelay(delay))
			if err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			rows[i] = comparison{
				Algorithm: alg,
				Outcome:   res.Outcome,
				Steps:     res.Steps(),
				Pushed:    res.Pushed,
				Popped:    res.Popped,
				Elapsed:   time.Since(began),
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func writeTable(out io.Writer, rows []comparison) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Algorithm\tOutcome\tSteps\tPushed\tPopped\tElapsed\n")
	fmt.Fprintf(w, "---------\t-------\t-----\t------\t------\t-------\n")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n", r.Algorithm, r.Outcome, r.Steps, r.Pushed, r.Popped, r.Elapsed.Round(time.Microsecond))
	}
	return w.Flush()
}
