package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazewalk/render"
	"github.com/katalvlaran/mazewalk/traverse"
)

func newRunCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run <bfs|dfs|greedy>",
		Short: "Animate one search on a fresh maze",
		Long: `Generates a maze (or loads --layout), then animates the chosen search
until the goal is reached, the frontier runs dry or Ctrl-C cancels it.

greedy ranks cells by Manhattan distance to the goal alone; it is not A*.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := traverse.ParseAlgorithm(args[0])
			if err != nil {
				return err
			}
			m, err := a.newMaze()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			r := render.New(cmd.OutOrStdout())
			defer r.HideCursor()()

			var opts []traverse.Option
			if !quiet {
				if err = r.Draw(m.Grid(), fmt.Sprintf("%s  seed %d", alg, m.Seed())); err != nil {
					return err
				}
				opts = append(opts, traverse.WithOnVisit(r.OnVisit(m.Grid())))
			}

			run, err := m.Run(ctx, alg, opts...)
			if err != nil {
				return err
			}
			return r.Draw(m.Grid(), render.Summary(run.Result))
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Draw only the final grid")

	return cmd
}

