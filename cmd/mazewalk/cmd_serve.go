package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazewalk/api"
	"github.com/katalvlaran/mazewalk/logging"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the maze commands over HTTP",
		Long: `Starts an HTTP server exposing one maze under /api/v1, plus a
liveness check at the root:

  GET  /api/v1/maze                    current layout
  POST /api/v1/maze/reset              clear search marks
  POST /api/v1/maze/regenerate         new random layout
  POST /api/v1/maze/run/{algorithm}    run bfs, dfs or greedy (?delay=0s)
  GET  /healthz                        liveness

Requests are served one at a time. SIGINT or SIGTERM shuts the server down.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTPAddr = addr
			}
			m, err := a.newMaze()
			if err != nil {
				return err
			}
			gin.SetMode(a.cfg.GinMode)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := api.NewRouter(api.Config{
				Addr:        a.cfg.HTTPAddr,
				Controllers: []api.Controller{api.NewMazeController(m, logging.New("api"))},
				Logger:      logging.New("http"),
			})
			return router.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")

	return cmd
}
