// mazewalk animates BFS, DFS and greedy best-first search on random grid
// mazes.
//
// Usage:
//
//	mazewalk run <bfs|dfs|greedy> [--layout=<file>] [--delay=50ms]
//	mazewalk play
//	mazewalk compare [--format=table|json]
//	mazewalk serve [--addr=:8080]
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazewalk/config"
	"github.com/katalvlaran/mazewalk/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries the loaded configuration from the root command to its
// subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	rows            int
	cols            int
	wallProbability float64
	delay           time.Duration
	seed            int64
	layout          string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazewalk",
		Short: "Watch BFS, DFS and greedy best-first search explore a maze",
		Long: "mazewalk generates random grid mazes and animates how breadth-first,\n" +
			"depth-first and greedy best-first search explore them.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	f.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	f.IntVar(&a.rows, "rows", 0, "Grid rows")
	f.IntVar(&a.cols, "cols", 0, "Grid columns")
	f.Float64Var(&a.wallProbability, "wall-probability", 0, "Chance a generated cell is a wall")
	f.DurationVar(&a.delay, "delay", 0, "Animation delay per expanded cell")
	f.Int64Var(&a.seed, "seed", 0, "Layout seed; 0 picks one from the clock")
	f.StringVar(&a.layout, "layout", "", "Text layout file to load instead of generating")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newPlayCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

// load reads the configuration, applies explicitly set flags on top and
// initializes logging on the command's stderr.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if f.Changed("rows") {
		cfg.Rows = a.rows
	}
	if f.Changed("cols") {
		cfg.Cols = a.cols
	}
	if f.Changed("wall-probability") {
		cfg.WallProbability = a.wallProbability
	}
	if f.Changed("delay") {
		cfg.StepDelay = a.delay
	}
	if f.Changed("seed") {
		cfg.Seed = a.seed
	}
	if f.Changed("layout") {
		cfg.Layout = a.layout
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())

	a.cfg = cfg
	a.log = logging.New("cli")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
