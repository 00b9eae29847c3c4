package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/render"
	"github.com/katalvlaran/mazewalk/traverse"
)

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// command is what a key press asks the play loop to do.
type command int

const (
	cmdNone command = iota
	cmdBFS
	cmdDFS
	cmdGreedy
	cmdRegenerate
	cmdClear
	cmdQuit
)

var keyBindings = map[byte]command{
	'b':      cmdBFS,
	'd':      cmdDFS,
	'a':      cmdGreedy,
	'r':      cmdRegenerate,
	'c':      cmdClear,
	'q':      cmdQuit,
	keyEsc:   cmdQuit,
	keyCtrlC: cmdQuit,
}

const helpLine = "b bfs  d dfs  a greedy  r regenerate  c clear  q quit"

// commandForKey maps a key to its command; letters are case-insensitive.
func commandForKey(k byte) command {
	if k >= 'A' && k <= 'Z' {
		k += 'a' - 'A'
	}
	return keyBindings[k]
}

func (c command) algorithm() (traverse.Algorithm, bool) {
	switch c {
	case cmdBFS:
		return traverse.AlgBFS, true
	case cmdDFS:
		return traverse.AlgDFS, true
	case cmdGreedy:
		return traverse.AlgGreedyBestFirst, true
	}
	return 0, false
}

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Drive the maze from the keyboard",
		Long: `Shows a maze and waits for keys:

  b  breadth-first search     r  regenerate the maze
  d  depth-first search       c  clear search marks
  a  greedy best-first        q  quit (ESC works too)

On a terminal keys act immediately and q or ESC cancels a running search.
Otherwise one key is read per input line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.newMaze()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return play(ctx, m, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// play runs the key loop until a quit key, end of input or ctx ends it.
// A terminal on in is switched to raw mode for the duration.
func play(ctx context.Context, m *maze.Maze, in io.Reader, out io.Writer) error {
	raw := false
	ansi := render.IsTerminal(out)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = term.Restore(int(f.Fd()), state) }()
		raw = true
		out = crlfWriter{out}
	}

	s := newSession(m, out, ansi)
	defer s.r.HideCursor()()

	done := make(chan struct{})
	defer close(done)
	keys := make(chan byte)
	go readKeys(in, raw, keys, done)

	var watch <-chan byte
	if raw {
		watch = keys
	}

	for {
		if err := s.draw(); err != nil {
			return err
		}

		var k byte
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case k, ok = <-keys:
		}
		if !ok {
			return nil
		}

		c := commandForKey(k)
		switch c {
		case cmdQuit:
			return nil
		case cmdNone:
			s.status = fmt.Sprintf("unbound key %q", k)
		case cmdClear:
			s.status = fmt.Sprintf("cleared %d cells", m.ResetMaze())
		case cmdRegenerate:
			if err := m.Regenerate(); err != nil {
				return err
			}
			s.status = fmt.Sprintf("new maze, seed %d", m.Seed())
		default:
			alg, _ := c.algorithm()
			quit, err := s.search(ctx, alg, watch)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

type session struct {
	maze   *maze.Maze
	r      *render.Renderer
	status string
}

// newSession renders to out. ansi is decided by the caller because out may
// wrap the terminal (crlfWriter) and no longer look like one.
func newSession(m *maze.Maze, out io.Writer, ansi bool) *session {
	r := render.New(out)
	r.SetANSI(ansi)
	return &session{maze: m, r: r, status: fmt.Sprintf("seed %d", m.Seed())}
}

func (s *session) draw() error {
	return s.r.Draw(s.maze.Grid(), s.status+"\n"+helpLine)
}

// search runs alg with animation. When keys is non-nil a quit key cancels
// the run and other keys are dropped; a closed keys channel also asks the
// caller to quit.
func (s *session) search(ctx context.Context, alg traverse.Algorithm, keys <-chan byte) (quit bool, err error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	if keys != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				case k, ok := <-keys:
					if !ok {
						quit = true
						cancel()
						return
					}
					if commandForKey(k) == cmdQuit {
						cancel()
						return
					}
				}
			}
		}()
	}

	run, err := s.maze.Run(runCtx, alg, traverse.WithOnVisit(s.r.OnVisit(s.maze.Grid())))
	close(stop)
	wg.Wait()
	if err != nil {
		return quit, err
	}
	s.status = render.Summary(run.Result)
	return quit, nil
}

// readKeys forwards key presses until in is exhausted or done is closed.
// In raw mode every byte is a key; otherwise the first non-blank byte of
// each line is.
func readKeys(in io.Reader, raw bool, keys chan<- byte, done <-chan struct{}) {
	defer close(keys)

	send := func(k byte) bool {
		select {
		case keys <- k:
			return true
		case <-done:
			return false
		}
	}

	if raw {
		buf := make([]byte, 1)
		for {
			n, err := in.Read(buf)
			if n == 1 && !send(buf[0]) {
				return
			}
			if err != nil {
				return
			}
		}
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !send(line[0]) {
			return
		}
	}
}

// crlfWriter turns \n into \r\n for terminals in raw mode.
type crlfWriter struct{ w io.Writer }

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
