// Package mazewalk animates uninformed and heuristic search on grid mazes.
//
// A maze is a rows×cols grid of cells. The start sits in the top-left
// corner and the goal in the bottom-right one; every other cell is a wall
// or open floor. Three searches explore it one cell at a time:
//
//	BFS     FIFO frontier, expands in rings of equal distance
//	DFS     LIFO frontier, dives down one corridor at a time
//	greedy  min-heap on Manhattan distance to the goal (not A*)
//
// Every expanded cell is shown as the frontier cell (@), handed to an
// observer hook, held for the step delay and then marked visited (*), so a
// renderer sees the search unfold step by step.
//
// Layout:
//
//	grid/          cell-state model, generation, reset, text layouts
//	traverse/      BFS, DFS and greedy best-first over one loop skeleton
//	maze/          owns a grid; reset, regenerate and run commands
//	render/        text frames, ANSI redraw on terminals
//	api/           the maze commands over HTTP (gin)
//	config/        defaults, YAML, .env and MAZEWALK_* overrides
//	logging/       slog setup
//	cmd/mazewalk/  the CLI: run, play, compare, serve
//
// Quick start:
//
//	go run ./cmd/mazewalk run bfs
//	go run ./cmd/mazewalk play
//
// Searches never reconstruct a route and a generated maze is not
// guaranteed to be solvable; NotFound is a normal outcome.
package mazewalk
