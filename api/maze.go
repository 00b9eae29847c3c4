package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazewalk/logging"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
)

// MazeController binds the maze commands to routes. One mutex guards the
// maze, so a long animated run blocks other requests until it ends.
type MazeController struct {
	mu   sync.Mutex
	maze *maze.Maze
	log  *slog.Logger
}

// NewMazeController initializes a MazeController around m.
func NewMazeController(m *maze.Maze, log *slog.Logger) *MazeController {
	if log == nil {
		log = logging.Discard()
	}
	return &MazeController{maze: m, log: log}
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mz := route.Group("/maze")
	{
		mz.GET("", mc.show)
		mz.POST("/reset", mc.reset)
		mz.POST("/regenerate", mc.regenerate)
		mz.POST("/run/:algorithm", mc.run)
	}
}

// show returns the layout; ?format=text returns it as plain text.
func (mc *MazeController) show(ctx *gin.Context) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if ctx.Query("format") == "text" {
		ctx.String(http.StatusOK, mc.maze.Grid().String())
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(mc.maze))
}

func (mc *MazeController) reset(ctx *gin.Context) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	ctx.JSON(http.StatusOK, ResetResponse{Cleared: mc.maze.ResetMaze()})
}

func (mc *MazeController) regenerate(ctx *gin.Context) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if err := mc.maze.Regenerate(); err != nil {
		mc.log.Error("regenerate failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(mc.maze))
}

// run executes one search. The request context cancels it; ?delay=<duration>
// overrides the maze's step delay for this run only.
func (mc *MazeController) run(ctx *gin.Context) {
	alg, err := traverse.ParseAlgorithm(ctx.Param("algorithm"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var extra []traverse.Option
	if v, ok := ctx.GetQuery("delay"); ok {
		d, perr := time.ParseDuration(v)
		if perr != nil || d < 0 {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid delay " + v})
			return
		}
		extra = append(extra, traverse.WithDelay(d))
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	run, err := mc.maze.Run(ctx.Request.Context(), alg, extra...)
	if err != nil {
		mc.log.Error("run failed", "algorithm", alg.String(), "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	mc.log.Debug("run served", "run_id", run.ID.String(), "outcome", run.Result.Outcome.String())
	ctx.JSON(http.StatusOK, newRunResponse(run, mc.maze.Grid()))
}
