// Package api exposes a maze.Maze over HTTP with gin. The maze routes live
// under the router's base URL (default /api/v1), the liveness check at
// /healthz; requests that touch the maze are serialized because a Maze has a
// single owner.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazewalk/logging"
)

// DefaultBaseURL prefixes every route.
const DefaultBaseURL = "/api/v1"

const shutdownTimeout = 5 * time.Second

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	log         *slog.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes; DefaultBaseURL when empty
	Controllers []Controller
	Logger      *slog.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	r := &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		log:         config.Logger,
	}
	if r.baseURL == "" {
		r.baseURL = DefaultBaseURL
	}
	if r.log == nil {
		r.log = logging.Discard()
	}
	return r
}

// Handler builds the gin engine: recovery, request logging, /healthz at the
// root and every controller under the base URL.
func (r *Router) Handler() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery(), r.requestLogger())

	engine.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group(r.baseURL)
	{
		for _, c := range r.controllers {
			c.Register(api)
		}
	}

	return engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.log.Info("http server listening", "addr", r.addr, "base_url", r.baseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		r.log.Info("http server shutting down")
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}

// requestLogger logs one line per request at debug, or warn for 5xx.
func (r *Router) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		began := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		level := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		r.log.Log(ctx.Request.Context(), level, "http request",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", status,
			"elapsed", time.Since(began),
		)
	}
}
