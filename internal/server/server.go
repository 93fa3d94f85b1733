// Package server exposes podcast generation over HTTP: start a run, follow its status,
// download the finished episode.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/podcraft-ai/podcraft/internal/pipeline"
	"github.com/podcraft-ai/podcraft/internal/runs"
	"github.com/podcraft-ai/podcraft/internal/storage"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner produces one episode, *pipeline.Pipeline satisfies it
type Runner interface {
	Run(ctx context.Context, req pipeline.Request) (pipeline.Result, error)
}

// RunStore keeps run records, *runs.Store satisfies it
type RunStore interface {
	Create(ctx context.Context, topic string) (*runs.Run, error)
	Get(ctx context.Context, id string) (*runs.Run, error)
	List(ctx context.Context, limit int) ([]*runs.Run, error)
}

// Server wires the HTTP routes to the pipeline, the run store and the artifact store
type Server struct {
	ctx       context.Context
	runner    Runner
	runs      RunStore
	artifacts storage.FileStore
	listLimit int
	logger    *slog.Logger
	engine    *gin.Engine
	wg        sync.WaitGroup
}

// New creates the server. Runs started over HTTP live on ctx rather than on the request,
// cancel ctx to stop them and call Wait to let them finish.
func New(ctx context.Context, runner Runner, runStore RunStore, artifacts storage.FileStore, listLimit int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if listLimit <= 0 {
		listLimit = runs.DefaultListLimit
	}
	s := &Server{
		ctx:       ctx,
		runner:    runner,
		runs:      runStore,
		artifacts: artifacts,
		listLimit: listLimit,
		logger:    logger.With("component", "server"),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the http handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Wait blocks until every dispatched run has returned
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.logger))

	r.GET("/", s.handleRoot)
	r.POST("/generate_podcast/", s.handleGenerate)
	r.GET("/download/:filename", s.handleDownload)
	r.GET("/runs", s.handleListRuns)
	r.GET("/runs/:id", s.handleGetRun)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
