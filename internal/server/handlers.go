package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/podcraft-ai/podcraft/internal/pipeline"
	"github.com/podcraft-ai/podcraft/internal/runs"
	"github.com/podcraft-ai/podcraft/internal/storage"
	"github.com/podcraft-ai/podcraft/podcast"
)

// GET /
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to " + podcast.ShowName,
		"usage": gin.H{
			"generate": "POST /generate_podcast/?topic=<topic>",
			"status":   "GET /runs/<run_id>",
			"download": "GET /download/<filename>",
		},
	})
}

// POST /generate_podcast/?topic=...&context_url=...
func (s *Server) handleGenerate(c *gin.Context) {
	topic := podcast.NormalizeTopic(c.Query("topic"))
	contextURL := c.Query("context_url")

	run, err := s.runs.Create(c.Request.Context(), topic)
	if err != nil {
		s.logger.Error("failed to create run", "topic", topic, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create run"})
		return
	}

	req := pipeline.Request{RunID: run.ID, Topic: topic, ContextURL: contextURL}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if _, err := s.runner.Run(s.ctx, req); err != nil {
			s.logger.Warn("background run failed", "run_id", req.RunID, "error", err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Podcast generation started in the background",
		"run_id":   run.ID,
		"filename": podcast.EpisodeFilename(topic),
	})
}

// GET /download/:filename
func (s *Server) handleDownload(c *gin.Context) {
	name := c.Param("filename")
	if err := storage.ValidateName(name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid file name"})
		return
	}

	r, err := s.artifacts.Read(c.Request.Context(), name)
	if errors.Is(err, fs.ErrNotExist) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to read artifact", "file", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read file"})
		return
	}
	defer r.Close()

	c.DataFromReader(http.StatusOK, -1, "audio/mpeg", r, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", name),
	})
}

// GET /runs/:id
func (s *Server) handleGetRun(c *gin.Context) {
	run, err := s.runs.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, runs.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Run not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to get run", "run_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to get run"})
		return
	}
	c.JSON(http.StatusOK, run)
}

// GET /runs?limit=N
func (s *Server) handleListRuns(c *gin.Context) {
	limit := s.listLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	list, err := s.runs.List(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list runs"})
		return
	}
	if list == nil {
		list = []*runs.Run{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": list})
}
