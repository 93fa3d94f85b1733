package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podcraft-ai/podcraft/internal/logging"
	"github.com/podcraft-ai/podcraft/internal/pipeline"
	"github.com/podcraft-ai/podcraft/internal/runs"
	"github.com/podcraft-ai/podcraft/internal/server/mocks"
	"github.com/podcraft-ai/podcraft/internal/storage"
)

type testEnv struct {
	srv       *Server
	runner    *mocks.RunnerMock
	runs      *runs.Store
	artifacts *storage.Local
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	runStore, err := runs.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = runStore.Close() })

	artifacts, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, req pipeline.Request) (pipeline.Result, error) {
			name := strings.ReplaceAll(req.Topic, " ", "_") + ".mp3"
			w, err := artifacts.Write(ctx, name)
			if err != nil {
				return pipeline.Result{}, err
			}
			_, _ = io.WriteString(w, "mp3 bytes")
			if err := w.Close(); err != nil {
				return pipeline.Result{}, err
			}
			return pipeline.Result{Artifact: name}, runStore.Complete(ctx, req.RunID, name)
		},
	}

	srv := New(context.Background(), runner, runStore, artifacts, 0, logging.Discard())
	return &testEnv{srv: srv, runner: runner, runs: runStore, artifacts: artifacts}
}

func (e *testEnv) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestServer_Root(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["message"], "Podcraft AI")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_GenerateAndDownload(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/generate_podcast/?topic=Open%20AI&context_url=https%3A%2F%2Fexample.com")
	require.Equal(t, http.StatusAccepted, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Podcast generation started in the background", body["message"])
	assert.Equal(t, "Open_AI.mp3", body["filename"])
	runID, _ := body["run_id"].(string)
	require.NotEmpty(t, runID)

	env.srv.Wait()

	require.Len(t, env.runner.RunCalls(), 1)
	req := env.runner.RunCalls()[0].Req
	assert.Equal(t, runID, req.RunID)
	assert.Equal(t, "Open AI", req.Topic)
	assert.Equal(t, "https://example.com", req.ContextURL)

	w = env.do(t, http.MethodGet, "/runs/"+runID)
	require.Equal(t, http.StatusOK, w.Code)
	run := decode(t, w)
	assert.Equal(t, "completed", run["status"])
	assert.Equal(t, "Open_AI.mp3", run["artifact"])

	w = env.do(t, http.MethodGet, "/download/Open_AI.mp3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Open_AI.mp3"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "mp3 bytes", w.Body.String())
}

func TestServer_DownloadDottedTopic(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/generate_podcast/?topic=AI...")
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "AI....mp3", decode(t, w)["filename"])
	env.srv.Wait()

	w = env.do(t, http.MethodGet, "/download/AI....mp3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mp3 bytes", w.Body.String())
}

func TestServer_GenerateEmptyTopic(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/generate_podcast/")
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "podcast.mp3", decode(t, w)["filename"])

	env.srv.Wait()
	assert.Equal(t, "podcast", env.runner.RunCalls()[0].Req.Topic)
}

func TestServer_DownloadErrors(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/download/missing.mp3")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", decode(t, w)["detail"])

	w = env.do(t, http.MethodGet, "/download/..")
	assert.Contains(t, []int{http.StatusBadRequest, http.StatusNotFound, http.StatusMovedPermanently}, w.Code)

	w = env.do(t, http.MethodGet, "/download/a%5Cb.mp3")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_Runs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	w := env.do(t, http.MethodGet, "/runs")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["runs"])

	for _, topic := range []string{"a", "b", "c"} {
		_, err := env.runs.Create(ctx, topic)
		require.NoError(t, err)
	}

	w = env.do(t, http.MethodGet, "/runs?limit=2")
	require.Equal(t, http.StatusOK, w.Code)
	list, ok := decode(t, w)["runs"].([]any)
	require.True(t, ok)
	assert.Len(t, list, 2)

	w = env.do(t, http.MethodGet, "/runs?limit=zero")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/runs/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Run not found", decode(t, w)["detail"])
}

func TestServer_Metrics(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestLogger(logging.Discard()))
	r.GET("/ping", func(c *gin.Context) {
		_, ok := c.Get(requestIDKey)
		assert.True(t, ok)
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
