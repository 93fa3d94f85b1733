// Package pipeline runs one podcast episode end to end: intro music and script in parallel,
// then parse, merge, revise, synthesize, mix and publish. Every run works in its own
// directory so concurrent runs never share hand-off files.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/podcraft-ai/podcraft/internal/audio"
	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/internal/metrics"
	"github.com/podcraft-ai/podcraft/internal/runs"
	"github.com/podcraft-ai/podcraft/internal/storage"
	"github.com/podcraft-ai/podcraft/podcast"
)

//go:generate moq -out mocks/stages.go -pkg mocks -skip-ensure -fmt goimports . MusicGenerator Researcher ScriptWriter Reviser Synthesizer Mixer RunRecorder

// MusicGenerator produces the intro music clip
type MusicGenerator interface {
	Generate(ctx context.Context, description string, duration time.Duration) ([]byte, error)
}

// Researcher returns background material for the topic, never failing the run
type Researcher interface {
	Research(ctx context.Context, topic, contextURL string) string
}

// ScriptWriter produces the raw multi-segment script
type ScriptWriter interface {
	Assemble(ctx context.Context, topic, background string) (string, error)
}

// Reviser rewrites and scrubs the merged dialogue
type Reviser interface {
	Revise(ctx context.Context, merged string) (string, error)
}

// Synthesizer speaks the revised lines into one track
type Synthesizer interface {
	Synthesize(ctx context.Context, lines []string, workDir string) (audio.Clip, error)
}

// Mixer puts the intro in front of the speech track and encodes the episode
type Mixer interface {
	MixIntro(ctx context.Context, intro string, speech audio.Clip, topic, outDir string) (string, error)
}

// RunRecorder persists run progress, *runs.Store satisfies it
type RunRecorder interface {
	SetStatus(ctx context.Context, id string, status runs.Status) error
	Complete(ctx context.Context, id, artifact string) error
	Fail(ctx context.Context, id string, runErr error) error
}

// Deps are the collaborators of a pipeline. Researcher and Recorder are optional.
type Deps struct {
	Music      MusicGenerator
	Researcher Researcher
	Writer     ScriptWriter
	Reviser    Reviser
	Speech     Synthesizer
	Mixer      Mixer
	Store      storage.FileStore
	Recorder   RunRecorder
}

// Options tune a pipeline
type Options struct {
	Hosts       [2]podcast.Host
	WorkDir     string // parent of the run-scoped directories
	KeepWorkDir bool
}

// Request is one episode to produce
type Request struct {
	RunID      string
	Topic      string
	ContextURL string
}

// Result describes the published episode
type Result struct {
	Artifact string        // name in the artifact store
	Dropped  int           // turns lost while merging
	Estimate time.Duration // estimated spoken length of the revised script
}

// Pipeline produces podcast episodes
type Pipeline struct {
	deps   Deps
	opts   Options
	text   *content.TextProcessor
	logger *slog.Logger
}

// New creates a pipeline, missing required collaborators are reported on first Run
func New(deps Deps, opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Hosts == ([2]podcast.Host{}) {
		opts.Hosts = podcast.DefaultHosts()
	}
	return &Pipeline{deps: deps, opts: opts, text: content.NewTextProcessor(), logger: logger.With("component", "pipeline")}
}

// Run produces the episode for req and records its progress under req.RunID.
// It never retries and has no timeouts of its own, cancel ctx to stop it.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	metrics.RunsInFlight.Inc()
	defer metrics.RunsInFlight.Dec()

	res, err := p.run(ctx, req)
	if err != nil {
		p.logger.Error("podcast run failed", "run_id", req.RunID, "kind", podcast.Kind(err), "error", err)
		p.record(ctx, req.RunID, func(ctx context.Context, r RunRecorder) error { return r.Fail(ctx, req.RunID, err) })
		metrics.RecordRun(string(runs.StatusFailed), podcast.Kind(err))
		return Result{}, err
	}

	p.record(ctx, req.RunID, func(ctx context.Context, r RunRecorder) error { return r.Complete(ctx, req.RunID, res.Artifact) })
	metrics.RecordRun(string(runs.StatusCompleted), "")
	return res, nil
}

func (p *Pipeline) run(ctx context.Context, req Request) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}

	topic := podcast.NormalizeTopic(req.Topic)
	runID := req.RunID
	if runID == "" {
		runID = podcast.SanitizeTopic(topic)
	}
	log := p.logger.With("run_id", runID, "topic", topic)

	workDir := filepath.Join(p.opts.WorkDir, runID)
	if err := os.MkdirAll(workDir, 0o750); err != nil {
		return Result{}, podcast.Wrap(podcast.ErrArtifactIO, "create run directory", err)
	}
	if !p.opts.KeepWorkDir {
		defer func() {
			if err := os.RemoveAll(workDir); err != nil {
				log.Warn("failed to remove run directory", "dir", workDir, "error", err)
			}
		}()
	}

	// intro music runs alongside everything up to the mix
	musicCtx, cancelMusic := context.WithCancel(ctx)
	defer cancelMusic()
	music, musicCtx := errgroup.WithContext(musicCtx)
	introPath := filepath.Join(workDir, content.IntroFile)
	music.Go(func() error { return p.introMusic(musicCtx, topic, introPath, log) })

	speech, res, err := p.speechTrack(musicCtx, req, topic, workDir, log)
	if err != nil {
		cancelMusic()
		if musicErr := music.Wait(); musicErr != nil && errors.Is(err, context.Canceled) && ctx.Err() == nil {
			return Result{}, musicErr
		}
		return Result{}, err
	}

	if err := music.Wait(); err != nil {
		return Result{}, err
	}

	p.setStatus(ctx, req.RunID, runs.StatusMixing, log)
	start := time.Now()
	episode, err := p.deps.Mixer.MixIntro(ctx, introPath, speech, topic, workDir)
	if err != nil {
		return Result{}, err
	}
	metrics.RecordStage("mix", start)

	p.setStatus(ctx, req.RunID, runs.StatusPublishing, log)
	start = time.Now()
	name, err := storage.Publish(ctx, p.deps.Store, episode)
	if err != nil {
		return Result{}, podcast.Wrap(podcast.ErrArtifactIO, "publish episode", err)
	}
	metrics.RecordStage("publish", start)

	res.Artifact = name
	log.Info("episode published", "artifact", name, "speech", speech.Duration)
	return res, nil
}

// speechTrack covers research through synthesis, everything that can overlap with the music
func (p *Pipeline) speechTrack(ctx context.Context, req Request, topic, workDir string, log *slog.Logger) (audio.Clip, Result, error) {
	var res Result
	hosts := podcast.HostNames(p.opts.Hosts)

	background := ""
	if p.deps.Researcher != nil {
		p.setStatus(ctx, req.RunID, runs.StatusResearching, log)
		start := time.Now()
		background = p.deps.Researcher.Research(ctx, topic, req.ContextURL)
		metrics.RecordStage("research", start)
		log.Info("background research done", "chars", len(background))
	}

	p.setStatus(ctx, req.RunID, runs.StatusScripting, log)
	start := time.Now()
	raw, err := p.deps.Writer.Assemble(ctx, topic, background)
	if err != nil {
		return audio.Clip{}, res, err
	}
	metrics.RecordStage("script", start)
	if err := content.WriteText(filepath.Join(workDir, content.RawScriptFile), raw); err != nil {
		return audio.Clip{}, res, err
	}

	p.setStatus(ctx, req.RunID, runs.StatusParsing, log)
	start = time.Now()
	turns := content.ParseTurns(raw, hosts)
	if turns.Len() == 0 {
		log.Warn("no speaker turns found in script", "error", podcast.Wrap(podcast.ErrMalformedInput, "parse turns", nil))
	}
	if err := content.WriteTurns(workDir, turns); err != nil {
		return audio.Clip{}, res, err
	}
	// the merge works from the hand-off files, as the revision and synthesis steps do
	turns, err = content.ReadTurns(workDir)
	if err != nil {
		return audio.Clip{}, res, err
	}
	merged, dropped := content.Interleave(turns.Host1, turns.Host2)
	if dropped > 0 {
		log.Warn("unmatched turns dropped while merging", "dropped", dropped,
			"host1", len(turns.Host1), "host2", len(turns.Host2))
		metrics.RecordDropped(dropped)
	}
	res.Dropped = dropped
	mergedPath := filepath.Join(workDir, content.MergedScriptFile)
	if err := content.WriteLines(mergedPath, merged); err != nil {
		return audio.Clip{}, res, err
	}
	metrics.RecordStage("parse", start)

	p.setStatus(ctx, req.RunID, runs.StatusRevising, log)
	start = time.Now()
	mergedText, err := content.ReadText(mergedPath)
	if err != nil {
		return audio.Clip{}, res, err
	}
	revised, err := p.deps.Reviser.Revise(ctx, mergedText)
	if err != nil {
		return audio.Clip{}, res, err
	}
	revisedPath := filepath.Join(workDir, content.RevisedScriptFile)
	if err := content.WriteText(revisedPath, revised); err != nil {
		return audio.Clip{}, res, err
	}
	metrics.RecordStage("revise", start)

	lines, err := content.ReadLines(revisedPath)
	if err != nil {
		return audio.Clip{}, res, err
	}
	lines = nonEmpty(lines)
	seconds := p.text.EstimateTotalDuration(lines)
	metrics.RecordEstimate(seconds)
	res.Estimate = time.Duration(seconds * float64(time.Second))
	log.Info("revised script ready", "lines", len(lines), "estimated", res.Estimate.Round(time.Second))

	p.setStatus(ctx, req.RunID, runs.StatusSynthesizing, log)
	start = time.Now()
	clip, err := p.deps.Speech.Synthesize(ctx, lines, workDir)
	if err != nil {
		return audio.Clip{}, res, err
	}
	metrics.RecordStage("synthesize", start)
	return clip, res, nil
}

func (p *Pipeline) introMusic(ctx context.Context, topic, path string, log *slog.Logger) error {
	start := time.Now()
	data, err := p.deps.Music.Generate(ctx, content.IntroDescription+topic, content.IntroDuration)
	if err != nil {
		return podcast.Wrap(podcast.ErrUpstream, "generate intro music", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return podcast.Wrap(podcast.ErrArtifactIO, "write "+filepath.Base(path), err)
	}
	metrics.RecordStage("music", start)
	log.Info("intro music ready", "bytes", len(data))
	return nil
}

func (p *Pipeline) validate() error {
	var missing []string
	if p.deps.Music == nil {
		missing = append(missing, "music")
	}
	if p.deps.Writer == nil {
		missing = append(missing, "script writer")
	}
	if p.deps.Reviser == nil {
		missing = append(missing, "reviser")
	}
	if p.deps.Speech == nil {
		missing = append(missing, "synthesizer")
	}
	if p.deps.Mixer == nil {
		missing = append(missing, "mixer")
	}
	if p.deps.Store == nil {
		missing = append(missing, "artifact store")
	}
	if p.opts.WorkDir == "" {
		missing = append(missing, "work directory")
	}
	if len(missing) > 0 {
		return fmt.Errorf("pipeline is missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// setStatus records progress, a store failure is logged and never stops the episode
func (p *Pipeline) setStatus(ctx context.Context, runID string, status runs.Status, log *slog.Logger) {
	log.Info("stage started", "status", status)
	p.record(ctx, runID, func(ctx context.Context, r RunRecorder) error { return r.SetStatus(ctx, runID, status) })
}

func (p *Pipeline) record(ctx context.Context, runID string, fn func(context.Context, RunRecorder) error) {
	if p.deps.Recorder == nil || runID == "" {
		return
	}
	// the record must land even when the run itself was cancelled
	if err := fn(context.WithoutCancel(ctx), p.deps.Recorder); err != nil {
		p.logger.Warn("failed to record run progress", "run_id", runID, "error", err)
	}
}

func nonEmpty(lines []string) []string {
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
