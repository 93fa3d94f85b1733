package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podcraft-ai/podcraft/internal/audio"
	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/internal/logging"
	"github.com/podcraft-ai/podcraft/internal/pipeline/mocks"
	"github.com/podcraft-ai/podcraft/internal/runs"
	"github.com/podcraft-ai/podcraft/internal/storage"
	"github.com/podcraft-ai/podcraft/podcast"
)

const rawScript = "**Segment 1: Opening**\n**Ofir:** Welcome to Podcraft AI!\nDaniel: Glad to be here.\n" +
	"continuing my thought\nOfir: Let's start.\nOfir: Still me.\n"

type fixture struct {
	deps     Deps
	opts     Options
	music    *mocks.MusicGeneratorMock
	research *mocks.ResearcherMock
	writer   *mocks.ScriptWriterMock
	reviser  *mocks.ReviserMock
	speech   *mocks.SynthesizerMock
	mixer    *mocks.MixerMock
	recorder *mocks.RunRecorderMock
	store    *storage.Local

	mu       sync.Mutex
	statuses []runs.Status
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := storage.NewLocal(filepath.Join(t.TempDir(), "episodes"))
	require.NoError(t, err)

	f := &fixture{store: store, opts: Options{WorkDir: filepath.Join(t.TempDir(), "work")}}
	f.music = &mocks.MusicGeneratorMock{
		GenerateFunc: func(context.Context, string, time.Duration) ([]byte, error) {
			return []byte("RIFF intro"), nil
		},
	}
	f.research = &mocks.ResearcherMock{
		ResearchFunc: func(context.Context, string, string) string { return "some background" },
	}
	f.writer = &mocks.ScriptWriterMock{
		AssembleFunc: func(context.Context, string, string) (string, error) { return rawScript, nil },
	}
	f.reviser = &mocks.ReviserMock{
		ReviseFunc: func(context.Context, string) (string, error) {
			return "Welcome to Podcraft AI!\nGlad to be here.", nil
		},
	}
	f.speech = &mocks.SynthesizerMock{
		SynthesizeFunc: func(_ context.Context, lines []string, workDir string) (audio.Clip, error) {
			return audio.Clip{Path: filepath.Join(workDir, content.SpeechTrackFile), Duration: 3 * time.Second}, nil
		},
	}
	f.mixer = &mocks.MixerMock{
		MixIntroFunc: func(_ context.Context, intro string, _ audio.Clip, topic, outDir string) (string, error) {
			data, err := os.ReadFile(intro)
			if err != nil {
				return "", err
			}
			out := filepath.Join(outDir, podcast.EpisodeFilename(topic))
			return out, os.WriteFile(out, append(data, []byte(" + speech")...), 0o600)
		},
	}
	f.recorder = &mocks.RunRecorderMock{
		SetStatusFunc: func(_ context.Context, _ string, status runs.Status) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.statuses = append(f.statuses, status)
			return nil
		},
		CompleteFunc: func(context.Context, string, string) error { return nil },
		FailFunc:     func(context.Context, string, error) error { return nil },
	}
	f.deps = Deps{
		Music:      f.music,
		Researcher: f.research,
		Writer:     f.writer,
		Reviser:    f.reviser,
		Speech:     f.speech,
		Mixer:      f.mixer,
		Store:      f.store,
		Recorder:   f.recorder,
	}
	return f
}

func (f *fixture) pipeline() *Pipeline {
	return New(f.deps, f.opts, logging.Discard())
}

func TestPipeline_Run(t *testing.T) {
	f := newFixture(t)

	res, err := f.pipeline().Run(context.Background(), Request{RunID: "run-1", Topic: "Open AI", ContextURL: "https://example.com/a"})
	require.NoError(t, err)

	assert.Equal(t, "Open_AI.mp3", res.Artifact)
	assert.Equal(t, 1, res.Dropped)
	assert.Positive(t, res.Estimate)

	data, err := os.ReadFile(filepath.Join(f.store.Root(), "Open_AI.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "RIFF intro + speech", string(data))

	require.Len(t, f.music.GenerateCalls(), 1)
	assert.Equal(t, "soothing and rhythmic music inspired by Open AI", f.music.GenerateCalls()[0].Description)
	assert.Equal(t, 7*time.Second, f.music.GenerateCalls()[0].Duration)

	require.Len(t, f.research.ResearchCalls(), 1)
	assert.Equal(t, "https://example.com/a", f.research.ResearchCalls()[0].ContextURL)
	assert.Equal(t, "some background", f.writer.AssembleCalls()[0].Background)

	// Ofir has two turns, Daniel one: the unmatched tail is dropped
	require.Len(t, f.reviser.ReviseCalls(), 1)
	assert.Equal(t, "Welcome to Podcraft AI!\nGlad to be here. continuing my thought\n", f.reviser.ReviseCalls()[0].Merged)

	require.Len(t, f.speech.SynthesizeCalls(), 1)
	assert.Equal(t, []string{"Welcome to Podcraft AI!", "Glad to be here."}, f.speech.SynthesizeCalls()[0].Lines)

	assert.Equal(t, []runs.Status{
		runs.StatusResearching,
		runs.StatusScripting,
		runs.StatusParsing,
		runs.StatusRevising,
		runs.StatusSynthesizing,
		runs.StatusMixing,
		runs.StatusPublishing,
	}, f.statuses)
	require.Len(t, f.recorder.CompleteCalls(), 1)
	assert.Equal(t, "Open_AI.mp3", f.recorder.CompleteCalls()[0].Artifact)
	assert.Empty(t, f.recorder.FailCalls())

	_, err = os.Stat(filepath.Join(f.opts.WorkDir, "run-1"))
	assert.True(t, os.IsNotExist(err), "run directory should be removed")
}

func TestPipeline_KeepWorkDir(t *testing.T) {
	f := newFixture(t)
	f.opts.KeepWorkDir = true

	_, err := f.pipeline().Run(context.Background(), Request{RunID: "run-2", Topic: ""})
	require.NoError(t, err)

	dir := filepath.Join(f.opts.WorkDir, "run-2")
	host1, err := content.ReadLines(filepath.Join(dir, content.Host1File))
	require.NoError(t, err)
	assert.Equal(t, []string{"Welcome to Podcraft AI!", "Let's start. Still me."}, host1)

	host2, err := content.ReadLines(filepath.Join(dir, content.Host2File))
	require.NoError(t, err)
	assert.Equal(t, []string{"Glad to be here. continuing my thought"}, host2)

	raw, err := content.ReadText(filepath.Join(dir, content.RawScriptFile))
	require.NoError(t, err)
	assert.Equal(t, rawScript, raw)

	for _, name := range []string{content.MergedScriptFile, content.RevisedScriptFile, content.IntroFile, "podcast.mp3"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	exists, err := f.store.Exists(context.Background(), "podcast.mp3")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPipeline_ScriptFailure(t *testing.T) {
	f := newFixture(t)
	f.writer.AssembleFunc = func(context.Context, string, string) (string, error) {
		return "", podcast.Wrap(podcast.ErrUpstream, "send segment 4", errors.New("quota"))
	}

	_, err := f.pipeline().Run(context.Background(), Request{RunID: "run-3", Topic: "space"})
	require.Error(t, err)
	assert.ErrorIs(t, err, podcast.ErrUpstream)
	assert.Contains(t, err.Error(), "send segment 4")

	assert.Empty(t, f.reviser.ReviseCalls())
	assert.Empty(t, f.mixer.MixIntroCalls())
	require.Len(t, f.recorder.FailCalls(), 1)
	assert.Equal(t, "run-3", f.recorder.FailCalls()[0].Id)
	assert.Empty(t, f.recorder.CompleteCalls())

	exists, err := f.store.Exists(context.Background(), "space.mp3")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPipeline_MusicFailureCancelsScript(t *testing.T) {
	f := newFixture(t)
	f.music.GenerateFunc = func(context.Context, string, time.Duration) ([]byte, error) {
		return nil, errors.New("model loading")
	}
	f.writer.AssembleFunc = func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}

	_, err := f.pipeline().Run(context.Background(), Request{RunID: "run-4", Topic: "jazz"})
	require.Error(t, err)
	assert.ErrorIs(t, err, podcast.ErrUpstream)
	assert.Contains(t, err.Error(), "generate intro music")
	assert.Empty(t, f.mixer.MixIntroCalls())
	require.Len(t, f.recorder.FailCalls(), 1)
}

func TestPipeline_SynthesisFailure(t *testing.T) {
	f := newFixture(t)
	f.speech.SynthesizeFunc = func(context.Context, []string, string) (audio.Clip, error) {
		return audio.Clip{}, podcast.Wrap(podcast.ErrUpstream, "synthesize line 1", errors.New("rate limited"))
	}

	_, err := f.pipeline().Run(context.Background(), Request{RunID: "run-5", Topic: "chess"})
	require.Error(t, err)
	assert.Equal(t, "upstream", podcast.Kind(err))
	assert.Empty(t, f.mixer.MixIntroCalls())
}

func TestPipeline_MalformedScriptStillCompletes(t *testing.T) {
	f := newFixture(t)
	f.writer.AssembleFunc = func(context.Context, string, string) (string, error) {
		return "no markers anywhere", nil
	}
	f.reviser.ReviseFunc = func(_ context.Context, merged string) (string, error) {
		assert.Empty(t, merged)
		return content.NoRevisionMessage, nil
	}

	res, err := f.pipeline().Run(context.Background(), Request{RunID: "run-6", Topic: "quiet"})
	require.NoError(t, err)
	assert.Equal(t, "quiet.mp3", res.Artifact)
	assert.Equal(t, []string{content.NoRevisionMessage}, f.speech.SynthesizeCalls()[0].Lines)
}

func TestPipeline_RecorderFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.recorder.SetStatusFunc = func(context.Context, string, runs.Status) error { return errors.New("db locked") }
	f.recorder.CompleteFunc = func(context.Context, string, string) error { return errors.New("db locked") }

	res, err := f.pipeline().Run(context.Background(), Request{RunID: "run-7", Topic: "tea"})
	require.NoError(t, err)
	assert.Equal(t, "tea.mp3", res.Artifact)
}

func TestPipeline_OptionalCollaborators(t *testing.T) {
	f := newFixture(t)
	f.deps.Researcher = nil
	f.deps.Recorder = nil

	_, err := f.pipeline().Run(context.Background(), Request{Topic: "no extras"})
	require.NoError(t, err)
	assert.Empty(t, f.writer.AssembleCalls()[0].Background)
}

func TestPipeline_MissingDeps(t *testing.T) {
	p := New(Deps{}, Options{}, logging.Discard())

	_, err := p.Run(context.Background(), Request{RunID: "x", Topic: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "music")
	assert.Contains(t, err.Error(), "work directory")
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, nonEmpty([]string{"", "a", "  ", "b"}))
	assert.Empty(t, nonEmpty(nil))
}
