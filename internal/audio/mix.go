package audio

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/podcast"
)

// Mixer puts the intro music in front of the speech track and encodes the episode
type Mixer struct {
	codec  Codec
	format Format
	logger *slog.Logger
}

// NewMixer creates a mixer working on PCM in the given format
func NewMixer(codec Codec, format Format, logger *slog.Logger) *Mixer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mixer{codec: codec, format: format, logger: logger.With("component", "mixer")}
}

// MixIntro decodes the loudness-normalized intro, fades it in and out, appends the speech
// track with no gap and encodes the result to <outDir>/<sanitized topic>.mp3
func (m *Mixer) MixIntro(ctx context.Context, intro string, speech Clip, topic, outDir string) (string, error) {
	introPCM, err := m.codec.Decode(ctx, intro, DecodeOptions{Loudnorm: true})
	if err != nil {
		return "", podcast.Wrap(podcast.ErrArtifactIO, "decode intro", err)
	}
	m.format.Fade(introPCM, content.IntroFade, content.IntroFade)

	speechFile, err := os.Open(speech.Path)
	if err != nil {
		return "", podcast.Wrap(podcast.ErrArtifactIO, "open speech track", err)
	}
	defer speechFile.Close()

	out := filepath.Join(outDir, podcast.EpisodeFilename(topic))
	if err := m.codec.Encode(ctx, io.MultiReader(bytes.NewReader(introPCM), speechFile), out); err != nil {
		return "", podcast.Wrap(podcast.ErrArtifactIO, "encode episode", err)
	}

	introDuration := m.format.Duration(int64(len(introPCM)))
	m.logger.Info("episode mixed", "file", filepath.Base(out),
		"intro", introDuration, "duration", introDuration+speech.Duration)
	return out, nil
}
