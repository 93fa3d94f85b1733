package audio

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/podcast"
)

//go:generate moq -out mocks/speech_client.go -pkg mocks -skip-ensure -fmt goimports . SpeechClient

// SpeechClient turns one line of text into encoded speech
type SpeechClient interface {
	Speech(ctx context.Context, text, voice string) ([]byte, error)
}

// Clip is an audio track on disk
type Clip struct {
	Path     string
	Format   Format
	Duration time.Duration
}

// Synthesizer speaks a script line by line into a single PCM track
type Synthesizer struct {
	speech SpeechClient
	codec  Codec
	format Format
	voices [2]string
	pause  time.Duration
	logger *slog.Logger
}

// NewSynthesizer creates a synthesizer alternating between the voices of the two hosts
func NewSynthesizer(speech SpeechClient, codec Codec, format Format, voices [2]string, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{
		speech: speech,
		codec:  codec,
		format: format,
		voices: voices,
		pause:  content.LinePause,
		logger: logger.With("component", "synthesizer"),
	}
}

// Synthesize speaks every line and appends it to speech.pcm in workDir followed by a pause.
// Even lines use the first voice, odd lines the second. Any failure aborts the track.
func (s *Synthesizer) Synthesize(ctx context.Context, lines []string, workDir string) (Clip, error) {
	path := filepath.Join(workDir, content.SpeechTrackFile)
	f, err := os.Create(path)
	if err != nil {
		return Clip{}, podcast.Wrap(podcast.ErrArtifactIO, "create speech track", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var total int64
	for i, line := range lines {
		pcm, err := s.line(ctx, i, line, workDir)
		if err != nil {
			return Clip{}, err
		}
		if _, err := w.Write(pcm); err != nil {
			return Clip{}, podcast.Wrap(podcast.ErrArtifactIO, "write speech track", err)
		}
		n, err := s.format.WriteSilence(w, s.pause)
		if err != nil {
			return Clip{}, podcast.Wrap(podcast.ErrArtifactIO, "write speech track", err)
		}
		total += int64(len(pcm)) + n
		s.logger.Debug("line synthesized", "line", i, "voice", s.voice(i), "duration", s.format.Duration(int64(len(pcm))))
	}

	if err := w.Flush(); err != nil {
		return Clip{}, podcast.Wrap(podcast.ErrArtifactIO, "flush speech track", err)
	}
	if err := f.Close(); err != nil {
		return Clip{}, podcast.Wrap(podcast.ErrArtifactIO, "close speech track", err)
	}

	clip := Clip{Path: path, Format: s.format, Duration: s.format.Duration(total)}
	s.logger.Info("speech track ready", "lines", len(lines), "duration", clip.Duration)
	return clip, nil
}

// line synthesizes a single line through a temp mp3 that is removed once decoded
func (s *Synthesizer) line(ctx context.Context, i int, text, workDir string) ([]byte, error) {
	data, err := s.speech.Speech(ctx, text, s.voice(i))
	if err != nil {
		return nil, podcast.Wrap(podcast.ErrUpstream, fmt.Sprintf("synthesize line %d", i), err)
	}

	temp := filepath.Join(workDir, fmt.Sprintf("temp_%d.mp3", i))
	if err := os.WriteFile(temp, data, 0o600); err != nil {
		return nil, podcast.Wrap(podcast.ErrArtifactIO, "write "+filepath.Base(temp), err)
	}
	defer os.Remove(temp)

	pcm, err := s.codec.Decode(ctx, temp, DecodeOptions{})
	if err != nil {
		return nil, podcast.Wrap(podcast.ErrArtifactIO, fmt.Sprintf("decode line %d", i), err)
	}
	return pcm, nil
}

func (s *Synthesizer) voice(i int) string {
	return s.voices[i%2]
}
