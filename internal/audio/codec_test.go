package audio

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFmpegCodec_RoundTrip(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg is not installed")
	}

	codec := NewFFmpegCodec("", L16Mono24K)
	dst := filepath.Join(t.TempDir(), "silence.mp3")

	var pcm bytes.Buffer
	_, err := codec.Format().WriteSilence(&pcm, time.Second)
	require.NoError(t, err)
	require.NoError(t, codec.Encode(context.Background(), &pcm, dst))

	decoded, err := codec.Decode(context.Background(), dst, DecodeOptions{})
	require.NoError(t, err)
	// mp3 frames pad the edges, allow some slack
	assert.InDelta(t, float64(time.Second), float64(L16Mono24K.Duration(int64(len(decoded)))), float64(200*time.Millisecond))
}

func TestFFmpegCodec_DecodeMissingFile(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg is not installed")
	}
	_, err := NewFFmpegCodec("", L16Mono24K).Decode(context.Background(), filepath.Join(t.TempDir(), "nope.wav"), DecodeOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestFFmpegCodec_MissingBinary(t *testing.T) {
	codec := NewFFmpegCodec("/nonexistent/ffmpeg", L16Mono24K)
	err := codec.Encode(context.Background(), bytes.NewReader(nil), filepath.Join(t.TempDir(), "x.mp3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode")
}
