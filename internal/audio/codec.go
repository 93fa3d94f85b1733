package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

//go:generate moq -out mocks/codec.go -pkg mocks -skip-ensure -fmt goimports . Codec

// DecodeOptions tunes a decode run
type DecodeOptions struct {
	// Loudnorm applies EBU R128 loudness normalization while decoding
	Loudnorm bool
}

// Codec converts between encoded audio files and raw PCM
type Codec interface {
	Decode(ctx context.Context, src string, opts DecodeOptions) ([]byte, error)
	Encode(ctx context.Context, pcm io.Reader, dst string) error
}

// FFmpegCodec implements Codec using the ffmpeg binary
type FFmpegCodec struct {
	binary string
	format Format
}

// NewFFmpegCodec creates a codec producing and consuming PCM in the given format
func NewFFmpegCodec(binary string, format Format) *FFmpegCodec {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &FFmpegCodec{binary: binary, format: format}
}

// Format returns the PCM layout of decoded audio
func (c *FFmpegCodec) Format() Format {
	return c.format
}

// Decode reads any audio file ffmpeg understands and returns raw PCM
func (c *FFmpegCodec) Decode(ctx context.Context, src string, opts DecodeOptions) ([]byte, error) {
	args := []string{"-hide_banner", "-loglevel", "error", "-i", src}
	if opts.Loudnorm {
		args = append(args, "-af", "loudnorm")
	}
	args = append(args, c.pcmArgs()...)
	args = append(args, "pipe:1")

	var stdout, stderr bytes.Buffer
	// #nosec G204 -- arguments are constructed internally, src is a run directory path
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w: %s", src, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// Encode compresses raw PCM from r into an mp3 file at dst
func (c *FFmpegCodec) Encode(ctx context.Context, pcm io.Reader, dst string) error {
	args := []string{"-hide_banner", "-loglevel", "error", "-y"}
	args = append(args, c.pcmArgs()...)
	args = append(args, "-i", "pipe:0", "-codec:a", "libmp3lame", "-q:a", "2", dst)

	var stderr bytes.Buffer
	// #nosec G204 -- arguments are constructed internally, dst is a run directory path
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdin = pcm
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to encode %s: %w: %s", dst, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func (c *FFmpegCodec) pcmArgs() []string {
	return []string{
		"-f", "s16le",
		"-ac", strconv.Itoa(c.format.Channels()),
		"-ar", strconv.Itoa(c.format.SampleRate()),
	}
}
