package audio

import (
	"encoding/binary"
	"io"
	"time"
)

// Format is a raw signed 16-bit little-endian PCM layout
type Format int

const (
	// L16Mono24K is s16le, 24 kHz, one channel
	L16Mono24K Format = iota
	// L16Mono44K is s16le, 44.1 kHz, one channel
	L16Mono44K
)

// SampleRate returns the sample rate in Hz
func (f Format) SampleRate() int {
	switch f {
	case L16Mono44K:
		return 44100
	default:
		return 24000
	}
}

// Channels returns the number of channels
func (f Format) Channels() int {
	return 1
}

// Depth returns the bit depth
func (f Format) Depth() int {
	return 16
}

// FrameSize returns the number of bytes of one sample across all channels
func (f Format) FrameSize() int {
	return f.Channels() * f.Depth() / 8
}

// Samples returns the number of samples in the given number of bytes
func (f Format) Samples(bytes int64) int64 {
	return bytes / int64(f.FrameSize())
}

// SamplesInDuration returns the number of samples in the given duration
func (f Format) SamplesInDuration(d time.Duration) int64 {
	return int64(time.Duration(f.SampleRate()) * d / time.Second)
}

// BytesInDuration returns the number of bytes in the given duration
func (f Format) BytesInDuration(d time.Duration) int64 {
	return f.SamplesInDuration(d) * int64(f.FrameSize())
}

// Duration returns the duration of the given number of bytes
func (f Format) Duration(bytes int64) time.Duration {
	return time.Duration(f.Samples(bytes)) * time.Second / time.Duration(f.SampleRate())
}

// String returns the ffmpeg-style description of the format
func (f Format) String() string {
	if f == L16Mono44K {
		return "s16le 44100Hz mono"
	}
	return "s16le 24000Hz mono"
}

var emptyBytes [32000]byte

// WriteSilence writes d worth of zero samples to w
func (f Format) WriteSilence(w io.Writer, d time.Duration) (int64, error) {
	remaining := f.BytesInDuration(d)
	var written int64
	for remaining > 0 {
		chunk := emptyBytes[:min(remaining, int64(len(emptyBytes)))]
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, err
		}
		remaining -= int64(n)
	}
	return written, nil
}

// Fade applies a linear fade-in and fade-out to data in place.
// Each fade is clamped to half of the clip so the two never overlap.
func (f Format) Fade(data []byte, fadeIn, fadeOut time.Duration) {
	frame := f.FrameSize()
	frames := len(data) / frame
	half := int64(frames / 2)
	in := int(min(f.SamplesInDuration(fadeIn), half))
	out := int(min(f.SamplesInDuration(fadeOut), half))

	for i := range frames {
		gain := 1.0
		if i < in {
			gain = float64(i) / float64(in)
		}
		if tail := frames - 1 - i; tail < out {
			gain = min(gain, float64(tail)/float64(out))
		}
		if gain >= 1 {
			continue
		}
		for c := range f.Channels() {
			off := i*frame + c*2
			sample := int16(binary.LittleEndian.Uint16(data[off:]))
			binary.LittleEndian.PutUint16(data[off:], uint16(int16(float64(sample)*gain)))
		}
	}
}
