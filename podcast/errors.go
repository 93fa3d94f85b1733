package podcast

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUpstream marks failures of the generation, rewrite, synthesis or music services
	ErrUpstream = errors.New("upstream service error")
	// ErrArtifactIO marks hand-off files that could not be read or written
	ErrArtifactIO = errors.New("artifact io error")
	// ErrMalformedInput marks text without recognizable speaker markers, never fatal
	ErrMalformedInput = errors.New("malformed input")
)

// Wrap tags err with the marker and the operation that failed
func Wrap(marker error, op string, err error) error {
	if marker == nil {
		marker = ErrUpstream
	}
	op = strings.TrimSpace(op)
	switch {
	case err == nil && op == "":
		return marker
	case err == nil:
		return fmt.Errorf("%w: %s", marker, op)
	case op == "":
		return fmt.Errorf("%w: %w", marker, err)
	default:
		return fmt.Errorf("%w: %s: %w", marker, op, err)
	}
}

// Kind returns a short label for the error class, used in run records and metrics
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrArtifactIO):
		return "artifact_io"
	case errors.Is(err, ErrMalformedInput):
		return "malformed_input"
	default:
		return "internal"
	}
}
