// Package storage keeps finished episodes where the web surface can serve them from.
// Local disk is the default backend, S3 or any S3-compatible object store is the alternative.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned for artifact names that are not a single plain file name
var ErrInvalidName = errors.New("invalid artifact name")

// FileStore is a minimal interface for file-oriented storage.
//
// Paths are forward-slash separated and relative to the store root.
// Implementations must be safe for concurrent use.
type FileStore interface {
	// Read opens the named file for reading. Missing files return an error wrapping os.ErrNotExist.
	Read(ctx context.Context, path string) (io.ReadCloser, error)
	// Write opens the named file for writing, the caller must close it to flush data.
	Write(ctx context.Context, path string) (io.WriteCloser, error)
	// Delete removes the named file, missing files are not an error.
	Delete(ctx context.Context, path string) error
	// Exists reports whether the named file exists.
	Exists(ctx context.Context, path string) (bool, error)
}

// ValidateName accepts only bare file names: no separators and not a dot segment.
// Dots inside a name are fine, topics like "AI..." produce "AI....mp3".
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Publish copies a local file into the store under its base name and returns that name
func Publish(ctx context.Context, store FileStore, localPath string) (string, error) {
	name := filepath.Base(localPath)
	if err := ValidateName(name); err != nil {
		return "", err
	}

	src, err := os.Open(localPath) // #nosec G304 -- path is produced by the pipeline inside its run directory
	if err != nil {
		return "", fmt.Errorf("failed to open artifact: %w", err)
	}
	defer src.Close()

	dst, err := store.Write(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to open artifact destination: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("failed to copy artifact: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to finish artifact upload: %w", err)
	}
	return name, nil
}
