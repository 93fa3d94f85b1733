package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. API keys are checked separately by RequireCredentials.
func (c *Config) Validate() error {
	if err := c.validatePodcast(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePodcast() error {
	if c.Podcast.Segments < 1 {
		return fmt.Errorf("podcast.segments must be at least 1, got %d", c.Podcast.Segments)
	}
	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case StorageLocal:
		return nil
	case StorageS3:
		if c.Storage.S3.Bucket == "" {
			return errors.New("storage.s3.bucket is required when storage.backend is s3")
		}
		return nil
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", StorageLocal, StorageS3, c.Storage.Backend)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
}
