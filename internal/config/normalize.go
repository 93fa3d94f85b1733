package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCredentials()
	c.normalizePodcast()
	c.normalizeStorage()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = filepath.Join(c.Paths.DataDir, "work")
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = filepath.Join(c.Paths.DataDir, "episodes")
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.RunsDB) == "" {
		c.Paths.RunsDB = filepath.Join(c.Paths.DataDir, "runs.db")
	}
	if c.Paths.RunsDB, err = expandPath(c.Paths.RunsDB); err != nil {
		return fmt.Errorf("paths.runs_db: %w", err)
	}
	c.Paths.Bind = strings.TrimSpace(c.Paths.Bind)
	if c.Paths.Bind == "" {
		c.Paths.Bind = defaultBind
	}
	return nil
}

// environment wins over the file for secrets
func (c *Config) normalizeCredentials() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"OPENAI_API_KEY", &c.OpenAI.APIKey},
		{"GOOGLE_API_KEY", &c.Gemini.APIKey},
		{"MUSIC_API_TOKEN", &c.Music.Token},
		{"AWS_ACCESS_KEY_ID", &c.Storage.S3.AccessKey},
		{"AWS_SECRET_ACCESS_KEY", &c.Storage.S3.SecretKey},
	}
	for _, o := range overrides {
		if value, ok := os.LookupEnv(o.env); ok && strings.TrimSpace(value) != "" {
			*o.target = strings.TrimSpace(value)
		}
		*o.target = strings.TrimSpace(*o.target)
	}
}

func (c *Config) normalizePodcast() {
	defaults := Default()
	if c.Podcast.Segments == 0 {
		c.Podcast.Segments = defaults.Podcast.Segments
	}
	if c.Podcast.RunsLimit <= 0 {
		c.Podcast.RunsLimit = defaults.Podcast.RunsLimit
	}
	if strings.TrimSpace(c.OpenAI.RewriteModel) == "" {
		c.OpenAI.RewriteModel = defaults.OpenAI.RewriteModel
	}
	if strings.TrimSpace(c.Gemini.Model) == "" {
		c.Gemini.Model = defaults.Gemini.Model
	}
	if strings.TrimSpace(c.Music.Endpoint) == "" {
		c.Music.Endpoint = defaults.Music.Endpoint
	}
	if strings.TrimSpace(c.Research.WikipediaEndpoint) == "" {
		c.Research.WikipediaEndpoint = defaults.Research.WikipediaEndpoint
	}
	if strings.TrimSpace(c.Research.RecapURL) == "" {
		c.Research.RecapURL = defaults.Research.RecapURL
	}
	if strings.TrimSpace(c.Audio.FFmpegBinary) == "" {
		c.Audio.FFmpegBinary = defaultFFmpeg
	}
}

func (c *Config) normalizeStorage() {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageLocal
	}
	c.Storage.S3.Bucket = strings.TrimSpace(c.Storage.S3.Bucket)
	c.Storage.S3.Prefix = strings.Trim(strings.TrimSpace(c.Storage.S3.Prefix), "/")
	if strings.TrimSpace(c.Storage.S3.Region) == "" {
		c.Storage.S3.Region = defaultS3Region
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console", "text":
		c.Logging.Format = "text"
	case "json":
	default:
		c.Logging.Format = "text"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	if c.Logging.MaxSizeMB < 0 {
		c.Logging.MaxSizeMB = 0
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.MaxAgeDays < 0 {
		c.Logging.MaxAgeDays = 0
	}
	return nil
}
