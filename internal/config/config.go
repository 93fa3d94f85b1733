package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and bind address configuration
type Paths struct {
	DataDir   string `toml:"data_dir"`
	WorkDir   string `toml:"work_dir"`   // run-scoped hand-off directories, defaults to <data_dir>/work
	OutputDir string `toml:"output_dir"` // local episode store, defaults to <data_dir>/episodes
	RunsDB    string `toml:"runs_db"`    // defaults to <data_dir>/runs.db
	Bind      string `toml:"bind"`
}

// Podcast contains episode generation settings
type Podcast struct {
	Segments    int  `toml:"segments"`
	KeepWorkDir bool `toml:"keep_work_dir"`
	RunsLimit   int  `toml:"runs_limit"`
}

// OpenAI configures rewrite, speech synthesis and embeddings
type OpenAI struct {
	APIKey       string `toml:"api_key"`
	RewriteModel string `toml:"rewrite_model"`
}

// Gemini configures the streaming dialogue generator
type Gemini struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// Music configures intro music generation
type Music struct {
	Endpoint string `toml:"endpoint"`
	Token    string `toml:"token"`
}

// Research configures background lookups for the script prompt
type Research struct {
	Enabled           bool   `toml:"enabled"`
	WikipediaEndpoint string `toml:"wikipedia_endpoint"`
	RecapURL          string `toml:"recap_url"`
}

// Audio configures the external codec
type Audio struct {
	FFmpegBinary string `toml:"ffmpeg_binary"`
}

// S3 contains settings for the object store backend
type S3 struct {
	Bucket       string `toml:"bucket"`
	Prefix       string `toml:"prefix"`
	Region       string `toml:"region"`
	Endpoint     string `toml:"endpoint"`
	AccessKey    string `toml:"access_key"`
	SecretKey    string `toml:"secret_key"`
	UsePathStyle bool   `toml:"use_path_style"`
}

// Storage selects where finished episodes are published
type Storage struct {
	Backend string `toml:"backend"`
	S3      S3     `toml:"s3"`
}

// Logging configures the slog handler and optional rotated log file
type Logging struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"` // text or json
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Config is the full podcraft configuration
type Config struct {
	Paths    Paths    `toml:"paths"`
	Podcast  Podcast  `toml:"podcast"`
	OpenAI   OpenAI   `toml:"openai"`
	Gemini   Gemini   `toml:"gemini"`
	Music    Music    `toml:"music"`
	Research Research `toml:"research"`
	Audio    Audio    `toml:"audio"`
	Storage  Storage  `toml:"storage"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/podcraft/config.toml")
}

// Load locates, parses, normalizes and validates a configuration file.
// It returns the config, the resolved path and whether that file exists.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath) // #nosec G304 -- config path comes from the operator
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("podcraft.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data, work and local output directories
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, c.Paths.WorkDir, filepath.Dir(c.Paths.RunsDB)}
	if c.Storage.Backend == StorageLocal {
		dirs = append(dirs, c.Paths.OutputDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// RequireCredentials checks the API keys needed to produce an episode
func (c *Config) RequireCredentials() error {
	var missing []string
	if c.OpenAI.APIKey == "" {
		missing = append(missing, "openai.api_key (OPENAI_API_KEY)")
	}
	if c.Gemini.APIKey == "" {
		missing = append(missing, "gemini.api_key (GOOGLE_API_KEY)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}

// LockPath returns the file guarding the data directory against concurrent servers
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "podcraft.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
