package config

import (
	"github.com/podcraft-ai/podcraft/internal/ai"
	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/internal/research"
)

const (
	defaultDataDir   = "~/.local/share/podcraft"
	defaultBind      = "127.0.0.1:8000"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultFFmpeg    = "ffmpeg"
	defaultS3Region  = "us-east-1"
	defaultRunsLimit = 20

	// StorageLocal keeps episodes under paths.output_dir
	StorageLocal = "local"
	// StorageS3 keeps episodes in an S3 bucket
	StorageS3 = "s3"
)

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			Bind:    defaultBind,
		},
		Podcast: Podcast{
			Segments:  content.DefaultSegments,
			RunsLimit: defaultRunsLimit,
		},
		OpenAI: OpenAI{
			RewriteModel: ai.DefaultRewriteModel,
		},
		Gemini: Gemini{
			Model: ai.DefaultChatModel,
		},
		Music: Music{
			Endpoint: ai.DefaultMusicEndpoint,
		},
		Research: Research{
			Enabled:           true,
			WikipediaEndpoint: research.DefaultWikipediaEndpoint,
			RecapURL:          research.DefaultRecapURL,
		},
		Audio: Audio{
			FFmpegBinary: defaultFFmpeg,
		},
		Storage: Storage{
			Backend: StorageLocal,
			S3: S3{
				Region: defaultS3Region,
			},
		},
		Logging: Logging{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  100,
			MaxBackups: 10,
			MaxAgeDays: 30,
		},
	}
}
