package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/podcraft-ai/podcraft/internal/ai"
	"github.com/podcraft-ai/podcraft/internal/audio"
	"github.com/podcraft-ai/podcraft/internal/config"
	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/internal/pipeline"
	"github.com/podcraft-ai/podcraft/internal/research"
	"github.com/podcraft-ai/podcraft/internal/runs"
	"github.com/podcraft-ai/podcraft/internal/script"
	"github.com/podcraft-ai/podcraft/internal/storage"
	"github.com/podcraft-ai/podcraft/podcast"
)

// pcmFormat is the working format of every decoded clip
const pcmFormat = audio.L16Mono24K

// app holds the long-lived components shared by serve and generate
type app struct {
	runs      *runs.Store
	artifacts storage.FileStore
	pipeline  *pipeline.Pipeline
}

func (a *app) Close() error {
	return a.runs.Close()
}

func newArtifactStore(cfg *config.Config) (storage.FileStore, error) {
	if cfg.Storage.Backend == config.StorageS3 {
		s3cfg := cfg.Storage.S3
		client := storage.NewS3Client(storage.S3Options{
			Region:       s3cfg.Region,
			Endpoint:     s3cfg.Endpoint,
			AccessKey:    s3cfg.AccessKey,
			SecretKey:    s3cfg.SecretKey,
			UsePathStyle: s3cfg.UsePathStyle,
		})
		return storage.NewS3(client, s3cfg.Bucket, s3cfg.Prefix), nil
	}
	local, err := storage.NewLocal(cfg.Paths.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open output directory: %w", err)
	}
	return local, nil
}

// newApp builds the full production stack from the config
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	if err := cfg.RequireCredentials(); err != nil {
		return nil, err
	}

	artifacts, err := newArtifactStore(cfg)
	if err != nil {
		return nil, err
	}

	gemini, err := ai.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}
	openai := ai.NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.RewriteModel)
	httpClient := &http.Client{Timeout: content.DefaultHTTPTimeout}

	hosts := podcast.DefaultHosts()
	codec := audio.NewFFmpegCodec(cfg.Audio.FFmpegBinary, pcmFormat)

	deps := pipeline.Deps{
		Music:   ai.NewMusicClient(cfg.Music.Endpoint, cfg.Music.Token, nil),
		Writer:  script.NewAssembler(gemini, hosts, cfg.Podcast.Segments, logger),
		Reviser: script.NewReviser(openai, podcast.HostNames(hosts), logger),
		Speech:  audio.NewSynthesizer(openai, codec, pcmFormat, [2]string{hosts[0].Voice, hosts[1].Voice}, logger),
		Mixer:   audio.NewMixer(codec, pcmFormat, logger),
		Store:   artifacts,
	}
	if cfg.Research.Enabled {
		deps.Researcher = research.NewResearcher(
			research.NewWikipedia(cfg.Research.WikipediaEndpoint, httpClient),
			openai,
			research.NewNBARecap(cfg.Research.RecapURL, httpClient),
			research.NewArticleFetcher(httpClient),
			logger,
		)
	}

	runStore, err := runs.Open(cfg.Paths.RunsDB)
	if err != nil {
		return nil, err
	}
	deps.Recorder = runStore

	p := pipeline.New(deps, pipeline.Options{
		Hosts:       hosts,
		WorkDir:     cfg.Paths.WorkDir,
		KeepWorkDir: cfg.Podcast.KeepWorkDir,
	}, logger)

	return &app{runs: runStore, artifacts: artifacts, pipeline: p}, nil
}
