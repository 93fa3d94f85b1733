package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/podcraft-ai/podcraft/internal/audio"
	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/internal/pipeline"
	"github.com/podcraft-ai/podcraft/internal/storage"
	"github.com/podcraft-ai/podcraft/podcast"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var (
		topic      string
		contextURL string
		play       bool
		keep       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one episode and wait for it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if keep {
				cfg.Podcast.KeepWorkDir = true
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application, err := newApp(runCtx, cfg, ctx.logger)
			if err != nil {
				return err
			}
			defer application.Close()

			topic = podcast.NormalizeTopic(topic)
			run, err := application.runs.Create(runCtx, topic)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generating %q (run %s)\n", topic, run.ID)

			res, err := application.pipeline.Run(runCtx, pipeline.Request{RunID: run.ID, Topic: topic, ContextURL: contextURL})
			if err != nil {
				return err
			}

			tp := content.NewTextProcessor()
			fmt.Fprintf(cmd.OutOrStdout(), "Episode ready: %s (estimated %.0f seconds of speech)\n",
				tp.TruncateString(res.Artifact, content.DisplayTruncateLength), res.Estimate.Seconds())
			if res.Dropped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Warning: %d unmatched turns were dropped\n", res.Dropped)
			}

			if !play {
				return nil
			}
			return playArtifact(runCtx, application.artifacts, res.Artifact, audio.NewPlayer(nil))
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Episode topic, empty uses a generic podcast")
	cmd.Flags().StringVar(&contextURL, "context-url", "", "Article to add to the background research")
	cmd.Flags().BoolVar(&play, "play", false, "Play the episode locally when it is ready")
	cmd.Flags().BoolVar(&keep, "keep", false, "Keep the run directory with the intermediate files")
	return cmd
}

type player interface {
	Play(filename string) error
}

// playArtifact plays a published episode, remote stores are copied to a temp file first
func playArtifact(ctx context.Context, store storage.FileStore, name string, p player) error {
	if local, ok := store.(*storage.Local); ok {
		return p.Play(filepath.Join(local.Root(), name))
	}

	r, err := store.Read(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to fetch episode: %w", err)
	}
	defer r.Close()

	tmp, err := os.CreateTemp("", "podcraft-*.mp3")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to download episode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	return p.Play(tmp.Name())
}
