package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/podcraft-ai/podcraft/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the podcast generation API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if bind == "" {
				bind = cfg.Paths.Bind
			}
			logger := ctx.logger

			lock := flock.New(cfg.LockPath())
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !ok {
				return fmt.Errorf("another podcraft server is already using %s", cfg.Paths.DataDir)
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					logger.Warn("failed to release data directory lock", "error", err)
				}
			}()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application, err := newApp(runCtx, cfg, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			gin.SetMode(gin.ReleaseMode)
			api := server.New(runCtx, application.pipeline, application.runs, application.artifacts, cfg.Podcast.RunsLimit, logger)
			srv := &http.Server{
				Addr:              bind,
				Handler:           api.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server starting", "addr", bind, "storage", cfg.Storage.Backend)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
			case <-runCtx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("server shutdown failed", "error", err)
			}
			api.Wait()
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address, overrides paths.bind")
	return cmd
}
