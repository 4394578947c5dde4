package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/cli/config"
	controller "github.com/secmon-lab/orgshift/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		adminCfg  config.Admin
		cfg       migrationConfigs
	)

	flags := joinFlags(
		serverCfg.Flags(),
		adminCfg.Flags(),
		cfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server with the admin migration trigger",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting orgshift server",
				slog.Any("server", serverCfg),
				slog.Any("admin", adminCfg),
			)

			uc, repo, err := cfg.build(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			server := controller.NewServer(ctx, serverCfg.Addr, uc,
				controller.WithAdminSecret(adminCfg.Secret()),
			)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// A synchronous run in flight holds its request open until it ends
			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Waiting for dispatched migration runs")
			if err := server.WaitRuns(shutdownCtx); err != nil {
				return goerr.Wrap(err, "shutdown timed out with migration runs in progress",
					goerr.V("timeout", serverCfg.ShutdownTimeout))
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
