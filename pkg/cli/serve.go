package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/cli/config"
	controller "github.com/secmon-lab/issuereport/pkg/controller/http"
	"github.com/secmon-lab/issuereport/pkg/usecase"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		inputCfg     config.Input
		dashboardCfg config.Dashboard
		slackCfg     config.Slack
		digestCfg    config.Digest
	)

	flags := joinFlags(
		serverCfg.Flags(),
		inputCfg.Flags(),
		dashboardCfg.Flags(),
		slackCfg.Flags(),
		digestCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the dashboard HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting issuereport server",
				slog.Any("server", serverCfg),
				slog.Any("input", inputCfg),
				slog.Any("dashboard", dashboardCfg),
				slog.Any("slack", slackCfg),
				slog.Any("digest", digestCfg),
			)

			dashboardConfig, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			session, err := inputCfg.Configure(ctx)
			if err != nil {
				return err
			}
			logger.Info("Session created",
				"session_id", session.ID,
				"source", session.Source,
				"rows", session.Base().Len(),
			)

			var digestUC *usecase.Digest
			if digestCfg.IsScheduled() {
				if !slackCfg.IsConfigured() {
					return goerr.New("digest schedule requires --slack-oauth-token and --slack-channel")
				}
				if _, err := digestCfg.ParseSchedule(); err != nil {
					return err
				}
				digestUC = usecase.NewDigest(session, slackCfg.Configure(),
					usecase.NewDigestConfig(slackCfg.ChannelID,
						usecase.WithTopProjects(digestCfg.TopProjects)))
				if err := digestUC.Verify(ctx); err != nil {
					return err
				}
			}

			dashboardUC := usecase.NewDashboard(session, dashboardConfig)
			server, err := controller.NewServer(ctx, serverCfg.Addr, dashboardUC)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)

			eg.Go(func() error {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
				return nil
			})

			if digestUC != nil {
				eg.Go(func() error {
					return runScheduler(ctx, &digestCfg, session.Location, digestUC.Post)
				})
			}

			eg.Go(func() error {
				<-ctx.Done()
				logger.Info("Shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
