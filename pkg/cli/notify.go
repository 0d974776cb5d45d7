package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/cli/config"
	"github.com/secmon-lab/issuereport/pkg/usecase"
	"github.com/secmon-lab/issuereport/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdNotify() *cli.Command {
	var (
		inputCfg  config.Input
		filterCfg config.Filter
		slackCfg  config.Slack
		digestCfg config.Digest
	)

	flags := joinFlags(
		inputCfg.Flags(),
		filterCfg.Flags(),
		slackCfg.Flags(),
		digestCfg.Flags(),
	)

	return &cli.Command{
		Name:  "notify",
		Usage: "Post an open issue digest to Slack, once or on a schedule",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("Starting digest",
				slog.Any("input", inputCfg),
				slog.Any("filter", filterCfg),
				slog.Any("slack", slackCfg),
				slog.Any("digest", digestCfg),
			)

			if !slackCfg.IsConfigured() {
				return goerr.New("Slack configuration is required. Please provide ISSUEREPORT_SLACK_OAUTH_TOKEN and ISSUEREPORT_SLACK_CHANNEL")
			}

			session, err := inputCfg.Configure(ctx)
			if err != nil {
				return err
			}

			digestUC := usecase.NewDigest(session, slackCfg.Configure(),
				usecase.NewDigestConfig(slackCfg.ChannelID,
					usecase.WithDigestFilter(filterCfg.Configure()),
					usecase.WithTopProjects(digestCfg.TopProjects),
				))
			if err := digestUC.Verify(ctx); err != nil {
				return err
			}

			if !digestCfg.IsScheduled() {
				postCtx := ctx
				if digestCfg.Timeout > 0 {
					var cancel context.CancelFunc
					postCtx, cancel = context.WithTimeout(ctx, digestCfg.Timeout)
					defer cancel()
				}
				return digestUC.Post(postCtx)
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runScheduler(ctx, &digestCfg, session.Location, digestUC.Post)
		},
	}
}

// runScheduler posts the digest on the configured cron schedule until ctx
// is cancelled
func runScheduler(ctx context.Context, cfg *config.Digest, loc *time.Location, post func(ctx context.Context) error) error {
	logger := ctxlog.From(ctx)

	if _, err := cfg.ParseSchedule(); err != nil {
		return err
	}

	scheduler := cfg.NewScheduler(loc)
	id, err := scheduler.AddFunc(cfg.Schedule, async.Job(ctx, "digest", cfg.Timeout, post))
	if err != nil {
		return goerr.Wrap(err, "failed to register digest job", goerr.V("schedule", cfg.Schedule))
	}

	scheduler.Start()
	logger.Info("Digest scheduled",
		"schedule", cfg.Schedule,
		"next", scheduler.Entry(id).Next,
	)

	<-ctx.Done()
	<-scheduler.Stop().Done()
	logger.Info("Digest scheduler stopped")
	return nil
}
