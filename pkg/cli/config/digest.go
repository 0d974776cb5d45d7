package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v3"
)

// cronParser accepts standard 5-field cron expressions and descriptors
// such as @daily
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Digest holds the Slack digest schedule and content options
type Digest struct {
	Schedule    string
	TopProjects int
	Timeout     time.Duration
}

// Flags returns CLI flags for Digest configuration
func (d *Digest) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "schedule",
			Usage:       `Cron expression for posting the digest, e.g. "0 9 * * 1-5"`,
			Category:    "Digest",
			Sources:     cli.EnvVars("ISSUEREPORT_SCHEDULE"),
			Destination: &d.Schedule,
		},
		&cli.IntFlag{
			Name:        "top-projects",
			Usage:       "Number of projects listed in the digest",
			Category:    "Digest",
			Value:       5,
			Sources:     cli.EnvVars("ISSUEREPORT_TOP_PROJECTS"),
			Destination: &d.TopProjects,
		},
		&cli.DurationFlag{
			Name:        "digest-timeout",
			Usage:       "Timeout of one digest post",
			Category:    "Digest",
			Value:       time.Minute,
			Sources:     cli.EnvVars("ISSUEREPORT_DIGEST_TIMEOUT"),
			Destination: &d.Timeout,
		},
	}
}

// IsScheduled returns true if a schedule is configured
func (d *Digest) IsScheduled() bool {
	return d.Schedule != ""
}

// ParseSchedule validates the cron expression
func (d *Digest) ParseSchedule() (cron.Schedule, error) {
	sched, err := cronParser.Parse(d.Schedule)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid digest schedule", goerr.V("schedule", d.Schedule))
	}
	return sched, nil
}

// NewScheduler creates a cron scheduler evaluating the schedule in loc
func (d *Digest) NewScheduler(loc *time.Location) *cron.Cron {
	return cron.New(cron.WithParser(cronParser), cron.WithLocation(loc))
}

// LogValue returns structured log value
func (d Digest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("schedule", d.Schedule),
		slog.Int("top_projects", d.TopProjects),
		slog.Duration("timeout", d.Timeout),
	)
}
