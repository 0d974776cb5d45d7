package config

import (
	"log/slog"

	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Filter holds the selector values given on the command line
type Filter struct {
	Project      string
	Severity     string
	Platform     string
	Subscription string
}

// Flags returns CLI flags for Filter configuration
func (f *Filter) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Usage:       "Only count issues whose Project Names contain this value",
			Category:    "Filter",
			Value:       types.AllProjects,
			Destination: &f.Project,
		},
		&cli.StringFlag{
			Name:        "severity",
			Usage:       "Only count issues of this severity",
			Category:    "Filter",
			Value:       types.AllSeverities,
			Destination: &f.Severity,
		},
		&cli.StringFlag{
			Name:        "platform",
			Usage:       "Only count issues of this resource platform",
			Category:    "Filter",
			Value:       types.AllPlatforms,
			Destination: &f.Platform,
		},
		&cli.StringFlag{
			Name:        "subscription",
			Usage:       "Only count issues of this subscription",
			Category:    "Filter",
			Value:       types.AllSubscriptions,
			Destination: &f.Subscription,
		},
	}
}

// Configure returns the normalized filter
func (f *Filter) Configure() model.Filter {
	return model.Filter{
		Project:      f.Project,
		Severity:     f.Severity,
		Platform:     f.Platform,
		Subscription: f.Subscription,
	}.Normalize()
}

// LogValue returns structured log value
func (f Filter) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.Project),
		slog.String("severity", f.Severity),
		slog.String("platform", f.Platform),
		slog.String("subscription", f.Subscription),
	)
}
