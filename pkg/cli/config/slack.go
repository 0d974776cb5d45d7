package config

import (
	"log/slog"

	"github.com/secmon-lab/issuereport/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/issuereport/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("ISSUEREPORT_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID the digest is posted to",
			Category:    "Slack",
			Sources:     cli.EnvVars("ISSUEREPORT_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// Configure creates a Slack client, or returns nil if no token is set
func (s *Slack) Configure() interfaces.SlackClient {
	if !s.IsConfigured() {
		return nil
	}
	return slackSvc.New(s.OAuthToken)
}

// IsConfigured checks if Slack is configured for posting digests
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel_id", s.ChannelID),
	)
}
