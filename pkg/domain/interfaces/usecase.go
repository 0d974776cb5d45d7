package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Dashboard

import (
	"context"

	"github.com/secmon-lab/issuereport/pkg/domain/model"
)

// Dashboard renders the dashboard view model for a filter selection
type Dashboard interface {
	// Selectors returns the initial option lists of every selector
	Selectors(ctx context.Context) model.Selectors

	// Options returns the Subscription and Severity options reachable under
	// a Project and Resource Platform selection
	Options(ctx context.Context, project, platform string) *model.Options

	// Render builds every chart for the filter selection
	Render(ctx context.Context, filter model.Filter) (*model.View, error)
}

// Digest builds and delivers a summary of the currently open issues
type Digest interface {
	// Verify confirms the Slack credentials before any delivery
	Verify(ctx context.Context) error

	// Post sends the digest to the configured Slack channel
	Post(ctx context.Context) error
}
