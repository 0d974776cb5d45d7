package cli_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issuereport/pkg/cli"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
)

func TestRenderSummary(t *testing.T) {
	d := &model.Digest{
		GeneratedAt: time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC),
		Source:      "issues.csv",
		Filter:      model.Filter{Platform: "AWS"}.Normalize(),
		Total:       5,
		Open:        3,
		WeekChange:  2,
		ByStatus: []model.LabelCount{
			{Label: "OPEN", Count: 2},
			{Label: "IN_PROGRESS", Count: 1},
			{Label: "RESOLVED", Count: 2},
		},
		OpenBySeverity: []model.LabelCount{
			{Label: "CRITICAL", Count: 0},
			{Label: "HIGH", Count: 3},
		},
		TopProjects: []model.LabelCount{{Label: "Alpha", Count: 3}},
	}

	var buf bytes.Buffer
	gt.NoError(t, cli.RenderSummary(&buf, d)).Required()

	out := buf.String()
	gt.S(t, out).Contains("issues.csv")
	gt.S(t, out).Contains("platform=AWS")
	gt.S(t, out).Contains("Issues by status")
	gt.S(t, out).Contains("IN_PROGRESS")
	gt.S(t, out).Contains("Open issues by severity")
	gt.S(t, out).Contains("Top projects")
	gt.S(t, out).Contains("Alpha")
	gt.S(t, out).Contains("+2")
}

func TestRenderSummaryWithoutProjects(t *testing.T) {
	d := &model.Digest{Source: "empty.csv", Filter: model.Filter{}.Normalize()}

	var buf bytes.Buffer
	gt.NoError(t, cli.RenderSummary(&buf, d)).Required()
	gt.S(t, buf.String()).Contains("(none)")
	gt.S(t, buf.String()).NotContains("Top projects")
	gt.S(t, buf.String()).NotContains("Filter:")
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("summary of an export", func(t *testing.T) {
		err := cli.Run(ctx, []string{"issuereport", "--log-format", "json", "summary", "--input", "testdata/issues.csv"})
		gt.NoError(t, err)
	})

	t.Run("missing input file fails", func(t *testing.T) {
		err := cli.Run(ctx, []string{"issuereport", "--log-format", "json", "summary", "--input", "testdata/missing.csv"})
		gt.Error(t, err)
	})

	t.Run("notify requires Slack", func(t *testing.T) {
		t.Setenv("ISSUEREPORT_SLACK_OAUTH_TOKEN", "")
		t.Setenv("ISSUEREPORT_SLACK_CHANNEL", "")
		err := cli.Run(ctx, []string{"issuereport", "--log-format", "json", "notify", "--input", "testdata/issues.csv"})
		gt.Error(t, err)
	})

	t.Run("invalid log level fails", func(t *testing.T) {
		err := cli.Run(ctx, []string{"issuereport", "--log-level", "loud", "summary", "--input", "testdata/issues.csv"})
		gt.Error(t, err)
	})
}
