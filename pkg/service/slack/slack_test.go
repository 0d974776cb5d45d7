package slack_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	slackSvc "github.com/secmon-lab/issuereport/pkg/service/slack"
	"github.com/slack-go/slack"
)

func newTestDigest() *model.Digest {
	return &model.Digest{
		GeneratedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Source:      "issues.csv",
		Filter:      model.Filter{}.Normalize(),
		Total:       10,
		Open:        4,
		WeekChange:  -2,
		OpenBySeverity: []model.LabelCount{
			{Label: "CRITICAL", Count: 1},
			{Label: "HIGH", Count: 3},
			{Label: "MEDIUM", Count: 0},
		},
		TopProjects: []model.LabelCount{
			{Label: "Alpha", Count: 3},
			{Label: "Beta", Count: 1},
		},
	}
}

func TestRenderDigestText(t *testing.T) {
	text, err := slackSvc.RenderDigestText(newTestDigest())
	gt.NoError(t, err).Required()

	gt.S(t, text).Contains("Issue digest for issues.csv (2024-03-01)")
	gt.S(t, text).Contains("Open issues: 4 of 10 (-2 in 7 days)")
	gt.S(t, text).Contains("- HIGH: 3")
	gt.S(t, text).Contains("- Alpha: 3")
	gt.S(t, text).NotContains("MEDIUM")
	gt.S(t, text).NotContains("Filter:")
}

func TestRenderDigestTextWithFilter(t *testing.T) {
	d := newTestDigest()
	d.Filter = model.Filter{Project: "Alpha", Severity: "HIGH"}.Normalize()

	text, err := slackSvc.RenderDigestText(d)
	gt.NoError(t, err).Required()
	gt.S(t, text).Contains("Filter: project=Alpha, severity=HIGH")
}

func TestBuildDigestBlocks(t *testing.T) {
	blocks := slackSvc.BuildDigestBlocks(newTestDigest())
	gt.A(t, blocks).Length(6)
	gt.Equal(t, blocks[0].BlockType(), slack.MBTHeader)
	gt.Equal(t, blocks[2].BlockType(), slack.MBTSection)
	gt.Equal(t, blocks[3].BlockType(), slack.MBTDivider)

	t.Run("skips empty sections", func(t *testing.T) {
		d := newTestDigest()
		d.OpenBySeverity = nil
		d.TopProjects = nil
		gt.A(t, slackSvc.BuildDigestBlocks(d)).Length(3)
	})
}

func TestFormatWeekChange(t *testing.T) {
	testCases := []struct {
		name     string
		change   int
		expected string
	}{
		{"increase", 3, "+3"},
		{"decrease", -2, "-2"},
		{"no change", 0, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, slackSvc.FormatWeekChange(tc.change), tc.expected)
		})
	}
}

func TestGetSeverityEmoji(t *testing.T) {
	gt.Equal(t, slackSvc.GetSeverityEmoji("CRITICAL"), "🚨")
	gt.Equal(t, slackSvc.GetSeverityEmoji("SEVERE"), "❓")
}

func TestServicePostMessage(t *testing.T) {
	var gotChannel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		gotChannel = r.FormValue("channel")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000100"}`))
	}))
	defer srv.Close()

	svc := slackSvc.New("xoxb-test", slack.OptionAPIURL(srv.URL+"/"))
	channel, ts, err := svc.PostMessage(context.Background(), "C123", slack.MsgOptionText("hello", false))
	gt.NoError(t, err).Required()
	gt.Equal(t, channel, "C123")
	gt.Equal(t, ts, "1700000000.000100")
	gt.Equal(t, gotChannel, "C123")
}

func TestServicePostMessageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer srv.Close()

	svc := slackSvc.New("xoxb-test", slack.OptionAPIURL(srv.URL+"/"))
	_, _, err := svc.PostMessage(context.Background(), "C404", slack.MsgOptionText("hello", false))
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to post message to Slack")
}
