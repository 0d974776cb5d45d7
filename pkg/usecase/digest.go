package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/domain/interfaces"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
	slackSvc "github.com/secmon-lab/issuereport/pkg/service/slack"
	"github.com/slack-go/slack"
)

// DigestConfig holds configuration for Digest use case
type DigestConfig struct {
	channelID   string
	filter      model.Filter
	topProjects int
	now         func() time.Time
}

// DigestOption is a functional option for configuring Digest
type DigestOption func(*DigestConfig)

// WithDigestFilter restricts the digest to a filter selection
func WithDigestFilter(f model.Filter) DigestOption {
	return func(c *DigestConfig) {
		c.filter = f
	}
}

// WithTopProjects sets how many projects are listed in the digest
func WithTopProjects(n int) DigestOption {
	return func(c *DigestConfig) {
		c.topProjects = n
	}
}

// WithClock replaces the clock used to pick the reference day
func WithClock(now func() time.Time) DigestOption {
	return func(c *DigestConfig) {
		c.now = now
	}
}

// NewDigestConfig creates a new DigestConfig with default values and optional settings
func NewDigestConfig(channelID string, opts ...DigestOption) *DigestConfig {
	config := &DigestConfig{
		channelID:   channelID,
		topProjects: 5,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Digest builds open-issue summaries and posts them to Slack
type Digest struct {
	session     *model.Session
	slackClient interfaces.SlackClient
	config      *DigestConfig
}

var _ interfaces.Digest = (*Digest)(nil)

// NewDigest creates a new Digest instance. slackClient may be nil when the
// digest is only built, never posted.
func NewDigest(session *model.Session, slackClient interfaces.SlackClient, config *DigestConfig) *Digest {
	if config == nil {
		config = NewDigestConfig("")
	}
	return &Digest{
		session:     session,
		slackClient: slackClient,
		config:      config,
	}
}

// Build computes the digest for the reference day
func (u *Digest) Build(ctx context.Context) *model.Digest {
	loc := u.session.Location
	filter := u.config.filter.Normalize()
	view := filter.Apply(u.session.Base())

	now := u.config.now()
	today := model.DayOf(now, loc)
	weekAgo := today.AddDate(0, 0, -7)
	isOpen := func(issue *model.Issue) bool { return issue.IsOpenAt(today, loc) }

	open := view.Where(isOpen)
	openWeekAgo := view.Count(func(issue *model.Issue) bool { return issue.IsOpenAt(weekAgo, loc) })

	projects := u.session.Catalogs().Projects
	if filter.HasProject() {
		projects = []string{filter.Project}
	}

	return &model.Digest{
		GeneratedAt:    now,
		Source:         u.session.Source,
		Filter:         filter,
		Total:          view.Len(),
		Open:           open.Len(),
		WeekChange:     open.Len() - openWeekAgo,
		ByStatus:       CountByStatus(view),
		OpenBySeverity: severityCounts(open),
		TopProjects:    topCounts(CountProjects(open, projects), u.config.topProjects),
	}
}

func (u *Digest) checkConfigured() error {
	if u.slackClient == nil {
		return goerr.New("slack client is not configured")
	}
	if u.config.channelID == "" {
		return goerr.New("slack channel is not configured")
	}
	return nil
}

// Verify checks that the Slack token is accepted before any digest is
// scheduled or posted
func (u *Digest) Verify(ctx context.Context) error {
	if err := u.checkConfigured(); err != nil {
		return err
	}

	resp, err := u.slackClient.AuthTestContext(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to verify Slack token")
	}

	ctxlog.From(ctx).Info("Slack token verified",
		"team", resp.Team,
		"user_id", resp.UserID,
		"channel", u.config.channelID,
	)
	return nil
}

// Post builds the digest and sends it to the configured channel
func (u *Digest) Post(ctx context.Context) error {
	if err := u.checkConfigured(); err != nil {
		return err
	}

	digest := u.Build(ctx)
	text, err := slackSvc.RenderDigestText(digest)
	if err != nil {
		return goerr.Wrap(err, "failed to render digest text")
	}

	_, ts, err := u.slackClient.PostMessage(ctx, u.config.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(slackSvc.BuildDigestBlocks(digest)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post digest",
			goerr.V("channel", u.config.channelID))
	}

	ctxlog.From(ctx).Info("Digest posted",
		"channel", u.config.channelID,
		"ts", ts,
		"open", digest.Open,
		"week_change", digest.WeekChange,
	)
	return nil
}

// severityCounts counts issues per severity in the fixed severity order,
// followed by any other severity value sorted by name
func severityCounts(t *model.Table) []model.LabelCount {
	var result []model.LabelCount
	counted := make(map[string]bool)
	for _, sev := range types.Severities {
		n := t.Count(func(issue *model.Issue) bool { return issue.Severity == sev })
		result = append(result, model.LabelCount{Label: sev.String(), Count: n})
		counted[sev.String()] = true
	}

	var others []model.LabelCount
	for _, c := range CountByCategory(t, types.ColumnSeverity) {
		if !counted[c.Label] {
			others = append(others, c)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].Label < others[j].Label })
	return append(result, others...)
}

// topCounts returns the n largest non-zero counts
func topCounts(counts []model.LabelCount, n int) []model.LabelCount {
	var result []model.LabelCount
	for _, c := range counts {
		if c.Count > 0 {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Label < result[j].Label
	})
	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}
