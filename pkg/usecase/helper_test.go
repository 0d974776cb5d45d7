package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type row struct {
	status       types.IssueStatus
	severity     types.IssueSeverity
	projects     string
	platform     string
	subscription string
	created      string
	resolved     string
}

func newTable(rows ...row) *model.Table {
	issues := make([]model.Issue, 0, len(rows))
	for i, r := range rows {
		issue := model.Issue{
			Row:          i + 1,
			Status:       r.status,
			Severity:     r.severity,
			Projects:     r.projects,
			Platform:     r.platform,
			Subscription: r.subscription,
			Region:       types.Unknown,
			ResourceType: types.Unknown,
			CreatedAt:    day(r.created),
		}
		if r.resolved != "" {
			issue.ResolvedAt = day(r.resolved)
		}
		issues = append(issues, issue)
	}
	return model.NewTable(issues)
}

func newTestSession(t *testing.T, table *model.Table) *model.Session {
	session, err := model.NewSession("test.csv", table, time.UTC)
	gt.NoError(t, err).Required()
	return session
}

// sampleTable has multi-project rows, every closing status and two platforms
func sampleTable() *model.Table {
	return newTable(
		row{types.IssueStatusOpen, types.SeverityHigh, "Alpha, Beta", "AWS", "sub-1", "2024-01-01", ""},
		row{types.IssueStatusResolved, types.SeverityCritical, "Alpha", "AWS", "sub-2", "2024-01-02", "2024-01-03"},
		row{types.IssueStatusOpen, types.SeverityLow, "Gamma", "Azure", "sub-3", "2024-01-02", ""},
		row{types.IssueStatusRejected, types.SeverityHigh, "Beta", "AWS", "sub-1", "2024-01-03", "2024-01-05"},
		row{types.IssueStatusInProgress, types.SeverityMedium, "Alpha", "Azure", "sub-3", "2024-01-05", ""},
	)
}
