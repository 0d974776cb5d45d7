package model_test

import (
	"time"

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

// newTestTable returns a small table covering multi-project rows and every
// filterable column
func newTestTable() *model.Table {
	return model.NewTable([]model.Issue{
		{Row: 1, Status: types.IssueStatusOpen, Severity: types.SeverityHigh, Projects: "Alpha, Beta", Platform: "AWS", Subscription: "sub-1", Region: "us-east-1", ResourceType: "Bucket", CreatedAt: day("2024-01-01")},
		{Row: 2, Status: types.IssueStatusResolved, Severity: types.SeverityCritical, Projects: "Alpha", Platform: "AWS", Subscription: "sub-2", Region: "us-east-1", ResourceType: "VM", CreatedAt: day("2024-01-02"), ResolvedAt: day("2024-01-03")},
		{Row: 3, Status: types.IssueStatusOpen, Severity: types.SeverityLow, Projects: "Gamma", Platform: "Azure", Subscription: "sub-3", Region: "westeurope", ResourceType: "Disk", CreatedAt: day("2024-01-02")},
		{Row: 4, Status: types.IssueStatusRejected, Severity: types.SeverityMedium, Projects: "Beta", Platform: "GCP", Subscription: types.NoSubscription, Region: types.Unknown, ResourceType: types.Unknown, CreatedAt: day("2024-01-03"), ResolvedAt: day("2024-01-04")},
	})
}
