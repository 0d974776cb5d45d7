package model

import (
	"strings"
	"time"

	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

// Issue is one row of the issue export after normalization
type Issue struct {
	Row          int                 `json:"row"` // 1-based data row position in the source file
	Status       types.IssueStatus   `json:"status"`
	Severity     types.IssueSeverity `json:"severity"`
	Projects     string              `json:"projects"` // comma separated project labels
	Platform     string              `json:"platform"`
	Subscription string              `json:"subscription"`
	Region       string              `json:"region"`
	ResourceType string              `json:"resource_type"`
	CreatedAt    time.Time           `json:"created_at"`
	ResolvedAt   time.Time           `json:"resolved_at,omitzero"` // zero while unresolved
}

// Value returns the cell of a categorical column
func (i *Issue) Value(col types.Column) string {
	switch col {
	case types.ColumnStatus:
		return i.Status.String()
	case types.ColumnSeverity:
		return i.Severity.String()
	case types.ColumnProjects:
		return i.Projects
	case types.ColumnPlatform:
		return i.Platform
	case types.ColumnSubscription:
		return i.Subscription
	case types.ColumnRegion:
		return i.Region
	case types.ColumnResourceType:
		return i.ResourceType
	default:
		return ""
	}
}

// InProject reports whether the Project Names cell mentions project.
// Membership is substring containment since one cell may list several projects.
func (i *Issue) InProject(project string) bool {
	return strings.Contains(i.Projects, project)
}

// HasResolvedAt returns true if the issue carries a resolution timestamp
func (i *Issue) HasResolvedAt() bool {
	return !i.ResolvedAt.IsZero()
}

// IsOpenAt reports whether the issue was open at the end of the given day.
// Only RESOLVED and REJECTED issues with a resolution timestamp ever close.
func (i *Issue) IsOpenAt(day time.Time, loc *time.Location) bool {
	if DayOf(i.CreatedAt, loc).After(day) {
		return false
	}
	if !i.Status.IsClosed() || !i.HasResolvedAt() {
		return true
	}
	return DayOf(i.ResolvedAt, loc).After(day)
}

// DayOf truncates t to midnight of its calendar day in loc
func DayOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
