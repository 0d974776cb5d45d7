package model

import (
	"strings"

	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

// Filter holds the current selector values. An empty field or the matching
// "All ..." value disables that predicate.
type Filter struct {
	Project      string `json:"project"`
	Severity     string `json:"severity"`
	Platform     string `json:"platform"`
	Subscription string `json:"subscription"`
}

// Normalize replaces empty fields with their "All ..." values
func (f Filter) Normalize() Filter {
	if f.Project == "" {
		f.Project = types.AllProjects
	}
	if f.Severity == "" {
		f.Severity = types.AllSeverities
	}
	if f.Platform == "" {
		f.Platform = types.AllPlatforms
	}
	if f.Subscription == "" {
		f.Subscription = types.AllSubscriptions
	}
	return f
}

// HasProject returns true if a specific project is selected
func (f Filter) HasProject() bool {
	return isActive(f.Project, types.AllProjects)
}

// HasSeverity returns true if a specific severity is selected
func (f Filter) HasSeverity() bool {
	return isActive(f.Severity, types.AllSeverities)
}

// HasPlatform returns true if a specific resource platform is selected
func (f Filter) HasPlatform() bool {
	return isActive(f.Platform, types.AllPlatforms)
}

// HasSubscription returns true if a specific subscription is selected
func (f Filter) HasSubscription() bool {
	return isActive(f.Subscription, types.AllSubscriptions)
}

// IsEmpty returns true if no predicate is active
func (f Filter) IsEmpty() bool {
	return !f.HasProject() && !f.HasSeverity() && !f.HasPlatform() && !f.HasSubscription()
}

// Match reports whether the issue satisfies every active predicate
func (f Filter) Match(issue *Issue) bool {
	if f.HasProject() && !issue.InProject(f.Project) {
		return false
	}
	if f.HasSeverity() && issue.Severity.String() != f.Severity {
		return false
	}
	if f.HasPlatform() && issue.Platform != f.Platform {
		return false
	}
	if f.HasSubscription() && issue.Subscription != f.Subscription {
		return false
	}
	return true
}

// Apply returns the filtered view of t. The input table is never modified.
func (f Filter) Apply(t *Table) *Table {
	if f.IsEmpty() {
		return NewTable(t.Issues())
	}
	return t.Where(f.Match)
}

func isActive(value, all string) bool {
	return value != "" && value != all
}

// String lists the active predicates as key=value pairs, e.g.
// "project=Alpha, severity=HIGH". It is empty when no predicate is active.
func (f Filter) String() string {
	var parts []string
	if f.HasProject() {
		parts = append(parts, "project="+f.Project)
	}
	if f.HasSeverity() {
		parts = append(parts, "severity="+f.Severity)
	}
	if f.HasPlatform() {
		parts = append(parts, "platform="+f.Platform)
	}
	if f.HasSubscription() {
		parts = append(parts, "subscription="+f.Subscription)
	}
	return strings.Join(parts, ", ")
}
