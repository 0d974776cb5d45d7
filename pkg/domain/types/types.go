package types

import (
	"github.com/google/uuid"
)

// SessionID identifies one loaded data set
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}

// Column is the header name of a column in the issue export
type Column string

const (
	ColumnStatus       Column = "Status"
	ColumnSeverity     Column = "Severity"
	ColumnProjects     Column = "Project Names"
	ColumnPlatform     Column = "Resource Platform"
	ColumnSubscription Column = "Subscription ID"
	ColumnRegion       Column = "Resource Region"
	ColumnResourceType Column = "Resource Type"
	ColumnCreatedAt    Column = "Created At"
	ColumnResolvedTime Column = "Resolved Time"
)

// String returns the string representation
func (c Column) String() string {
	return string(c)
}

// RequiredColumns lists every column the loader expects in the header row
var RequiredColumns = []Column{
	ColumnStatus,
	ColumnSeverity,
	ColumnProjects,
	ColumnPlatform,
	ColumnSubscription,
	ColumnRegion,
	ColumnResourceType,
	ColumnCreatedAt,
	ColumnResolvedTime,
}

// IsCategorical reports whether the column holds a categorical value that
// can be grouped for charts
func (c Column) IsCategorical() bool {
	switch c {
	case ColumnStatus, ColumnSeverity, ColumnProjects, ColumnPlatform,
		ColumnSubscription, ColumnRegion, ColumnResourceType:
		return true
	default:
		return false
	}
}

// Placeholders written in place of empty cells at load time
const (
	NoSubscription = "No Subscription"
	NoProject      = "No Project"
	Unknown        = "Unknown"
)

// "All" selector values. Selecting one of them disables the matching filter.
const (
	AllProjects      = "All Projects"
	AllSeverities    = "All Severities"
	AllPlatforms     = "All Resource Platforms"
	AllSubscriptions = "All Subscriptions"
)

const projectsSeparator = ","

// SplitProjects splits a Project Names cell into its labels
func SplitProjects(s string) []string {
	var result []string
	for _, p := range splitAndTrim(s, projectsSeparator) {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
