package types

// IssueStatus represents the workflow status of an issue
type IssueStatus string

const (
	IssueStatusOpen          IssueStatus = "OPEN"
	IssueStatusInProgress    IssueStatus = "IN_PROGRESS"
	IssueStatusResolved      IssueStatus = "RESOLVED"
	IssueStatusRejected      IssueStatus = "REJECTED"
	IssueStatusInformational IssueStatus = "INFORMATIONAL"
)

// String returns the string representation of the status
func (s IssueStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values
func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusOpen, IssueStatusInProgress, IssueStatusResolved,
		IssueStatusRejected, IssueStatusInformational:
		return true
	default:
		return false
	}
}

// IsClosed returns true for statuses that count as a resolution in the
// open-issue time series
func (s IssueStatus) IsClosed() bool {
	return s == IssueStatusResolved || s == IssueStatusRejected
}

// IssueSeverity represents the severity of an issue
type IssueSeverity string

const (
	SeverityCritical      IssueSeverity = "CRITICAL"
	SeverityHigh          IssueSeverity = "HIGH"
	SeverityMedium        IssueSeverity = "MEDIUM"
	SeverityLow           IssueSeverity = "LOW"
	SeverityInformational IssueSeverity = "INFORMATIONAL"
)

// Severities is the fixed severity order used by selectors and digests
var Severities = []IssueSeverity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInformational,
}

// String returns the string representation of the severity
func (s IssueSeverity) String() string {
	return string(s)
}

// Rank returns the position of the severity in Severities, or -1 if the
// severity is not a known value
func (s IssueSeverity) Rank() int {
	for i, sev := range Severities {
		if sev == s {
			return i
		}
	}
	return -1
}
