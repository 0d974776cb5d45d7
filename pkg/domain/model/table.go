package model

import "github.com/secmon-lab/issuereport/pkg/domain/types"

// Table is an immutable set of issues. The base table and every filtered
// view derived from it share no mutable state.
type Table struct {
	issues []Issue
}

// NewTable creates a table holding a copy of issues
func NewTable(issues []Issue) *Table {
	copied := make([]Issue, len(issues))
	copy(copied, issues)
	return &Table{issues: copied}
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.issues)
}

// IsEmpty returns true if the table has no rows
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Issues returns a copy of the rows
func (t *Table) Issues() []Issue {
	if t == nil {
		return nil
	}
	copied := make([]Issue, len(t.issues))
	copy(copied, t.issues)
	return copied
}

// Each calls fn for every row in order. fn must not retain the pointer.
func (t *Table) Each(fn func(issue *Issue)) {
	if t == nil {
		return
	}
	for i := range t.issues {
		fn(&t.issues[i])
	}
}

// Where returns a new table with the rows matching pred
func (t *Table) Where(pred func(issue *Issue) bool) *Table {
	result := &Table{}
	t.Each(func(issue *Issue) {
		if pred(issue) {
			result.issues = append(result.issues, *issue)
		}
	})
	return result
}

// Count returns the number of rows matching pred
func (t *Table) Count(pred func(issue *Issue) bool) int {
	n := 0
	t.Each(func(issue *Issue) {
		if pred(issue) {
			n++
		}
	})
	return n
}

// Distinct returns the distinct values of a categorical column in order of
// first appearance
func (t *Table) Distinct(col types.Column) []string {
	seen := make(map[string]bool)
	var values []string
	t.Each(func(issue *Issue) {
		v := issue.Value(col)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	})
	return values
}
