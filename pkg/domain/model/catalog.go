package model

import (
	"sort"

	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

// Catalogs holds the distinct values used to seed selectors and pie chart
// label sets. Values never include the "All ..." entries.
type Catalogs struct {
	Projects      []string `json:"projects"`
	Severities    []string `json:"severities"`
	Platforms     []string `json:"platforms"`
	Subscriptions []string `json:"subscriptions"`
}

// Selectors is the option list of every selector, "All ..." entry first
type Selectors struct {
	Projects      []string `json:"projects"`
	Severities    []string `json:"severities"`
	Platforms     []string `json:"platforms"`
	Subscriptions []string `json:"subscriptions"`
}

// Options is the refreshed Subscription and Severity option list after a
// Project or Resource Platform selection changed
type Options struct {
	Subscriptions []string `json:"subscriptions"`
	Severities    []string `json:"severities"`
	// Selected values to apply to the refreshed selectors
	Subscription string `json:"subscription"`
	Severity     string `json:"severity"`
}

// BuildCatalogs derives the catalogs from a table. Projects are split from
// the multi-valued Project Names column. Severities are the fixed list.
func BuildCatalogs(t *Table) Catalogs {
	projects := make(map[string]bool)
	platforms := make(map[string]bool)
	subscriptions := make(map[string]bool)

	t.Each(func(issue *Issue) {
		for _, p := range types.SplitProjects(issue.Projects) {
			projects[p] = true
		}
		platforms[issue.Platform] = true
		subscriptions[issue.Subscription] = true
	})

	severities := make([]string, 0, len(types.Severities))
	for _, sev := range types.Severities {
		severities = append(severities, sev.String())
	}

	return Catalogs{
		Projects:      sortedKeys(projects),
		Severities:    severities,
		Platforms:     sortedKeys(platforms),
		Subscriptions: sortedKeys(subscriptions),
	}
}

// Selectors returns the selector options with the "All ..." entries prepended
func (c Catalogs) Selectors() Selectors {
	return Selectors{
		Projects:      withSentinel(types.AllProjects, c.Projects),
		Severities:    withSentinel(types.AllSeverities, c.Severities),
		Platforms:     withSentinel(types.AllPlatforms, c.Platforms),
		Subscriptions: withSentinel(types.AllSubscriptions, c.Subscriptions),
	}
}

// DependentOptions recomputes the Subscription and Severity options from
// the rows of base reachable under the given project and platform selection
func DependentOptions(base *Table, project, platform string) Options {
	f := Filter{Project: project, Platform: platform}.Normalize()
	view := base.Where(f.Match)

	subscriptions := make(map[string]bool)
	present := make(map[string]bool)
	view.Each(func(issue *Issue) {
		subscriptions[issue.Subscription] = true
		present[issue.Severity.String()] = true
	})

	var severities []string
	for _, sev := range types.Severities {
		if present[sev.String()] {
			severities = append(severities, sev.String())
			delete(present, sev.String())
		}
	}
	severities = append(severities, sortedKeys(present)...)

	return Options{
		Subscriptions: withSentinel(types.AllSubscriptions, sortedKeys(subscriptions)),
		Severities:    withSentinel(types.AllSeverities, severities),
		Subscription:  types.AllSubscriptions,
		Severity:      types.AllSeverities,
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func withSentinel(all string, values []string) []string {
	result := make([]string, 0, len(values)+1)
	result = append(result, all)
	return append(result, values...)
}
