package usecase

import (
	"sort"

	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

// CountByStatus counts issues per status value in order of first appearance
func CountByStatus(t *model.Table) []model.LabelCount {
	counts := make(map[string]int)
	t.Each(func(issue *model.Issue) {
		counts[issue.Status.String()]++
	})

	statuses := t.Distinct(types.ColumnStatus)
	result := make([]model.LabelCount, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, model.LabelCount{Label: s, Count: counts[s]})
	}
	return result
}

// CountByCategory counts issues per distinct value of col, largest count
// first and ties ordered by label
func CountByCategory(t *model.Table, col types.Column) []model.LabelCount {
	counts := make(map[string]int)
	t.Each(func(issue *model.Issue) {
		counts[issue.Value(col)]++
	})

	result := make([]model.LabelCount, 0, len(counts))
	for label, count := range counts {
		result = append(result, model.LabelCount{Label: label, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Label < result[j].Label
	})
	return result
}

// CountProjects counts issues per project label. An issue listing several
// projects counts once for each of them.
func CountProjects(t *model.Table, projects []string) []model.LabelCount {
	result := make([]model.LabelCount, 0, len(projects))
	for _, p := range projects {
		result = append(result, model.LabelCount{
			Label: p,
			Count: t.Count(func(issue *model.Issue) bool { return issue.InProject(p) }),
		})
	}
	return result
}

// statusView returns the rows of t having status s
func statusView(t *model.Table, s string) *model.Table {
	return t.Where(func(issue *model.Issue) bool {
		return issue.Status.String() == s
	})
}
