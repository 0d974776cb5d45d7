package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/domain/interfaces"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

const (
	pieHole        = 0.6
	allSeriesName  = "ALL"
	lineChartXAxis = "Date"
	lineChartYAxis = "Number of Issues"
)

// Dashboard renders chart descriptors from a loaded session
type Dashboard struct {
	session *model.Session
	config  *model.DashboardConfig
	palette model.Palette
}

var _ interfaces.Dashboard = (*Dashboard)(nil)

// NewDashboard creates a new Dashboard instance. A nil config selects
// DefaultDashboardConfig.
func NewDashboard(session *model.Session, config *model.DashboardConfig) *Dashboard {
	if config == nil {
		config = model.DefaultDashboardConfig()
	}
	return &Dashboard{
		session: session,
		config:  config,
		palette: config.ColorPalette(),
	}
}

// Selectors returns the initial option lists of every selector
func (u *Dashboard) Selectors(ctx context.Context) model.Selectors {
	return u.session.Catalogs().Selectors()
}

// Options returns the Subscription and Severity options reachable under a
// Project and Resource Platform selection
func (u *Dashboard) Options(ctx context.Context, project, platform string) *model.Options {
	opts := model.DependentOptions(u.session.Base(), project, platform)
	return &opts
}

// Render filters the base table and builds every chart for the selection.
// It does not modify the session and can be called concurrently.
func (u *Dashboard) Render(ctx context.Context, filter model.Filter) (*model.View, error) {
	if u.session == nil {
		return nil, goerr.New("dashboard session is not initialized")
	}

	start := time.Now()
	filter = filter.Normalize()
	view := filter.Apply(u.session.Base())

	projects := u.session.Catalogs().Projects
	if filter.HasProject() {
		projects = []string{filter.Project}
	}

	result := &model.View{
		SessionID:  u.session.ID,
		Filter:     filter,
		Total:      view.Len(),
		Selectors:  u.session.Catalogs().Selectors(),
		LineCharts: u.lineCharts(view, projects),
		PieGroups:  u.pieGroups(view, projects),
	}

	ctxlog.From(ctx).Debug("Dashboard rendered",
		"filter", filter,
		"rows", view.Len(),
		"line_charts", len(result.LineCharts),
		"pie_groups", len(result.PieGroups),
		"duration", time.Since(start),
	)
	return result, nil
}

func (u *Dashboard) lineCharts(view *model.Table, projects []string) []model.LineChart {
	charts := make([]model.LineChart, 0, len(u.config.LineCategories))
	for _, cat := range u.config.LineCategories {
		series := []model.Series{u.series(allSeriesName, view)}

		if cat == types.ColumnProjects {
			for _, p := range projects {
				sub := view.Where(func(issue *model.Issue) bool { return issue.InProject(p) })
				series = append(series, u.series(p, sub))
			}
		} else {
			for _, v := range view.Distinct(cat) {
				sub := view.Where(func(issue *model.Issue) bool { return issue.Value(cat) == v })
				series = append(series, u.series(v, sub))
			}
		}

		charts = append(charts, model.LineChart{
			ID:     chartID("issues", cat.String(), "line-chart"),
			Title:  fmt.Sprintf("Issues over Time by %s", cat),
			XAxis:  lineChartXAxis,
			YAxis:  lineChartYAxis,
			Series: series,
		})
	}
	return charts
}

func (u *Dashboard) series(name string, t *model.Table) model.Series {
	counts := CumulativeOpen(t, u.session.Location)
	if u.config.FillGaps {
		counts = FillGaps(counts)
	}
	return model.Series{
		Name:   types.Truncate(name, u.config.LabelLength),
		Points: toPoints(counts),
	}
}

func (u *Dashboard) pieGroups(view *model.Table, projects []string) []model.PieGroup {
	statuses := CountByStatus(view)

	groups := make([]model.PieGroup, 0, len(u.config.PieCategories))
	for _, cat := range u.config.PieCategories {
		group := model.PieGroup{
			Category: cat,
			Title:    fmt.Sprintf("Issues by %s", cat),
		}

		if cat == types.ColumnStatus {
			group.Charts = []model.PieChart{
				u.pieChart(chartID("all-issues-by", cat.String(), "pie-chart"), "All Issues by Status", statuses),
			}
			groups = append(groups, group)
			continue
		}

		for _, s := range statuses {
			byStatus := statusView(view, s.Label)

			var counts []model.LabelCount
			if cat == types.ColumnProjects {
				counts = CountProjects(byStatus, projects)
			} else {
				counts = CountByCategory(byStatus, cat)
			}

			group.Charts = append(group.Charts, u.pieChart(
				chartID(s.Label, "issues-by", cat.String(), "pie-chart"),
				fmt.Sprintf("%s Issues by %s", s.Label, cat),
				counts,
			))
		}
		groups = append(groups, group)
	}
	return groups
}

func (u *Dashboard) pieChart(id, title string, counts []model.LabelCount) model.PieChart {
	labels := make([]string, len(counts))
	values := make([]int, len(counts))
	for i, c := range counts {
		labels[i] = types.Truncate(c.Label, u.config.LabelLength)
		values[i] = c.Count
	}
	return model.PieChart{
		ID:     id,
		Title:  title,
		Labels: labels,
		Values: values,
		Colors: u.palette.Colors(labels),
		Hole:   pieHole,
	}
}

// chartID joins parts into a lower-case element ID without spaces
func chartID(parts ...string) string {
	id := strings.ToLower(strings.Join(parts, "-"))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(id)
}
