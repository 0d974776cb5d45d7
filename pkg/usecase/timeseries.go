package usecase

import (
	"sort"
	"time"

	"github.com/secmon-lab/issuereport/pkg/domain/model"
)

const dayLayout = "2006-01-02"

// CumulativeOpen computes the number of open issues at the end of every day
// on which at least one issue was created or resolved. Creations are
// bucketed by Created At, resolutions by Resolved Time of RESOLVED and
// REJECTED issues. Days are cut in loc.
func CumulativeOpen(t *model.Table, loc *time.Location) []model.DailyOpenCount {
	if loc == nil {
		loc = time.UTC
	}

	days := make(map[string]*model.DailyOpenCount)
	bucket := func(ts time.Time) *model.DailyOpenCount {
		day := model.DayOf(ts, loc)
		key := day.Format(dayLayout)
		c, ok := days[key]
		if !ok {
			c = &model.DailyOpenCount{Day: day}
			days[key] = c
		}
		return c
	}

	t.Each(func(issue *model.Issue) {
		bucket(issue.CreatedAt).Created++
		if issue.Status.IsClosed() && issue.HasResolvedAt() {
			bucket(issue.ResolvedAt).Resolved++
		}
	})

	if len(days) == 0 {
		return nil
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]model.DailyOpenCount, 0, len(keys))
	open := 0
	for _, k := range keys {
		c := *days[k]
		open += c.Created - c.Resolved
		c.Open = open
		result = append(result, c)
	}
	return result
}

// FillGaps inserts the days missing between the first and last day of
// counts. Inserted days carry the open count of the previous day.
func FillGaps(counts []model.DailyOpenCount) []model.DailyOpenCount {
	if len(counts) < 2 {
		return counts
	}

	result := make([]model.DailyOpenCount, 0, len(counts))
	for i, c := range counts {
		if i > 0 {
			prev := result[len(result)-1]
			for day := prev.Day.AddDate(0, 0, 1); day.Before(c.Day); day = day.AddDate(0, 0, 1) {
				result = append(result, model.DailyOpenCount{Day: day, Open: prev.Open})
			}
		}
		result = append(result, c)
	}
	return result
}

// toPoints converts counts into line chart points
func toPoints(counts []model.DailyOpenCount) []model.Point {
	points := make([]model.Point, 0, len(counts))
	for _, c := range counts {
		points = append(points, model.Point{Date: c.Day.Format(dayLayout), Value: c.Open})
	}
	return points
}
