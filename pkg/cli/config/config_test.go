package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issuereport/pkg/cli/config"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

func TestLoadDashboardConfig(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		cfg, err := config.LoadDashboardConfig("testdata/dashboard.yaml")
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.PieCategories, []types.Column{types.ColumnStatus, types.ColumnSeverity})
		gt.Equal(t, cfg.LineCategories, []types.Column{types.ColumnProjects})
		gt.Equal(t, cfg.LabelLength, 20)
		gt.True(t, cfg.FillGaps)
		gt.Equal(t, cfg.ColorPalette().Color("OPEN"), "#ff0000")
	})

	t.Run("toml", func(t *testing.T) {
		cfg, err := config.LoadDashboardConfig("testdata/dashboard.toml")
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.PieCategories, []types.Column{types.ColumnPlatform})
		gt.Equal(t, cfg.LineCategories, []types.Column{types.ColumnProjects, types.ColumnSeverity})
		gt.Equal(t, cfg.LabelLength, 12)
		gt.False(t, cfg.FillGaps)
		gt.Equal(t, cfg.ColorPalette().Color("Alpha"), "#00ff00")
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		cfg, err := config.LoadDashboardConfig("testdata/partial.yaml")
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.LabelLength, 10)
		gt.Equal(t, cfg.PieCategories, model.DefaultDashboardConfig().PieCategories)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := config.LoadDashboardConfig("testdata/invalid_category.yaml")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagInvalidConfig))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := config.LoadDashboardConfig("testdata/issues.csv")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagInvalidConfig))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadDashboardConfig("testdata/missing.yaml")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("configuration file not found")
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := config.LoadDashboardConfig("")
		gt.Error(t, err)
	})
}

func TestDashboardConfigure(t *testing.T) {
	t.Run("default without file", func(t *testing.T) {
		d := config.Dashboard{}
		cfg, err := d.Configure()
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg, model.DefaultDashboardConfig())
	})

	t.Run("fill gaps flag overrides file", func(t *testing.T) {
		d := config.Dashboard{Path: "testdata/dashboard.toml", FillGaps: true}
		cfg, err := d.Configure()
		gt.NoError(t, err).Required()
		gt.True(t, cfg.FillGaps)
	})
}

func TestInputConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("comma separated export", func(t *testing.T) {
		input := config.Input{Path: "testdata/issues.csv", Delimiter: ",", Timezone: "UTC"}
		session, err := input.Configure(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, session.Base().Len(), 4)
		gt.Equal(t, session.Location, time.UTC)
		gt.Equal(t, session.Catalogs().Projects, []string{"Alpha", "Beta", "Gamma", types.NoProject})
	})

	t.Run("semicolon separated export in another time zone", func(t *testing.T) {
		input := config.Input{Path: "testdata/issues_semicolon.csv", Delimiter: ";", Timezone: "Asia/Tokyo"}
		session, err := input.Configure(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, session.Base().Len(), 2)
		gt.Equal(t, session.Location.String(), "Asia/Tokyo")
	})

	t.Run("missing file", func(t *testing.T) {
		input := config.Input{Path: "testdata/missing.csv"}
		_, err := input.Configure(ctx)
		gt.Error(t, err)
	})

	t.Run("wrong delimiter misses columns", func(t *testing.T) {
		input := config.Input{Path: "testdata/issues_semicolon.csv", Delimiter: ","}
		_, err := input.Configure(ctx)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagMissingColumn))
	})
}

func TestInputSource(t *testing.T) {
	testCases := []struct {
		name    string
		input   config.Input
		wantErr bool
	}{
		{"defaults", config.Input{Path: "a.csv"}, false},
		{"tab", config.Input{Path: "a.csv", Delimiter: "\t"}, false},
		{"no path", config.Input{}, true},
		{"multi character delimiter", config.Input{Path: "a.csv", Delimiter: ";;"}, true},
		{"quote delimiter", config.Input{Path: "a.csv", Delimiter: `"`}, true},
		{"unknown timezone", config.Input{Path: "a.csv", Timezone: "Mars/Olympus"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := tc.input.Source()
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, src.Name(), tc.input.Path)
		})
	}
}

func TestDigestSchedule(t *testing.T) {
	valid := []string{"0 9 * * 1-5", "*/15 * * * *", "@daily"}
	for _, s := range valid {
		d := config.Digest{Schedule: s}
		gt.True(t, d.IsScheduled())
		_, err := d.ParseSchedule()
		gt.NoError(t, err)
	}

	for _, s := range []string{"0 9 * *", "every morning", "0 0 9 * * 1"} {
		d := config.Digest{Schedule: s}
		_, err := d.ParseSchedule()
		gt.Error(t, err)
	}

	gt.False(t, (&config.Digest{}).IsScheduled())
}

func TestDigestScheduler(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	d := config.Digest{Schedule: "0 9 * * *"}
	sched, err := d.ParseSchedule()
	gt.NoError(t, err).Required()

	from := time.Date(2024, 1, 1, 10, 0, 0, 0, jst)
	gt.True(t, sched.Next(from).Equal(time.Date(2024, 1, 2, 9, 0, 0, 0, jst)))

	scheduler := d.NewScheduler(jst)
	gt.Equal(t, scheduler.Location(), jst)
}

func TestFilterConfigure(t *testing.T) {
	f := config.Filter{Project: "Alpha"}
	got := f.Configure()
	gt.Equal(t, got.Project, "Alpha")
	gt.Equal(t, got.Severity, types.AllSeverities)
	gt.True(t, got.HasProject())
	gt.False(t, got.HasPlatform())
}

func TestSlackConfigure(t *testing.T) {
	gt.V(t, (&config.Slack{OAuthToken: "xoxb-test"}).Configure()).Nil()
	gt.V(t, (&config.Slack{OAuthToken: "xoxb-test", ChannelID: "C123"}).Configure()).NotNil()
}

func TestLoggerConfigure(t *testing.T) {
	_, err := (&config.Logger{Level: "info", Format: "json"}).Configure()
	gt.NoError(t, err)

	_, err = (&config.Logger{Level: "loud", Format: "json"}).Configure()
	gt.Error(t, err)

	_, err = (&config.Logger{Level: "info", Format: "xml"}).Configure()
	gt.Error(t, err)
}
