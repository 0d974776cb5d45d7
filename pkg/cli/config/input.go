package config

import (
	"context"
	"log/slog"
	"time"
	_ "time/tzdata" // --timezone must work on hosts without a zoneinfo database
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Input holds the issue export location and parsing options
type Input struct {
	Path        string
	Delimiter   string
	TimeLayouts []string
	Timezone    string
}

// Flags returns CLI flags for Input configuration
func (x *Input) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to the issue export (CSV)",
			Category:    "Input",
			Required:    true,
			Sources:     cli.EnvVars("ISSUEREPORT_INPUT"),
			Destination: &x.Path,
		},
		&cli.StringFlag{
			Name:        "delimiter",
			Usage:       "Field delimiter of the issue export",
			Category:    "Input",
			Value:       ",",
			Sources:     cli.EnvVars("ISSUEREPORT_DELIMITER"),
			Destination: &x.Delimiter,
		},
		&cli.StringSliceFlag{
			Name:        "time-layout",
			Usage:       "Additional Go time layout for Created At and Resolved Time (repeatable)",
			Category:    "Input",
			Sources:     cli.EnvVars("ISSUEREPORT_TIME_LAYOUT"),
			Destination: &x.TimeLayouts,
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "Time zone used to cut timestamps into days (IANA name)",
			Category:    "Input",
			Value:       "UTC",
			Sources:     cli.EnvVars("ISSUEREPORT_TIMEZONE"),
			Destination: &x.Timezone,
		},
	}
}

// Location resolves the configured time zone
func (x *Input) Location() (*time.Location, error) {
	if x.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(x.Timezone)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid timezone", goerr.V("timezone", x.Timezone))
	}
	return loc, nil
}

// Source builds the CSV issue source
func (x *Input) Source() (*repository.CSV, error) {
	if x.Path == "" {
		return nil, goerr.New("input file is required")
	}

	loc, err := x.Location()
	if err != nil {
		return nil, err
	}

	opts := []repository.CSVOption{
		repository.WithLocation(loc),
		repository.WithTimeLayouts(x.TimeLayouts...),
	}
	if x.Delimiter != "" {
		d, size := utf8.DecodeRuneInString(x.Delimiter)
		if size != len(x.Delimiter) || d == utf8.RuneError || d == '"' || d == '\r' || d == '\n' {
			return nil, goerr.New("delimiter must be a single character", goerr.V("delimiter", x.Delimiter))
		}
		opts = append(opts, repository.WithDelimiter(d))
	}

	return repository.NewCSV(x.Path, opts...), nil
}

// Configure loads the issue export and creates the session every command
// reads from
func (x *Input) Configure(ctx context.Context) (*model.Session, error) {
	src, err := x.Source()
	if err != nil {
		return nil, err
	}

	table, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := x.Location()
	if err != nil {
		return nil, err
	}

	session, err := model.NewSession(src.Name(), table, loc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}
	return session, nil
}

// LogValue returns structured log value
func (x Input) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.Path),
		slog.String("delimiter", x.Delimiter),
		slog.Any("time_layouts", x.TimeLayouts),
		slog.String("timezone", x.Timezone),
	)
}
