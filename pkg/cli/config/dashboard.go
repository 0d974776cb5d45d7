package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Dashboard holds the location of the dashboard configuration file
type Dashboard struct {
	Path     string
	FillGaps bool
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Dashboard configuration file (.yaml, .yml or .toml)",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("ISSUEREPORT_CONFIG"),
			Destination: &d.Path,
		},
		&cli.BoolFlag{
			Name:        "fill-gaps",
			Usage:       "Draw a point for every calendar day in line charts",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("ISSUEREPORT_FILL_GAPS"),
			Destination: &d.FillGaps,
		},
	}
}

// Configure returns the dashboard configuration. Without a file the
// default configuration is used.
func (d *Dashboard) Configure() (*model.DashboardConfig, error) {
	cfg := model.DefaultDashboardConfig()
	if d.Path != "" {
		loaded, err := LoadDashboardConfig(d.Path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if d.FillGaps {
		cfg.FillGaps = true
	}
	return cfg, nil
}

// LoadDashboardConfig loads a dashboard configuration from a YAML or TOML
// file chosen by extension. Fields missing from the file keep their
// default values.
func LoadDashboardConfig(path string) (*model.DashboardConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path),
				goerr.T(model.ErrTagInvalidConfig))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	config := model.DefaultDashboardConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML configuration",
				goerr.V("path", path),
				goerr.T(model.ErrTagInvalidConfig))
		}
	case ".toml":
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML configuration",
				goerr.V("path", path),
				goerr.T(model.ErrTagInvalidConfig))
		}
	default:
		return nil, goerr.New("unsupported configuration file format",
			goerr.V("path", path),
			goerr.V("extension", ext),
			goerr.T(model.ErrTagInvalidConfig))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return config, nil
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
		slog.Bool("fill_gaps", d.FillGaps),
	)
}
