package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

// DefaultLabelLength is the number of characters kept in chart labels
const DefaultLabelLength = 36

// DashboardConfig controls which charts are drawn and how
type DashboardConfig struct {
	PieCategories  []types.Column    `yaml:"pie_categories" toml:"pie_categories"`
	LineCategories []types.Column    `yaml:"line_categories" toml:"line_categories"`
	LabelLength    int               `yaml:"label_length" toml:"label_length"`
	FillGaps       bool              `yaml:"fill_gaps" toml:"fill_gaps"`
	Palette        map[string]string `yaml:"palette,omitempty" toml:"palette,omitempty"`
}

// DefaultDashboardConfig returns the configuration used when no file is given
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		PieCategories: []types.Column{
			types.ColumnStatus,
			types.ColumnSeverity,
			types.ColumnProjects,
			types.ColumnPlatform,
			types.ColumnSubscription,
			types.ColumnRegion,
			types.ColumnResourceType,
		},
		LineCategories: []types.Column{
			types.ColumnProjects,
			types.ColumnSeverity,
			types.ColumnPlatform,
			types.ColumnSubscription,
		},
		LabelLength: DefaultLabelLength,
	}
}

// Validate validates the dashboard configuration
func (c *DashboardConfig) Validate() error {
	if len(c.PieCategories) == 0 && len(c.LineCategories) == 0 {
		return goerr.New("at least one chart category is required", goerr.T(ErrTagInvalidConfig))
	}
	if err := validateCategories("pie_categories", c.PieCategories); err != nil {
		return err
	}
	if err := validateCategories("line_categories", c.LineCategories); err != nil {
		return err
	}
	if c.LabelLength < 0 {
		return goerr.New("label length must not be negative",
			goerr.V("label_length", c.LabelLength),
			goerr.T(ErrTagInvalidConfig))
	}
	for label, color := range c.Palette {
		if color == "" {
			return goerr.New("palette color is empty",
				goerr.V("label", label),
				goerr.T(ErrTagInvalidConfig))
		}
	}
	return nil
}

// ColorPalette returns the default palette overridden by configured colors
func (c *DashboardConfig) ColorPalette() Palette {
	p := DefaultPalette()
	for label, color := range c.Palette {
		p[label] = color
	}
	return p
}

func validateCategories(field string, cols []types.Column) error {
	seen := make(map[types.Column]bool)
	for i, col := range cols {
		if !col.IsCategorical() {
			return goerr.New("unknown chart category",
				goerr.V("field", field),
				goerr.V("index", i),
				goerr.V("category", col),
				goerr.T(ErrTagInvalidConfig))
		}
		if seen[col] {
			return goerr.New("duplicate chart category",
				goerr.V("field", field),
				goerr.V("category", col),
				goerr.T(ErrTagInvalidConfig))
		}
		seen[col] = true
	}
	return nil
}
