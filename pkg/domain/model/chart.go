package model

import "github.com/secmon-lab/issuereport/pkg/domain/types"

// PieChart describes one doughnut chart
type PieChart struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Colors []string `json:"colors"`
	Hole   float64  `json:"hole"`
}

// PieGroup is a set of pie charts breaking down one category
type PieGroup struct {
	Category types.Column `json:"category"`
	Title    string       `json:"title"`
	Charts   []PieChart   `json:"charts"`
}

// Point is one date/value pair of a line series
type Point struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Value int    `json:"value"`
}

// Series is one named line
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// LineChart describes a chart with one or more cumulative series
type LineChart struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	XAxis  string   `json:"x_axis"`
	YAxis  string   `json:"y_axis"`
	Series []Series `json:"series"`
}

// View is everything the presentation layer needs to draw the dashboard for
// one filter selection
type View struct {
	SessionID  types.SessionID `json:"session_id"`
	Filter     Filter          `json:"filter"`
	Total      int             `json:"total"`
	Selectors  Selectors       `json:"selectors"`
	LineCharts []LineChart     `json:"line_charts"`
	PieGroups  []PieGroup      `json:"pie_groups"`
}
