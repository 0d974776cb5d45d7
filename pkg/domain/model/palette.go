package model

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Palette maps chart labels to colors
type Palette map[string]string

// DefaultPalette colors the known status and severity labels
func DefaultPalette() Palette {
	return Palette{
		"OPEN":          "red",
		"RESOLVED":      "green",
		"IN_PROGRESS":   "orange",
		"INFORMATIONAL": "lightgrey",
		"REJECTED":      "darkgrey",
		"LOW":           "lightblue",
		"MEDIUM":        "darkorange",
		"HIGH":          "red",
		"CRITICAL":      "darkred",
	}
}

// Color returns the palette color of label, or a color derived from a hash
// of the label so the same label always gets the same color
func (p Palette) Color(label string) string {
	if c, ok := p[label]; ok {
		return c
	}
	return HashColor(label)
}

// Colors maps every label through Color
func (p Palette) Colors(labels []string) []string {
	colors := make([]string, len(labels))
	for i, label := range labels {
		colors[i] = p.Color(label)
	}
	return colors
}

// HashColor returns a #rrggbb color computed from the label
func HashColor(label string) string {
	return fmt.Sprintf("#%06x", xxhash.Sum64String(label)&0xffffff)
}
