package model

import "time"

// DailyOpenCount is one point of the cumulative open-issue series
type DailyOpenCount struct {
	Day      time.Time
	Created  int
	Resolved int
	Open     int // running total of Created - Resolved up to and including Day
}

// LabelCount is a count of issues for one chart label
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
