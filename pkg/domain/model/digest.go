package model

import "time"

// Digest summarizes the open issues of a session at one point in time
type Digest struct {
	GeneratedAt    time.Time
	Source         string
	Filter         Filter
	Total          int
	Open           int
	WeekChange     int // Open minus the open count seven days earlier
	ByStatus       []LabelCount
	OpenBySeverity []LabelCount
	TopProjects    []LabelCount // projects with the most open issues
}
