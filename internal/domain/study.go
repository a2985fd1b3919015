package domain

import (
	"time"
)

// SRSConfig holds SM-2 coefficients and due-set settings (pure domain type).
type SRSConfig struct {
	InitialEase     float64
	MinEase         float64
	FailEasePenalty float64
	FirstInterval   int
	SecondInterval  int
	FailInterval    int
	MaxIntervalDays int
	DueSoonWindow   time.Duration
	Timezone        string
}

// DueSet is the partition of a deck's cards at one instant. Every card lands in exactly one bucket.
// DueSoon stays empty unless the caller asked for it; those cards go to Upcoming instead.
type DueSet struct {
	Overdue    []Card
	DueNow     []Card
	DueSoon    []Card
	LaterToday []Card
	Upcoming   []Card
}

// Counts returns per-bucket sizes.
func (s DueSet) Counts() DueSetCounts {
	return DueSetCounts{
		Overdue:    len(s.Overdue),
		DueNow:     len(s.DueNow),
		DueSoon:    len(s.DueSoon),
		LaterToday: len(s.LaterToday),
		Upcoming:   len(s.Upcoming),
	}
}

// Total returns the number of partitioned cards.
func (s DueSet) Total() int {
	return len(s.Overdue) + len(s.DueNow) + len(s.DueSoon) + len(s.LaterToday) + len(s.Upcoming)
}

// DueSetCounts holds per-bucket card counts.
type DueSetCounts struct {
	Overdue    int
	DueNow     int
	DueSoon    int
	LaterToday int
	Upcoming   int
}

// DayForecast holds the number of cards due on one calendar day.
type DayForecast struct {
	Date  time.Time
	Count int
}
