// Package stats is the in-memory aggregation engine: pure, synchronous
// functions that fold the full workout list into dashboard and statistics
// view-models. The engine performs no I/O and never fails on partial data;
// malformed documents degrade to zero contributions.
package stats

import (
	"time"

	"arnold/tracker/internal/domain"
)

// parseDay parses a workout date key into a civil date. Documents with an
// unparseable date are skipped by the callers rather than failing the fold.
func parseDay(s string) (time.Time, bool) {
	t, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// weekStart returns the Sunday that anchors the calendar week of d.
func weekStart(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// within reports day in [from, to] inclusive.
func within(day, from, to time.Time) bool {
	return !day.Before(from) && !day.After(to)
}

func roundInt(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}
