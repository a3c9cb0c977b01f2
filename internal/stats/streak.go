package stats

import (
	"sort"
	"time"

	"arnold/tracker/internal/domain"
)

// CurrentStreak walks backward day by day from today and counts consecutive
// trained days.
//
// Rules:
//   - Sundays are exempt: the walk skips over them, they never count and
//     never break a streak, and a Sunday entry consumes no rest allowance.
//   - A real workout counts one streak day.
//   - An explicit rest-day entry does not count but preserves the streak
//     while its calendar week (Sunday-anchored) still has allowance left.
//     Allowance is consumed in chronological order within the week, so when
//     a week holds more rest entries than restDaysPerWeek, the later entries
//     are the ones over budget and the walk breaks there.
//   - A day with no entry at all breaks the streak immediately.
//   - The walk starts at today, or yesterday when today has no entry yet,
//     and stops before the earliest known workout date.
func CurrentStreak(workouts []domain.Workout, today time.Time, restDaysPerWeek int) int {
	byDate, earliest, ok := indexByDate(workouts)
	if !ok {
		return 0
	}

	check := today
	if _, logged := byDate[domain.FormatDate(check)]; !logged {
		check = check.AddDate(0, 0, -1)
	}

	streak := 0
	for !check.Before(earliest) {
		if check.Weekday() == time.Sunday {
			check = check.AddDate(0, 0, -1)
			continue
		}

		w, logged := byDate[domain.FormatDate(check)]
		if !logged {
			break
		}
		if w.IsRestDay {
			if restUsedThrough(byDate, check) > restDaysPerWeek {
				break
			}
			check = check.AddDate(0, 0, -1)
			continue
		}

		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

// BestStreak is the historical maximum run of trained days. It considers
// only real workout dates (rest-day entries are ignored here, unlike the
// current-streak walk) and treats two dates as consecutive when no
// non-Sunday day lies between them, so a Saturday session followed by the
// next Monday's continues the run.
func BestStreak(workouts []domain.Workout) int {
	seen := make(map[string]struct{})
	days := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		if w.IsRestDay {
			continue
		}
		day, ok := parseDay(w.Date)
		if !ok || day.Weekday() == time.Sunday {
			continue
		}
		if _, dup := seen[w.Date]; dup {
			continue
		}
		seen[w.Date] = struct{}{}
		days = append(days, day)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 0, 1
	for i := 1; i < len(days); i++ {
		if nonSundaysBetween(days[i-1], days[i]) == 0 {
			run++
			continue
		}
		if run > best {
			best = run
		}
		run = 1
	}
	if run > best {
		best = run
	}
	return best
}

// indexByDate maps date key to entry and finds the earliest parseable date.
func indexByDate(workouts []domain.Workout) (map[string]domain.Workout, time.Time, bool) {
	byDate := make(map[string]domain.Workout, len(workouts))
	var earliest time.Time
	found := false
	for _, w := range workouts {
		day, ok := parseDay(w.Date)
		if !ok {
			continue
		}
		byDate[w.Date] = w
		if !found || day.Before(earliest) {
			earliest = day
			found = true
		}
	}
	return byDate, earliest, found
}

// restUsedThrough counts the rest-day entries of day's calendar week with a
// date at or before day, Sundays excluded. This is the chronological
// allowance consumption the walk checks against.
func restUsedThrough(byDate map[string]domain.Workout, day time.Time) int {
	used := 0
	for d := weekStart(day); !d.After(day); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		if w, ok := byDate[domain.FormatDate(d)]; ok && w.IsRestDay {
			used++
		}
	}
	return used
}

// nonSundaysBetween counts the non-Sunday days strictly between a and b.
func nonSundaysBetween(a, b time.Time) int {
	n := 0
	for d := a.AddDate(0, 0, 1); d.Before(b); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			n++
		}
	}
	return n
}
