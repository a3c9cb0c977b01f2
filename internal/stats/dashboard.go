package stats

import (
	"math"
	"sort"
	"time"

	"arnold/tracker/internal/domain"
)

// attendanceWindowDays is the trailing window of the attendance rate.
const attendanceWindowDays = 30

// DashboardStats is the dashboard view-model derived from the full workout
// list and the user profile. All percentage and volume figures are rounded
// for display; an empty log yields the zero values with the 'N/A' sentinel.
type DashboardStats struct {
	AttendanceRate     int     `json:"attendanceRate"`
	CurrentStreak      int     `json:"currentStreak"`
	BestStreak         int     `json:"bestStreak"`
	TotalVolume        int     `json:"totalVolume"`
	AvgWorkoutsPerWeek float64 `json:"avgWorkoutsPerWeek"`
	MostTrainedSplit   string  `json:"mostTrainedSplit"`
	ProgressPercentage int     `json:"progressPercentage"`
	LastWeekVolume     int     `json:"lastWeekVolume"`
	ThisWeekVolume     int     `json:"thisWeekVolume"`
}

// Dashboard computes the full dashboard in one pass over the workout list.
func Dashboard(workouts []domain.Workout, profile domain.UserProfile, today time.Time) DashboardStats {
	if len(workouts) == 0 {
		return DashboardStats{MostTrainedSplit: "N/A"}
	}

	return DashboardStats{
		AttendanceRate:     attendanceRate(workouts, today),
		CurrentStreak:      CurrentStreak(workouts, today, profile.RestDaysPerWeek),
		BestStreak:         BestStreak(workouts),
		TotalVolume:        roundInt(TotalVolume(workouts)),
		AvgWorkoutsPerWeek: avgWorkoutsPerWeek(workouts, today),
		MostTrainedSplit:   mostTrainedSplit(workouts),
		ProgressPercentage: progressPercentage(workouts, today),
		LastWeekVolume:     roundInt(volumeBetween(workouts, today.AddDate(0, 0, -14), today.AddDate(0, 0, -8))),
		ThisWeekVolume:     roundInt(volumeBetween(workouts, today.AddDate(0, 0, -7), today)),
	}
}

// attendanceRate is the share of the trailing 30 days that have any entry at
// all, rest days included, as a rounded percentage.
func attendanceRate(workouts []domain.Workout, today time.Time) int {
	from := today.AddDate(0, 0, -attendanceWindowDays)
	seen := make(map[string]struct{})
	for _, w := range workouts {
		day, ok := parseDay(w.Date)
		if !ok || !within(day, from, today) {
			continue
		}
		seen[w.Date] = struct{}{}
	}
	return roundInt(float64(len(seen)) / attendanceWindowDays * 100)
}

// volumeBetween sums session volume over [from, to] inclusive.
func volumeBetween(workouts []domain.Workout, from, to time.Time) float64 {
	var total float64
	for _, w := range workouts {
		day, ok := parseDay(w.Date)
		if !ok || !within(day, from, to) {
			continue
		}
		total += WorkoutVolume(w)
	}
	return total
}

// progressPercentage compares this week's volume [today-7d, today] against
// the week before [today-14d, today-7d). A zero previous week maps to 100
// when the current week has volume and to 0 otherwise, never to a division
// by zero.
func progressPercentage(workouts []domain.Workout, today time.Time) int {
	thisWeek := volumeBetween(workouts, today.AddDate(0, 0, -7), today)
	lastWeek := volumeBetween(workouts, today.AddDate(0, 0, -14), today.AddDate(0, 0, -8))
	if lastWeek > 0 {
		return roundInt((thisWeek - lastWeek) / lastWeek * 100)
	}
	if thisWeek > 0 {
		return 100
	}
	return 0
}

// mostTrainedSplit is the split with the most entries (rest days count for
// theirs). Ties resolve to the lexicographically first name so the result is
// deterministic.
func mostTrainedSplit(workouts []domain.Workout) string {
	counts := make(map[string]int)
	for _, w := range workouts {
		counts[w.Split]++
	}
	if len(counts) == 0 {
		return "N/A"
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	best := names[0]
	for _, name := range names[1:] {
		if counts[name] > counts[best] {
			best = name
		}
	}
	return best
}

// avgWorkoutsPerWeek divides the entry count by the weeks elapsed since the
// earliest entry, to one decimal place.
func avgWorkoutsPerWeek(workouts []domain.Workout, today time.Time) float64 {
	var earliest time.Time
	found := false
	for _, w := range workouts {
		day, ok := parseDay(w.Date)
		if !ok {
			continue
		}
		if !found || day.Before(earliest) {
			earliest = day
			found = true
		}
	}
	if !found {
		return 0
	}
	days := math.Floor(today.Sub(earliest).Hours() / 24)
	if days < 1 {
		days = 1
	}
	avg := float64(len(workouts)) / (days / 7)
	return math.Round(avg*10) / 10
}
