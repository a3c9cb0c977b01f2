package stats

import (
	"sort"
	"time"

	"arnold/tracker/internal/domain"
)

// WeightPoint is one chart point of the per-exercise max-weight series.
type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// MaxWeightSeries returns, for the named exercise, one point per workout date
// holding the heaviest valid set of that session. Sessions without a positive
// valid weight are dropped entirely; the series is sorted ascending by date.
func MaxWeightSeries(workouts []domain.Workout, exercise string) []WeightPoint {
	points := make([]WeightPoint, 0)
	for _, w := range workouts {
		var max float64
		for _, e := range w.Exercises {
			if e.Name != exercise {
				continue
			}
			for _, s := range e.ValidSets() {
				if s.ParsedWeight() > max {
					max = s.ParsedWeight()
				}
			}
		}
		if max > 0 {
			points = append(points, WeightPoint{Date: w.Date, Weight: max})
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// VolumePoint is one chart point of a per-split volume series.
type VolumePoint struct {
	Date   string `json:"date"`
	Volume int    `json:"volume"`
}

// SplitVolumeSeries builds one independent date-ordered volume series per
// configured split. Dates on which a split was not trained are simply absent
// from its series; there is no zero-fill or interpolation, so chart consumers
// must not connect across gaps. Workouts referencing an unknown split are
// ignored.
func SplitVolumeSeries(workouts []domain.Workout, splitNames []string) map[string][]VolumePoint {
	series := make(map[string][]VolumePoint, len(splitNames))
	for _, name := range splitNames {
		series[name] = []VolumePoint{}
	}
	for _, w := range workouts {
		vol := WorkoutVolume(w)
		if vol <= 0 {
			continue
		}
		if _, ok := series[w.Split]; !ok {
			continue
		}
		series[w.Split] = append(series[w.Split], VolumePoint{Date: w.Date, Volume: roundInt(vol)})
	}
	for name := range series {
		points := series[name]
		sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
		series[name] = points
	}
	return series
}

// weeklyBuckets is the number of calendar weeks covered by WeeklyVolume.
const weeklyBuckets = 8

// WeekVolume is one bar of the weekly volume histogram.
type WeekVolume struct {
	WeekStart string `json:"weekStart"`
	Volume    int    `json:"volume"`
}

// WeeklyVolume sums non-rest-day volume into the 8 most recent calendar
// weeks (Sunday-anchored, relative to today). Weeks without workouts report
// 0 rather than being absent.
func WeeklyVolume(workouts []domain.Workout, today time.Time) []WeekVolume {
	buckets := make(map[string]float64, weeklyBuckets)
	starts := make([]string, 0, weeklyBuckets)
	for i := weeklyBuckets - 1; i >= 0; i-- {
		start := weekStart(today.AddDate(0, 0, -7*i))
		key := domain.FormatDate(start)
		if _, ok := buckets[key]; !ok {
			buckets[key] = 0
			starts = append(starts, key)
		}
	}

	for _, w := range workouts {
		if w.IsRestDay {
			continue
		}
		day, ok := parseDay(w.Date)
		if !ok {
			continue
		}
		key := domain.FormatDate(weekStart(day))
		if _, ok := buckets[key]; !ok {
			continue // outside the charted window
		}
		buckets[key] += WorkoutVolume(w)
	}

	out := make([]WeekVolume, 0, len(starts))
	for _, key := range starts {
		out = append(out, WeekVolume{WeekStart: key, Volume: roundInt(buckets[key])})
	}
	return out
}
