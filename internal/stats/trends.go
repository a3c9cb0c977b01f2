package stats

import (
	"math"
	"sort"
	"time"

	"arnold/tracker/internal/domain"
)

// Trend metric tags.
const (
	MetricWeight = "weight"
	MetricVolume = "volume"
)

// Thresholds for classifying an exercise as improving or declining. The
// comparison runs on the unrounded percentage so a change that rounds to the
// threshold does not flicker across it; only the reported figure is rounded.
const (
	weightChangeThreshold = 5  // percent, max-weight change
	volumeChangeThreshold = 10 // percent, average session-volume change
)

// TrendChange reports one improving or declining exercise, on whichever
// metric triggered the classification.
type TrendChange struct {
	Name   string  `json:"name"`
	Change int     `json:"change"` // rounded percent, always positive for declines
	Old    float64 `json:"old"`
	New    float64 `json:"new"`
	Metric string  `json:"metric"`
}

// ExerciseTrend is the raw rounded change figures for one exercise trained
// in both comparison windows.
type ExerciseTrend struct {
	Name           string `json:"name"`
	WeightChange   int    `json:"weightChange"`
	VolumeChange   int    `json:"volumeChange"`
	SessionsChange int    `json:"sessionsChange"`
}

// PerformanceStats partitions exercises by their 30-day trend.
type PerformanceStats struct {
	Improving []TrendChange   `json:"improving"`
	Declining []TrendChange   `json:"declining"`
	New       []string        `json:"new"`
	Trends    []ExerciseTrend `json:"trends"`
}

type trendBucket struct {
	maxWeight   float64
	totalVolume float64
	sessions    int
}

func (b trendBucket) avgVolume() float64 {
	if b.sessions == 0 {
		return 0
	}
	return b.totalVolume / float64(b.sessions)
}

// PerformanceTrends compares the recent window [today-30d, today] against the
// older window [today-60d, today-30d). Per exercise it classifies:
//
//	new:       recent activity, nothing in the older window
//	improving: max weight up more than 5%, or average session volume up
//	           more than 10% (the weight check wins)
//	declining: the mirrored thresholds
//	neutral:   anything else, omitted from the improving/declining lists
//
// Exercises that only appear in the older window are not reported.
func PerformanceTrends(workouts []domain.Workout, today time.Time) PerformanceStats {
	out := PerformanceStats{
		Improving: []TrendChange{},
		Declining: []TrendChange{},
		New:       []string{},
		Trends:    []ExerciseTrend{},
	}
	if len(workouts) == 0 {
		return out
	}

	thirtyAgo := today.AddDate(0, 0, -30)
	sixtyAgo := today.AddDate(0, 0, -60)

	recent := make(map[string]*trendBucket)
	older := make(map[string]*trendBucket)
	for _, w := range workouts {
		day, ok := parseDay(w.Date)
		if !ok {
			continue
		}
		switch {
		case within(day, thirtyAgo, today):
			accumulate(recent, w)
		case !day.Before(sixtyAgo) && day.Before(thirtyAgo):
			accumulate(older, w)
		}
	}

	names := make([]string, 0, len(recent))
	for name := range recent {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r := recent[name]
		o := older[name]
		if o == nil {
			o = &trendBucket{}
		}

		if r.maxWeight > 0 && o.maxWeight == 0 {
			out.New = append(out.New, name)
			continue
		}
		if r.maxWeight <= 0 || o.maxWeight <= 0 {
			continue
		}

		weightChange := (r.maxWeight - o.maxWeight) / o.maxWeight * 100
		volumeChange := 0.0
		if o.avgVolume() > 0 {
			volumeChange = (r.avgVolume() - o.avgVolume()) / o.avgVolume() * 100
		}
		sessionsChange := 100.0
		if o.sessions > 0 {
			sessionsChange = float64(r.sessions-o.sessions) / float64(o.sessions) * 100
		}

		out.Trends = append(out.Trends, ExerciseTrend{
			Name:           name,
			WeightChange:   roundInt(weightChange),
			VolumeChange:   roundInt(volumeChange),
			SessionsChange: roundInt(sessionsChange),
		})

		switch {
		case weightChange > weightChangeThreshold:
			out.Improving = append(out.Improving, TrendChange{
				Name: name, Change: roundInt(weightChange),
				Old: o.maxWeight, New: r.maxWeight, Metric: MetricWeight,
			})
		case volumeChange > volumeChangeThreshold:
			out.Improving = append(out.Improving, TrendChange{
				Name: name, Change: roundInt(volumeChange),
				Old: o.avgVolume(), New: r.avgVolume(), Metric: MetricVolume,
			})
		case weightChange < -weightChangeThreshold:
			out.Declining = append(out.Declining, TrendChange{
				Name: name, Change: roundInt(math.Abs(weightChange)),
				Old: o.maxWeight, New: r.maxWeight, Metric: MetricWeight,
			})
		case volumeChange < -volumeChangeThreshold:
			out.Declining = append(out.Declining, TrendChange{
				Name: name, Change: roundInt(math.Abs(volumeChange)),
				Old: o.avgVolume(), New: r.avgVolume(), Metric: MetricVolume,
			})
		}
	}

	sort.SliceStable(out.Improving, func(i, j int) bool { return out.Improving[i].Change > out.Improving[j].Change })
	sort.SliceStable(out.Declining, func(i, j int) bool { return out.Declining[i].Change > out.Declining[j].Change })
	sort.SliceStable(out.Trends, func(i, j int) bool {
		return abs(out.Trends[i].WeightChange) > abs(out.Trends[j].WeightChange)
	})
	return out
}

// accumulate folds one session into an exercise's comparison bucket. The
// session max weight considers valid sets only, consistent with the single
// set-validity rule.
func accumulate(buckets map[string]*trendBucket, w domain.Workout) {
	for _, e := range w.Exercises {
		b := buckets[e.Name]
		if b == nil {
			b = &trendBucket{}
			buckets[e.Name] = b
		}
		for _, s := range e.ValidSets() {
			if s.ParsedWeight() > b.maxWeight {
				b.maxWeight = s.ParsedWeight()
			}
		}
		b.totalVolume += ExerciseVolume(e)
		b.sessions++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
