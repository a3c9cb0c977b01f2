package stats

import (
	"sort"

	"arnold/tracker/internal/domain"
)

// ExerciseVolume is the summed weight x reps over an exercise's valid sets.
func ExerciseVolume(e domain.Exercise) float64 {
	var total float64
	for _, s := range e.Sets {
		total += s.Volume()
	}
	return total
}

// WorkoutVolume is the total volume of one session.
func WorkoutVolume(w domain.Workout) float64 {
	var total float64
	for _, e := range w.Exercises {
		total += ExerciseVolume(e)
	}
	return total
}

// TotalVolume is the all-time volume across every workout. Sets with a
// non-positive or unparseable weight or rep count contribute 0; the result is
// never negative.
func TotalVolume(workouts []domain.Workout) float64 {
	var total float64
	for _, w := range workouts {
		total += WorkoutVolume(w)
	}
	return total
}

// ExerciseVolumeSummary aggregates an exercise's lifetime volume across
// sessions. Rounded values, ready for display.
type ExerciseVolumeSummary struct {
	Name        string `json:"name"`
	TotalVolume int    `json:"totalVolume"`
	Sessions    int    `json:"sessions"`
	AvgVolume   int    `json:"avgVolume"`
}

// VolumeByExercise returns per-exercise lifetime totals sorted by total
// volume descending (name ascending on ties, for stable output).
func VolumeByExercise(workouts []domain.Workout) []ExerciseVolumeSummary {
	type acc struct {
		total    float64
		sessions int
	}
	byName := make(map[string]*acc)
	for _, w := range workouts {
		for _, e := range w.Exercises {
			a := byName[e.Name]
			if a == nil {
				a = &acc{}
				byName[e.Name] = a
			}
			a.total += ExerciseVolume(e)
			a.sessions++
		}
	}

	out := make([]ExerciseVolumeSummary, 0, len(byName))
	for name, a := range byName {
		out = append(out, ExerciseVolumeSummary{
			Name:        name,
			TotalVolume: roundInt(a.total),
			Sessions:    a.sessions,
			AvgVolume:   roundInt(a.total / float64(a.sessions)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalVolume != out[j].TotalVolume {
			return out[i].TotalVolume > out[j].TotalVolume
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ExercisesWithData returns the sorted names of exercises that have at least
// one valid logged set, for populating progression charts.
func ExercisesWithData(workouts []domain.Workout) []string {
	seen := make(map[string]bool)
	for _, w := range workouts {
		for _, e := range w.Exercises {
			if !seen[e.Name] && len(e.ValidSets()) > 0 {
				seen[e.Name] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
