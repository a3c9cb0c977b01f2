package stats

import (
	"sort"

	"arnold/tracker/internal/domain"
)

// WeightRecord is the heaviest single set ever logged for an exercise,
// together with when it happened and the reps performed at that weight.
type WeightRecord struct {
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
	Reps   float64 `json:"reps"`
}

// VolumeRecord is the highest single-session volume for an exercise.
type VolumeRecord struct {
	Volume float64 `json:"volume"`
	Date   string  `json:"date"`
}

// RepsRecord is the highest single-set rep count for an exercise, with the
// weight moved at that count.
type RepsRecord struct {
	Reps   float64 `json:"reps"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// PersonalRecord bundles the three records of one exercise.
type PersonalRecord struct {
	Exercise  string       `json:"exercise"`
	MaxWeight WeightRecord `json:"maxWeight"`
	MaxVolume VolumeRecord `json:"maxVolume"`
	MaxReps   RepsRecord   `json:"maxReps"`
}

// PersonalRecords folds the workout list into per-exercise records. Only
// strictly greater values replace a record, so on ties the first occurrence
// in list order wins. Exercises without a single valid set are omitted.
// The result is sorted by max weight descending.
func PersonalRecords(workouts []domain.Workout) []PersonalRecord {
	maxWeight := make(map[string]WeightRecord)
	maxVolume := make(map[string]VolumeRecord)
	maxReps := make(map[string]RepsRecord)
	order := make([]string, 0)

	for _, w := range workouts {
		for _, e := range w.Exercises {
			for _, s := range e.Sets {
				if !s.IsValid() {
					continue
				}
				weight, reps := s.ParsedWeight(), s.ParsedReps()
				if rec, ok := maxWeight[e.Name]; !ok || weight > rec.Weight {
					if !ok {
						order = append(order, e.Name)
					}
					maxWeight[e.Name] = WeightRecord{Weight: weight, Date: w.Date, Reps: reps}
				}
				if rec, ok := maxReps[e.Name]; !ok || reps > rec.Reps {
					maxReps[e.Name] = RepsRecord{Reps: reps, Date: w.Date, Weight: weight}
				}
			}

			vol := ExerciseVolume(e)
			if rec, ok := maxVolume[e.Name]; !ok || vol > rec.Volume {
				maxVolume[e.Name] = VolumeRecord{Volume: vol, Date: w.Date}
			}
		}
	}

	records := make([]PersonalRecord, 0, len(order))
	for _, name := range order {
		records = append(records, PersonalRecord{
			Exercise:  name,
			MaxWeight: maxWeight[name],
			MaxVolume: maxVolume[name],
			MaxReps:   maxReps[name],
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MaxWeight.Weight > records[j].MaxWeight.Weight
	})
	return records
}
