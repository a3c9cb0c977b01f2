package stats

import (
	"testing"
	"time"

	"arnold/tracker/internal/domain"
)

// Calendar used across the suite: 2025-06-01 is a Sunday, so 2025-06-02..07
// run Monday through Saturday and 2025-06-09 is the following Monday.

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func set(weight, reps string) domain.Set {
	return domain.Set{Weight: weight, Reps: reps}
}

func exercise(name string, sets ...domain.Set) domain.Exercise {
	return domain.Exercise{ID: 1, Name: name, Sets: sets}
}

func training(date, split string, exercises ...domain.Exercise) domain.Workout {
	return domain.Workout{ID: 1, Date: date, Split: split, Exercises: exercises}
}

// session is a one-exercise session with a single valid set, enough for the
// date-walking tests that only care about presence.
func session(date string) domain.Workout {
	return training(date, "Pecho y Espalda", exercise("Press Banca", set("60", "10")))
}

func restDay(date string) domain.Workout {
	return domain.Workout{ID: 1, Date: date, Split: domain.RestSplitName, IsRestDay: true}
}
