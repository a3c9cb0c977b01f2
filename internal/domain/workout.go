package domain

import (
	"math"
	"strconv"
	"strings"
)

// RestSplitName is the sentinel split assigned to explicit rest-day entries.
const RestSplitName = "Descanso"

// Set is a single logged set of an exercise. Weight and reps are stored as
// the raw text the user typed so a half-filled form can round-trip through
// the store; consumers parse via ParsedWeight/ParsedReps, which treat empty
// or non-numeric input as 0.
type Set struct {
	Weight string `bson:"weight" json:"weight"`
	Reps   string `bson:"reps" json:"reps"`
}

// ParsedWeight returns the numeric weight of the set, or 0 when the field is
// empty or not a number.
func (s Set) ParsedWeight() float64 {
	return parseDecimal(s.Weight)
}

// ParsedReps returns the numeric rep count of the set, or 0 when the field is
// empty or not a number.
func (s Set) ParsedReps() float64 {
	return parseDecimal(s.Reps)
}

// IsValid reports whether the set counts for storage and statistics.
// Both weight and reps must parse to a positive number; this is the single
// validity rule applied on the save path and on every read path.
func (s Set) IsValid() bool {
	return s.ParsedWeight() > 0 && s.ParsedReps() > 0
}

// Volume is weight x reps for a valid set, 0 otherwise.
func (s Set) Volume() float64 {
	if !s.IsValid() {
		return 0
	}
	return s.ParsedWeight() * s.ParsedReps()
}

func parseDecimal(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Exercise is one exercise performed within a workout. The ID is the
// creation timestamp in milliseconds, unique within the workout.
type Exercise struct {
	ID   int64  `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Sets []Set  `bson:"sets" json:"sets"`
}

// ValidSets returns the sets that pass the validity rule, preserving order.
func (e Exercise) ValidSets() []Set {
	valid := make([]Set, 0, len(e.Sets))
	for _, s := range e.Sets {
		if s.IsValid() {
			valid = append(valid, s)
		}
	}
	return valid
}

// Workout is one training session. The date string is the document key
// within a user's collection, so there is at most one workout per user per
// calendar date and writes are idempotent upserts. A rest-day entry has
// IsRestDay set, an empty exercise list and the Descanso sentinel split.
type Workout struct {
	ID        int64      `bson:"id" json:"id"`
	UserID    string     `bson:"userId" json:"-"` // denormalized owner, mirrors the per-user scoping of the store
	Date      string     `bson:"date" json:"date"`
	Split     string     `bson:"split" json:"split"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
	IsRestDay bool       `bson:"isRestDay,omitempty" json:"isRestDay,omitempty"`
}
