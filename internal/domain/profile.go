package domain

// UserProfile is the singleton per-user profile document.
type UserProfile struct {
	Age             int     `bson:"age" json:"age"`
	Height          float64 `bson:"height" json:"height"` // cm
	Weight          float64 `bson:"weight" json:"weight"` // kg
	RestDaysPerWeek int     `bson:"restDaysPerWeek,omitempty" json:"restDaysPerWeek"`
}

// MaxRestDaysPerWeek bounds the weekly rest-day allowance; Sunday is already
// exempt from streaks so six configurable rest days cover the whole week.
const MaxRestDaysPerWeek = 6
