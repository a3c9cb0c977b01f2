package domain

// BodyMeasurement is one body-measurement entry, keyed by date (one per user
// per calendar date, merged on save). Optional tape measurements are pointers
// so an absent field is distinguishable from a recorded zero.
type BodyMeasurement struct {
	ID     int64    `bson:"id" json:"id"`
	UserID string   `bson:"userId" json:"-"`
	Date   string   `bson:"date" json:"date"`
	Weight float64  `bson:"weight" json:"weight"` // kg
	Chest  *float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist  *float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips   *float64 `bson:"hips,omitempty" json:"hips,omitempty"`
	Biceps *float64 `bson:"biceps,omitempty" json:"biceps,omitempty"`
	Thighs *float64 `bson:"thighs,omitempty" json:"thighs,omitempty"`
}
