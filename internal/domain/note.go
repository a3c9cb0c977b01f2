package domain

import "fmt"

// QuickNote is a short free-text note attached to a calendar date. Unlike
// workouts and measurements, several notes may exist for the same date, so
// the document key is the date_id composite.
type QuickNote struct {
	ID        int64  `bson:"id" json:"id"`
	UserID    string `bson:"userId" json:"-"`
	Date      string `bson:"date" json:"date"`
	Content   string `bson:"content" json:"content"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"` // unix millis
	Color     string `bson:"color,omitempty" json:"color,omitempty"`
}

// Key returns the composite document key for the note.
func (n QuickNote) Key() string {
	return fmt.Sprintf("%s_%d", n.Date, n.ID)
}
