package domain

import "time"

// DateLayout is the canonical YYYY-MM-DD form used as the workout and
// measurement document key.
const DateLayout = "2006-01-02"

// DefaultTimezone anchors every "today" and date-boundary computation.
// Using one fixed civil timezone (rather than the caller's clock or UTC)
// keeps streaks and future-date validation consistent across devices for the
// same logical user-day.
const DefaultTimezone = "America/Bogota"

// CivilDate converts an instant to the civil date it falls on in loc,
// normalized to midnight UTC so that calendar arithmetic (AddDate, Weekday,
// comparisons) is exact and free of DST artifacts.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current civil date in loc.
func Today(loc *time.Location) time.Time {
	return CivilDate(time.Now(), loc)
}

// FormatDate renders a civil date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a civil date (midnight UTC).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
