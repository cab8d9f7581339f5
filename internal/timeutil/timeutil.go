package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Window returns the UTC calendar dates for now and now plus days.
// Calendar arithmetic keeps the span stable across DST changes in other zones.
func Window(now time.Time, days int) (from, to string) {
	start := now.UTC()
	return FormatDate(start), FormatDate(start.AddDate(0, 0, days))
}
