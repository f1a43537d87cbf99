package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateDate reduces an upstream timestamp ("2024-01-02T15:00:00Z" or a
// bare date) to its calendar-date prefix. Input shorter than a full date is
// returned unchanged.
func TruncateDate(value string) string {
	if len(value) <= len(DateLayout) {
		return value
	}
	return value[:len(DateLayout)]
}

// LastDayOfMonth returns the final calendar day of the given month,
// accounting for leap years.
func LastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}
