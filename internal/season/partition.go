// Package season splits an NBA season into bounded date windows so that any
// single games fetch stays within the upstream API's practical result limits.
package season

import (
	"time"

	"nba-ingest/internal/timeutil"
)

// An NBA season conventionally runs October of the season year through June
// of the following calendar year.
const (
	firstMonth = time.October
	lastMonth  = time.June
)

// Window is an inclusive calendar date range, ISO formatted.
type Window struct {
	Start string
	End   string
}

// Partition returns ordered, non-overlapping month windows covering the full
// season span. October through December fall in the season year, January
// through June in the year after.
func Partition(season int) []Window {
	months := []time.Month{
		time.October, time.November, time.December,
		time.January, time.February, time.March,
		time.April, time.May, time.June,
	}

	windows := make([]Window, 0, len(months))
	for _, month := range months {
		year := season
		if month < firstMonth {
			year = season + 1
		}
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		end := timeutil.LastDayOfMonth(year, month)
		windows = append(windows, Window{
			Start: timeutil.FormatDate(start),
			End:   timeutil.FormatDate(end),
		})
	}
	return windows
}
