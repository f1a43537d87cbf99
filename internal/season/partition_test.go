package season

import (
	"testing"
	"time"

	"nba-ingest/internal/timeutil"
)

func TestPartitionCoversSeasonSpan(t *testing.T) {
	windows := Partition(2023)
	if len(windows) != 9 {
		t.Fatalf("expected 9 month windows, got %d", len(windows))
	}
	if windows[0].Start != "2023-10-01" {
		t.Fatalf("expected season to open 2023-10-01, got %s", windows[0].Start)
	}
	if windows[len(windows)-1].End != "2024-06-30" {
		t.Fatalf("expected season to close 2024-06-30, got %s", windows[len(windows)-1].End)
	}
}

func TestPartitionHasNoGapsOrOverlaps(t *testing.T) {
	windows := Partition(2023)

	for i, w := range windows {
		start, err := timeutil.ParseDate(w.Start)
		if err != nil {
			t.Fatalf("window %d start unparseable: %v", i, err)
		}
		end, err := timeutil.ParseDate(w.End)
		if err != nil {
			t.Fatalf("window %d end unparseable: %v", i, err)
		}
		if !start.Before(end) {
			t.Fatalf("window %d start %s not before end %s", i, w.Start, w.End)
		}
		if i == 0 {
			continue
		}
		prevEnd, _ := timeutil.ParseDate(windows[i-1].End)
		if got := prevEnd.AddDate(0, 0, 1); !got.Equal(start) {
			t.Fatalf("window %d starts %s, expected day after previous end %s", i, w.Start, windows[i-1].End)
		}
	}
}

func TestPartitionIncludesLeapDay(t *testing.T) {
	// Season 2023 crosses into 2024, a leap year.
	for _, w := range Partition(2023) {
		if w.Start == "2024-02-01" {
			if w.End != "2024-02-29" {
				t.Fatalf("expected leap February to end on the 29th, got %s", w.End)
			}
			return
		}
	}
	t.Fatal("expected a February window")
}

func TestPartitionYearRollover(t *testing.T) {
	windows := Partition(2021)
	byStartMonth := map[time.Month]Window{}
	for _, w := range windows {
		start, err := timeutil.ParseDate(w.Start)
		if err != nil {
			t.Fatalf("unparseable start: %v", err)
		}
		byStartMonth[start.Month()] = w
	}
	if byStartMonth[time.December].Start != "2021-12-01" {
		t.Fatalf("expected December in season year, got %s", byStartMonth[time.December].Start)
	}
	if byStartMonth[time.January].Start != "2022-01-01" {
		t.Fatalf("expected January in following year, got %s", byStartMonth[time.January].Start)
	}
}
