package derive

import "time"

// MonthRange returns the inclusive bounds of now's calendar month:
// [first day 00:00:00, last day 23:59:59]. Bounds are pinned to UTC
// because transaction dates are stored at UTC midnight; building them
// in now's zone would shift the window for anyone west or east of UTC.
func MonthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
