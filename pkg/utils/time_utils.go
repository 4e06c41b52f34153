package utils

import "time"

const monthKeyLayout = "2006-01"

func NowUTC() time.Time { return time.Now().UTC() }

func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthKey renders t as "YYYY-MM" in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

// LastMonths returns the keys of the n months ending with the month of now,
// oldest first.
func LastMonths(now time.Time, n int) []string {
	start := StartOfMonth(now)
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[n-1-i] = MonthKey(start.AddDate(0, -i, 0))
	}
	return keys
}
