// Package dates holds the calendar-date helpers the lifecycle engine and
// the statistics queries share. Both sides must agree on the exact string
// for "today": streaks and completion counts compare end dates by string
// equality.
package dates

import "time"

const Layout = "2006-01-02"

// Today returns the current calendar date in the local timezone.
func Today() string {
	return time.Now().Format(Layout)
}

// Add shifts a calendar date by n days.
func Add(date string, n int) (string, error) {
	t, err := time.ParseInLocation(Layout, date, time.Local)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(Layout), nil
}
