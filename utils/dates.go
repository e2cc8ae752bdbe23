// utils/dates.go
package utils

import (
	"errors"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseSlot combines a "2006-01-02" date and a "15:04" time into the date at
// midnight UTC plus the full instant the slot starts.
func ParseSlot(date, clock string) (day time.Time, at time.Time, err error) {
	day, err = time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid date format, expected YYYY-MM-DD")
	}
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid time format, expected HH:MM")
	}
	at = time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, time.UTC)
	return day, at, nil
}
