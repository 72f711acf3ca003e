package bedtime

import (
	"strconv"
	"strings"
	"time"
)

// WakeSeconds returns the seconds elapsed since midnight at t's hour and
// minute. Seconds and sub-second parts are ignored.
func WakeSeconds(t time.Time) int {
	return t.Hour()*60*60 + t.Minute()*60
}

// ParseWake reads an "HH:MM" clock value on the given day.
// Components that cannot be read are treated as 0, so "7:xx" is 07:00 and
// an unreadable string is midnight.
func ParseWake(s string, day time.Time) time.Time {
	hourPart, minutePart, _ := strings.Cut(strings.TrimSpace(s), ":")

	hour := clockComponent(hourPart, 23)
	minute := clockComponent(minutePart, 59)

	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, day.Location())
}

func clockComponent(s string, maxValue int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > maxValue {
		return 0
	}
	return v
}

// FormatShort formats t as a short local time, "11:10 PM" or "23:10".
func FormatShort(t time.Time, clock24 bool) string {
	if clock24 {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}
