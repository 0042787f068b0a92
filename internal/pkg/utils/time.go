package utils

import (
	"fmt"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ClockToMinutes converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
// Seconds are ignored.
func ClockToMinutes(clock string) (int, error) {
	parsed, err := parseClock(clock)
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// MinutesToClock renders minutes since midnight as "HH:MM", wrapping past
// midnight.
func MinutesToClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutesToClock adds a duration to a wall-clock start and renders the
// result as "HH:MM:SS", wrapping past midnight. "23:45" plus 30 minutes
// yields "00:15:00".
func AddMinutesToClock(start string, minutes int) (string, error) {
	startMinutes, err := ClockToMinutes(start)
	if err != nil {
		return "", err
	}
	return MinutesToClock(startMinutes+minutes) + ":00", nil
}

// DayAbbreviation renders a date as the three-letter uppercase day name
// used in schedule working-day lists, e.g. "MON".
func DayAbbreviation(t time.Time) string {
	return strings.ToUpper(t.Format("Mon"))
}

// IsWorkingDay reports whether the comma-separated working-days list
// ("MON,TUE,WED") contains the given day. Whitespace around entries is
// tolerated.
func IsWorkingDay(workingDays, day string) bool {
	for _, entry := range strings.Split(workingDays, ",") {
		if strings.EqualFold(strings.TrimSpace(entry), day) {
			return true
		}
	}
	return false
}

func parseClock(clock string) (time.Time, error) {
	if parsed, err := time.Parse("15:04:05", clock); err == nil {
		return parsed, nil
	}
	return time.Parse("15:04", clock)
}
