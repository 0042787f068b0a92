package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMinutesToClock(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		minutes  int
		expected string
	}{
		{name: "plain half hour", start: "09:00", minutes: 30, expected: "09:30:00"},
		{name: "with seconds component", start: "09:00:00", minutes: 30, expected: "09:30:00"},
		{name: "wraps past midnight", start: "23:45", minutes: 30, expected: "00:15:00"},
		{name: "lands exactly on midnight", start: "23:30", minutes: 30, expected: "00:00:00"},
		{name: "hour-long slot", start: "13:15", minutes: 60, expected: "14:15:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := AddMinutesToClock(tc.start, tc.minutes)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestAddMinutesToClockInvalidInput(t *testing.T) {
	_, err := AddMinutesToClock("not-a-clock", 30)
	assert.Error(t, err)
}

func TestClockToMinutes(t *testing.T) {
	minutes, err := ClockToMinutes("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, minutes)

	minutes, err = ClockToMinutes("08:30:45")
	require.NoError(t, err)
	assert.Equal(t, 510, minutes)
}

func TestDayAbbreviation(t *testing.T) {
	// 2025-06-02 is a Monday.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "MON", DayAbbreviation(monday))
}

func TestIsWorkingDay(t *testing.T) {
	assert.True(t, IsWorkingDay("MON,TUE,WED", "TUE"))
	assert.True(t, IsWorkingDay("mon, tue , wed", "TUE"))
	assert.False(t, IsWorkingDay("MON,TUE,WED", "SUN"))
	assert.False(t, IsWorkingDay("", "MON"))
}
