package bedtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWakeSeconds(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         int
	}{
		{0, 0, 0},
		{7, 0, 25200},
		{6, 30, 23400},
		{23, 59, 86340},
	}

	for _, tt := range tests {
		wake := time.Date(2025, 1, 1, tt.hour, tt.minute, 42, 0, time.UTC)
		assert.Equal(t, tt.want, WakeSeconds(wake), "%02d:%02d", tt.hour, tt.minute)
	}
}

func TestParseWake(t *testing.T) {
	day := time.Date(2025, 5, 20, 15, 12, 0, 0, time.UTC)

	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
	}{
		{"07:00", 7, 0},
		{"6:45", 6, 45},
		{" 22:05 ", 22, 5},
		{"7:xx", 7, 0},
		{"xx:30", 0, 30},
		{"25:10", 0, 10},
		{"07:75", 7, 0},
		{"7", 7, 0},
		{"", 0, 0},
		{"not a time", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseWake(tt.input, day)
			assert.Equal(t, time.Date(2025, 5, 20, tt.wantHour, tt.wantMinute, 0, 0, time.UTC), got)
		})
	}
}

func TestParseWake_MalformedIsMidnight(t *testing.T) {
	day := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, WakeSeconds(ParseWake("??", day)))
}

func TestFormatShort(t *testing.T) {
	ts := time.Date(2025, 1, 1, 23, 10, 0, 0, time.UTC)
	assert.Equal(t, "11:10 PM", FormatShort(ts, false))
	assert.Equal(t, "23:10", FormatShort(ts, true))

	morning := time.Date(2025, 1, 1, 7, 5, 0, 0, time.UTC)
	assert.Equal(t, "7:05 AM", FormatShort(morning, false))
	assert.Equal(t, "07:05", FormatShort(morning, true))
}
