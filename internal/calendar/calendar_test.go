package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/booking-assistant/internal/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestQuarterBounds covers one instant per quarter plus the year rollover:
// the Q4 end bound must land on January 1 of the following year.
func TestQuarterBounds(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"Q1", date(2025, time.February, 15), date(2025, time.January, 1), date(2025, time.April, 1)},
		{"Q2", date(2025, time.May, 31), date(2025, time.April, 1), date(2025, time.July, 1)},
		{"Q3", date(2025, time.July, 1), date(2025, time.July, 1), date(2025, time.October, 1)},
		{"Q4 rolls into next year", date(2025, time.November, 15), date(2025, time.October, 1), date(2026, time.January, 1)},
		{"Q4 late December", date(2025, time.December, 31), date(2025, time.October, 1), date(2026, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := calendar.QuarterBounds(tt.now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

// TestQuarterBounds_timeOfDayIgnored verifies that the hour of "now" never
// shifts the bounds — only the calendar date matters.
func TestQuarterBounds_timeOfDayIgnored(t *testing.T) {
	now := time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)

	start, end := calendar.QuarterBounds(now)

	assert.Equal(t, date(2025, time.January, 1), start)
	assert.Equal(t, date(2025, time.April, 1), end)
}

func TestContains(t *testing.T) {
	start := date(2025, time.March, 1)
	end := date(2025, time.March, 10)

	tests := []struct {
		name  string
		point time.Time
		want  bool
	}{
		{"inside", date(2025, time.March, 5), true},
		{"equal to start is contained", start, true},
		{"equal to end is contained", end, true},
		{"before start", date(2025, time.February, 28), false},
		{"after end", date(2025, time.March, 11), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.Contains(tt.point, start, end))
		})
	}
}
