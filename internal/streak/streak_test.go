package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wellkit/wellkit/internal/types"
)

var testNow = time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

// day returns a timestamp n days before testNow.
func day(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name     string
		times    []time.Time
		expected int
	}{
		{"three consecutive days ending today", []time.Time{day(0), day(1), day(2)}, 3},
		{"gap at today and yesterday", []time.Time{day(2), day(3)}, 0},
		{"anchored at yesterday", []time.Time{day(1), day(2)}, 2},
		{"today only", []time.Time{day(0)}, 1},
		{"gap mid-run stops the walk", []time.Time{day(0), day(1), day(3), day(4)}, 2},
		{"multiple entries per day count once", []time.Time{day(0), day(0).Add(-2 * time.Hour), day(1)}, 2},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Current(tt.times, testNow))
		})
	}
}

func TestLongest(t *testing.T) {
	tests := []struct {
		name     string
		times    []time.Time
		expected int
	}{
		{"single run", []time.Time{day(0), day(1), day(2)}, 3},
		{"two runs separated by a gap", []time.Time{day(0), day(1), day(2), day(5), day(6), day(7)}, 3},
		{"longest run is historical", []time.Time{day(0), day(4), day(5), day(6), day(7)}, 4},
		{"single day", []time.Time{day(3)}, 1},
		{"duplicates within a day", []time.Time{day(1), day(1).Add(time.Hour), day(2)}, 2},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Longest(tt.times))
		})
	}
}

func TestCompute(t *testing.T) {
	// Current run of 2, historical run of 3.
	times := []time.Time{day(0), day(1), day(4), day(5), day(6)}

	state := Compute(times, testNow)

	assert.Equal(t, types.StreakState{Current: 2, Longest: 3}, state)
}

func TestCurrent_DifferentLocationsSameDate(t *testing.T) {
	// A timestamp recorded in another zone on the same calendar date
	// counts toward the same day.
	loc := time.FixedZone("plus2", 2*60*60)
	times := []time.Time{
		time.Date(2026, 8, 31, 9, 0, 0, 0, loc),
		day(1),
	}

	assert.Equal(t, 2, Current(times, testNow))
}

func TestAdherenceDays(t *testing.T) {
	doses := []*types.DoseEntry{
		{Timestamp: day(0), Taken: true},
		{Timestamp: day(1), Taken: true},
		{Timestamp: day(1).Add(-6 * time.Hour), Taken: false}, // missed dose disqualifies day 1
		{Timestamp: day(2), Taken: false},                     // no taken dose on day 2
		{Timestamp: day(3), Taken: true},
	}

	days := AdherenceDays(doses)

	assert.Len(t, days, 2)
	assert.Equal(t, 1, Current(days, testNow)) // day 1 disqualified, so only today counts
}

func TestAdherenceDays_Empty(t *testing.T) {
	assert.Empty(t, AdherenceDays(nil))
}

func TestMoodDays(t *testing.T) {
	moods := []*types.MoodEntry{
		{Timestamp: day(0), Rating: 7},
		{Timestamp: day(1), Rating: 4},
	}

	times := MoodDays(moods)

	assert.Equal(t, 2, Current(times, testNow))
}
