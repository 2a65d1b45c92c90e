// Package streak computes consecutive-day streaks over dated event logs.
//
// Callers decide what makes a calendar day qualifying (at least one mood
// entry, or for adherence at least one taken dose and zero missed ones)
// and pass in the qualifying timestamps; the functions here only reduce
// them to unique calendar days and count runs. Everything is pure: empty
// input yields zero, never an error.
package streak

import (
	"sort"
	"time"

	"github.com/wellkit/wellkit/internal/types"
)

// dayOf truncates a timestamp to its calendar date as recorded (in the
// timestamp's own location). The result is normalized to UTC so days
// from differently-located timestamps compare equal with ==.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// uniqueDays reduces timestamps to their unique calendar days, sorted
// ascending.
func uniqueDays(times []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(times))
	for _, t := range times {
		seen[dayOf(t)] = true
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Current returns the streak of consecutive qualifying days ending at
// now's calendar day, or at yesterday if today has no entry yet. If
// neither today nor yesterday qualifies the streak is 0: a one-day gap
// breaks it.
func Current(times []time.Time, now time.Time) int {
	if len(times) == 0 {
		return 0
	}

	qualifying := make(map[time.Time]bool, len(times))
	for _, t := range times {
		qualifying[dayOf(t)] = true
	}

	today := dayOf(now)
	anchor := today
	if !qualifying[anchor] {
		anchor = today.AddDate(0, 0, -1)
		if !qualifying[anchor] {
			return 0
		}
	}

	count := 0
	for day := anchor; qualifying[day]; day = day.AddDate(0, 0, -1) {
		count++
	}
	return count
}

// Longest returns the longest run of consecutive qualifying days
// anywhere in the log.
func Longest(times []time.Time) int {
	days := uniqueDays(times)
	if len(days) == 0 {
		return 0
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Compute returns both streaks in one pass over the same timestamps.
func Compute(times []time.Time, now time.Time) types.StreakState {
	return types.StreakState{
		Current: Current(times, now),
		Longest: Longest(times),
	}
}

// AdherenceDays reduces dose events to the timestamps of qualifying
// adherence days: a day qualifies only when it has at least one taken
// dose and zero missed ones. A day with a missed dose is disqualifying,
// not merely "no data".
func AdherenceDays(doses []*types.DoseEntry) []time.Time {
	taken := make(map[time.Time]bool)
	missed := make(map[time.Time]bool)
	for _, dose := range doses {
		day := dayOf(dose.Timestamp)
		if dose.Taken {
			taken[day] = true
		} else {
			missed[day] = true
		}
	}

	var days []time.Time
	for day := range taken {
		if !missed[day] {
			days = append(days, day)
		}
	}
	return days
}

// MoodDays extracts the timestamps of mood entries; every day with at
// least one entry qualifies.
func MoodDays(moods []*types.MoodEntry) []time.Time {
	times := make([]time.Time, 0, len(moods))
	for _, m := range moods {
		times = append(times, m.Timestamp)
	}
	return times
}
