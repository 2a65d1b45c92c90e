package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellkit/wellkit/internal/types"
)

// Baseline mean 6.0 over eight moods. Trigger X is followed within 24h
// by moods averaging 3.0 (impact -3.0); trigger Y by moods averaging
// 5.5 (impact -0.5). X must rank ahead of Y.
func TestTriggerImpacts_SyntheticRanking(t *testing.T) {
	e := NewEngine()

	moods := []*types.MoodEntry{
		// In X's window, starting 2026-08-10 12:00
		mood(10, 13, 3), mood(10, 14, 3),
		// In Y's window, starting 2026-08-20 12:00
		mood(20, 13, 5), mood(20, 14, 6),
		// Far from both windows; brings the overall mean to 6.0
		mood(1, 9, 8), mood(2, 9, 8), mood(3, 9, 8), mood(4, 9, 7),
	}
	triggers := []*types.TriggerEntry{
		{Description: "Y", Intensity: 4, LastOccurred: ts(20, 12)},
		{Description: "X", Intensity: 8, LastOccurred: ts(10, 12)},
	}

	report := e.Analyze(moods, nil, triggers)

	require.False(t, report.InsufficientData)
	assert.InDelta(t, 6.0, report.BaselineMean, 1e-9)

	require.Len(t, report.TriggerImpacts, 2)
	assert.Equal(t, "X", report.TriggerImpacts[0].Subject)
	assert.InDelta(t, -3.0, report.TriggerImpacts[0].Impact, 1e-9)
	assert.InDelta(t, 3.0, report.TriggerImpacts[0].ConditionedMean, 1e-9)
	assert.Equal(t, 2, report.TriggerImpacts[0].SampleSize)

	assert.Equal(t, "Y", report.TriggerImpacts[1].Subject)
	assert.InDelta(t, -0.5, report.TriggerImpacts[1].Impact, 1e-9)
}

func TestTriggerImpacts_WindowBoundaries(t *testing.T) {
	e := NewEngine()

	moods := []*types.MoodEntry{
		{Timestamp: ts(10, 12), Rating: 2},                          // exactly at LastOccurred: in
		{Timestamp: ts(10, 12).Add(24*time.Hour - time.Second), Rating: 2}, // just inside
		{Timestamp: ts(10, 12).Add(24 * time.Hour), Rating: 10},     // exactly +24h: out
		mood(1, 9, 8), mood(2, 9, 8), mood(3, 9, 8),
	}
	triggers := []*types.TriggerEntry{
		{Description: "X", Intensity: 5, LastOccurred: ts(10, 12)},
	}

	report := e.Analyze(moods, nil, triggers)

	require.Len(t, report.TriggerImpacts, 1)
	assert.Equal(t, 2, report.TriggerImpacts[0].SampleSize)
	assert.InDelta(t, 2.0, report.TriggerImpacts[0].ConditionedMean, 1e-9)
}

func TestTriggerImpacts_SkipsTriggersWithoutWindowMoods(t *testing.T) {
	e := NewEngine()

	moods := []*types.MoodEntry{
		mood(1, 9, 6), mood(2, 9, 6), mood(3, 9, 6), mood(4, 9, 6), mood(5, 9, 6),
	}
	triggers := []*types.TriggerEntry{
		{Description: "lonely", Intensity: 5, LastOccurred: ts(20, 12)},
		{Description: "unclocked", Intensity: 5}, // no recorded occurrence
	}

	report := e.Analyze(moods, nil, triggers)

	assert.Empty(t, report.TriggerImpacts)
}

func TestTriggerImpacts_TopN(t *testing.T) {
	e := NewEngine()

	var moods []*types.MoodEntry
	var triggers []*types.TriggerEntry
	// Five triggers on separate days, each with one in-window mood of
	// descending rating; only the three most harmful survive.
	ratings := []int{9, 7, 5, 3, 1}
	names := []string{"a", "b", "c", "d", "e"}
	for i, r := range ratings {
		day := 10 + i*2
		moods = append(moods, mood(day, 13, r))
		triggers = append(triggers, &types.TriggerEntry{
			Description: names[i], Intensity: 5, LastOccurred: ts(day, 12),
		})
	}

	report := e.Analyze(moods, nil, triggers)

	require.Len(t, report.TriggerImpacts, 3)
	assert.Equal(t, "e", report.TriggerImpacts[0].Subject)
	assert.Equal(t, "d", report.TriggerImpacts[1].Subject)
	assert.Equal(t, "c", report.TriggerImpacts[2].Subject)
}
