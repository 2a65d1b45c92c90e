package insights

import (
	"sort"

	"github.com/wellkit/wellkit/internal/types"
)

// triggerImpacts measures how mood in the window
// [LastOccurred, LastOccurred+TriggerWindow) compares to the baseline,
// per trigger. Triggers with no in-window mood entries are skipped, as
// are triggers with no recorded occurrence. Results are ranked
// ascending by impact (most harmful first) and truncated to TopN.
func (e *Engine) triggerImpacts(moods []*types.MoodEntry, triggers []*types.TriggerEntry, baseline float64) []types.CorrelationResult {
	var results []types.CorrelationResult

	for _, trig := range triggers {
		if trig.LastOccurred.IsZero() {
			continue
		}

		windowStart := trig.LastOccurred
		windowEnd := windowStart.Add(e.TriggerWindow)

		sum := 0
		count := 0
		for _, m := range moods {
			if !m.Timestamp.Before(windowStart) && m.Timestamp.Before(windowEnd) {
				sum += m.Rating
				count++
			}
		}
		if count == 0 {
			continue
		}

		conditioned := float64(sum) / float64(count)
		results = append(results, types.CorrelationResult{
			Subject:         trig.Description,
			ConditionedMean: conditioned,
			BaselineMean:    baseline,
			Impact:          conditioned - baseline,
			SampleSize:      count,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Impact < results[j].Impact
	})
	if len(results) > e.TopN {
		results = results[:e.TopN]
	}
	return results
}
