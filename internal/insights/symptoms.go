package insights

import (
	"sort"
	"time"

	"github.com/wellkit/wellkit/internal/types"
)

// SymptomImpact extends the correlation result with the mean logged
// severity of the symptom type.
type SymptomImpact struct {
	types.CorrelationResult
	MeanSeverity float64
}

// symptomImpacts measures, per distinct symptom type, how mood on the
// calendar days that type was logged compares to the baseline. Unlike
// triggers this uses whole calendar days, not a rolling window: a
// symptom colors the entire day it was logged on.
//
// Records without a usable severity are excluded entirely. Types with
// no mood entries on their days are skipped. Ranked ascending by
// impact, truncated to TopN.
func (e *Engine) symptomImpacts(moods []*types.MoodEntry, symptoms []*types.SymptomEntry, baseline float64) []SymptomImpact {
	type typeStats struct {
		days        map[time.Time]bool
		severitySum int
		count       int
	}

	byType := make(map[string]*typeStats)
	var order []string // deterministic iteration, first-logged first
	for _, s := range symptoms {
		if s.Type == "" || !s.HasSeverity() {
			continue
		}
		st, ok := byType[s.Type]
		if !ok {
			st = &typeStats{days: make(map[time.Time]bool)}
			byType[s.Type] = st
			order = append(order, s.Type)
		}
		st.days[dayOf(s.Timestamp)] = true
		st.severitySum += s.Severity
		st.count++
	}

	var results []SymptomImpact
	for _, symptomType := range order {
		st := byType[symptomType]

		sum := 0
		count := 0
		for _, m := range moods {
			if st.days[dayOf(m.Timestamp)] {
				sum += m.Rating
				count++
			}
		}
		if count == 0 {
			continue
		}

		conditioned := float64(sum) / float64(count)
		results = append(results, SymptomImpact{
			CorrelationResult: types.CorrelationResult{
				Subject:         symptomType,
				ConditionedMean: conditioned,
				BaselineMean:    baseline,
				Impact:          conditioned - baseline,
				SampleSize:      count,
			},
			MeanSeverity: float64(st.severitySum) / float64(st.count),
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
