package insights

import (
	"sort"
	"time"

	"github.com/wellkit/wellkit/internal/types"
)

// SymptomPair is a pair of distinct symptom types logged on the same
// calendar day, with the number of days it was observed. TypeA sorts
// lexically before TypeB.
type SymptomPair struct {
	TypeA string
	TypeB string
	Count int
}

// CooccurrenceReport is the clustering result. InsufficientData is set
// when fewer than MinSymptomRecords records exist, so the presentation
// layer reports "not enough data for clustering" instead of an empty,
// misleading pair list.
type CooccurrenceReport struct {
	InsufficientData bool
	TotalRecords     int
	Pairs            []SymptomPair
}

// cooccurrence groups symptom records by calendar day and counts, for
// every day carrying at least two distinct types, all unordered type
// pairs present that day. Pair keys are sorted lexically so (a,b) and
// (b,a) accumulate together. Returns the TopN most frequent pairs.
func (e *Engine) cooccurrence(symptoms []*types.SymptomEntry) *CooccurrenceReport {
	total := 0
	byDay := make(map[time.Time]map[string]bool)
	for _, s := range symptoms {
		if s.Type == "" {
			continue
		}
		total++
		day := dayOf(s.Timestamp)
		if byDay[day] == nil {
			byDay[day] = make(map[string]bool)
		}
		byDay[day][s.Type] = true
	}

	if total < e.MinSymptomRecords {
		return &CooccurrenceReport{
			InsufficientData: true,
			TotalRecords:     total,
		}
	}

	freq := make(map[[2]string]int)
	for _, typesPresent := range byDay {
		if len(typesPresent) < 2 {
			continue
		}

		distinct := make([]string, 0, len(typesPresent))
		for typ := range typesPresent {
			distinct = append(distinct, typ)
		}
		sort.Strings(distinct)

		for i := 0; i < len(distinct); i++ {
			for j := i + 1; j < len(distinct); j++ {
				freq[[2]string{distinct[i], distinct[j]}]++
			}
		}
	}

	pairs := make([]SymptomPair, 0, len(freq))
	for key, count := range freq {
		pairs = append(pairs, SymptomPair{TypeA: key[0], TypeB: key[1], Count: count})
	}
	// Most frequent first; ties break lexically for determinism.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].TypeA != pairs[j].TypeA {
			return pairs[i].TypeA < pairs[j].TypeA
		}
		return pairs[i].TypeB < pairs[j].TypeB
	})
	if len(pairs) > e.TopN {
		pairs = pairs[:e.TopN]
	}

	return &CooccurrenceReport{
		TotalRecords: total,
		Pairs:        pairs,
	}
}
