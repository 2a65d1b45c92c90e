package interaction

import (
	"sort"

	"github.com/wellkit/wellkit/internal/types"
)

// Detector finds known pairwise interactions among a user's active
// medications. Pure: no mutation, no I/O.
type Detector struct {
	index *Index
}

// NewDetector creates a detector over a prebuilt index.
func NewDetector(index *Index) *Detector {
	return &Detector{index: index}
}

// Detect returns every known interaction among the combined set of
// active medication names plus the optional candidate (pass "" for
// none). The candidate is appended as-is, not deduplicated against the
// actives by normalized identity: two active entries for the same drug
// at different dosages will each pair against a third drug and can
// produce duplicate matches. That mirrors how checks behaved before the
// index existed and is pinned by tests; dedupe would silently hide a
// double entry from the user.
//
// Pair generation is O(k^2) with k the concurrent medication count
// (bounded, typically under 50); each lookup is O(1). An empty active
// list, with or without a candidate, yields an empty result.
//
// Results carry no ordering guarantee beyond pair-generation order;
// callers wanting severity-ranked output use SortBySeverity.
func (d *Detector) Detect(active []string, candidate string) []types.InteractionMatch {
	names := make([]string, 0, len(active)+1)
	names = append(names, active...)
	if candidate != "" {
		names = append(names, candidate)
	}

	var matches []types.InteractionMatch
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a := Normalize(names[i])
			b := Normalize(names[j])
			for _, rec := range d.index.Lookup(a, b) {
				matches = append(matches, types.InteractionMatch{
					Med1:        names[i],
					Med2:        names[j],
					Interaction: rec,
				})
			}
		}
	}

	return matches
}

// ActiveNames extracts the display names of active medications. Only
// entries with Active == true participate in detection.
func ActiveNames(meds []*types.MedicationEntry) []string {
	var names []string
	for _, med := range meds {
		if med.Active {
			names = append(names, med.Name)
		}
	}
	return names
}

// SortBySeverity orders matches most dangerous first (SEVERE, then
// MODERATE, then MINOR), preserving pair-generation order within a
// severity level.
func SortBySeverity(matches []types.InteractionMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Interaction.Severity.Rank() > matches[j].Interaction.Severity.Rank()
	})
}
