package insights

import (
	"time"

	"github.com/wellkit/wellkit/internal/types"
)

// Engine runs the four correlation analyses. The zero thresholds are
// never used directly; construct with NewEngine.
type Engine struct {
	// MinMoodSamples is the global gate: below this many usable mood
	// entries no analysis runs at all.
	// Default: 5
	MinMoodSamples int

	// MinSymptomRecords gates the co-occurrence clustering.
	// Default: 10
	MinSymptomRecords int

	// MinWeekdays is the number of distinct weekdays that must have
	// data before the day-of-week pattern is reported.
	// Default: 3
	MinWeekdays int

	// TopN limits ranked sections (trigger impacts, symptom impacts,
	// co-occurring pairs).
	// Default: 3
	TopN int

	// TriggerWindow is how long after a trigger's last occurrence a
	// mood entry is attributed to it.
	// Default: 24h
	TriggerWindow time.Duration
}

// NewEngine creates an engine with the standard thresholds.
func NewEngine() *Engine {
	return &Engine{
		MinMoodSamples:    5,
		MinSymptomRecords: 10,
		MinWeekdays:       3,
		TopN:              3,
		TriggerWindow:     24 * time.Hour,
	}
}

// Report is the combined output of all four analyses. A nil section
// means that analysis was skipped for lack of input; the section types
// carry their own insufficient-data states where the distinction
// matters to the presentation layer.
type Report struct {
	// InsufficientData is set when fewer than MinMoodSamples usable
	// mood entries exist. When set, no other field is populated.
	InsufficientData bool

	// MoodSampleSize is the number of usable mood entries considered.
	MoodSampleSize int

	// BaselineMean is the mean rating over all usable mood entries.
	BaselineMean float64

	// TriggerImpacts are the TopN most harmful triggers, most negative
	// impact first. Empty when no trigger had in-window mood entries.
	TriggerImpacts []types.CorrelationResult

	// SymptomImpacts are the TopN most harmful symptom types.
	SymptomImpacts []SymptomImpact

	// Weekday is nil when fewer than MinWeekdays distinct weekdays
	// have data.
	Weekday *WeekdayPattern

	// Cooccurrence is never nil; it carries its own gate state so the
	// presentation layer can say "not enough data for clustering"
	// instead of showing a misleading empty list.
	Cooccurrence *CooccurrenceReport
}

// Analyze runs every analysis over the given logs. Pure: the inputs are
// not mutated and no I/O happens. Entries missing required numeric
// fields are excluded up front, never coerced to zero.
func (e *Engine) Analyze(moods []*types.MoodEntry, symptoms []*types.SymptomEntry, triggers []*types.TriggerEntry) *Report {
	usable := usableMoods(moods)

	if len(usable) < e.MinMoodSamples {
		return &Report{
			InsufficientData: true,
			MoodSampleSize:   len(usable),
		}
	}

	baseline := meanRating(usable)

	return &Report{
		MoodSampleSize: len(usable),
		BaselineMean:   baseline,
		TriggerImpacts: e.triggerImpacts(usable, triggers, baseline),
		SymptomImpacts: e.symptomImpacts(usable, symptoms, baseline),
		Weekday:        e.weekdayPattern(usable),
		Cooccurrence:   e.cooccurrence(symptoms),
	}
}

// usableMoods filters out entries without a rating in range.
func usableMoods(moods []*types.MoodEntry) []*types.MoodEntry {
	var usable []*types.MoodEntry
	for _, m := range moods {
		if m.HasRating() {
			usable = append(usable, m)
		}
	}
	return usable
}

// meanRating assumes a non-empty slice; every caller sits behind a
// sample-size gate.
func meanRating(moods []*types.MoodEntry) float64 {
	sum := 0
	for _, m := range moods {
		sum += m.Rating
	}
	return float64(sum) / float64(len(moods))
}

// dayOf truncates a timestamp to its calendar date as recorded,
// normalized to UTC so days compare equal with ==.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
