package types

import (
	"fmt"
	"strings"
	"time"
)

// MedicationEntry represents a medication the user is or was taking.
// Only entries with Active == true participate in interaction detection.
type MedicationEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`   // Display form, e.g. "Aspirin 81mg tablet"
	Dosage    string    `json:"dosage,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks if the medication entry has valid field values
func (m *MedicationEntry) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// MoodEntry is a single logged mood rating.
//
// Rating is required and must be 1-10. A zero Rating means the field was
// absent in the source document; such entries are excluded from aggregate
// computations rather than coerced to zero.
type MoodEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Rating    int       `json:"rating,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// HasRating reports whether the entry carries a usable rating value.
func (m *MoodEntry) HasRating() bool {
	return m.Rating >= 1 && m.Rating <= 10
}

// Validate checks if the mood entry has valid field values
func (m *MoodEntry) Validate() error {
	if m.Rating < 1 || m.Rating > 10 {
		return fmt.Errorf("rating must be between 1 and 10 (got %d)", m.Rating)
	}
	if m.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	return nil
}

// SymptomEntry is a single logged symptom occurrence.
type SymptomEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Severity  int       `json:"severity,omitempty"` // 1-10; zero means absent
}

// HasSeverity reports whether the entry carries a usable severity value.
func (s *SymptomEntry) HasSeverity() bool {
	return s.Severity >= 1 && s.Severity <= 10
}

// Validate checks if the symptom entry has valid field values
func (s *SymptomEntry) Validate() error {
	if strings.TrimSpace(s.Type) == "" {
		return fmt.Errorf("type is required")
	}
	if s.Severity < 1 || s.Severity > 10 {
		return fmt.Errorf("severity must be between 1 and 10 (got %d)", s.Severity)
	}
	if s.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	return nil
}

// TriggerEntry is a logged trigger (stressor, food, situation) with the
// time it last occurred. Mood impact is measured over the 24 hours
// following LastOccurred.
type TriggerEntry struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	Intensity    int       `json:"intensity,omitempty"` // 1-10; zero means absent
	LastOccurred time.Time `json:"last_occurred"`
}

// Validate checks if the trigger entry has valid field values
func (t *TriggerEntry) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if t.Intensity < 1 || t.Intensity > 10 {
		return fmt.Errorf("intensity must be between 1 and 10 (got %d)", t.Intensity)
	}
	if t.LastOccurred.IsZero() {
		return fmt.Errorf("last_occurred is required")
	}
	return nil
}

// DoseEntry records a scheduled dose that was either taken or missed.
// Adherence streaks qualify a day only when it has at least one taken
// dose and zero missed doses.
type DoseEntry struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Taken        bool      `json:"taken"`
}

// InteractionRecord is one known drug-drug interaction from the static
// dataset. Immutable after load.
type InteractionRecord struct {
	Drug1          string   `json:"drug1"`
	Drug2          string   `json:"drug2"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// InteractionMatch pairs two of the user's medications with the dataset
// record that links them. Transient result, never persisted.
type InteractionMatch struct {
	Med1        string            `json:"med1"`
	Med2        string            `json:"med2"`
	Interaction InteractionRecord `json:"interaction"`
}

// CorrelationResult reports how a subject (trigger or symptom type)
// shifts mood relative to the overall baseline.
type CorrelationResult struct {
	Subject         string  `json:"subject"`
	ConditionedMean float64 `json:"conditioned_mean"`
	BaselineMean    float64 `json:"baseline_mean"`
	Impact          float64 `json:"impact"` // ConditionedMean - BaselineMean
	SampleSize      int     `json:"sample_size"`
}

// StreakState holds the current and longest consecutive-day streaks.
type StreakState struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}
