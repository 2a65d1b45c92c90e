// Package storage defines the persistence interface behind the wellkit
// trackers. The analysis engines never touch storage directly: commands
// load event lists through this interface and hand plain slices to the
// pure computation packages.
package storage

import (
	"context"

	"github.com/wellkit/wellkit/internal/types"
)

// Storage is the interface all persistence backends implement.
// Backends are single-user and invoked from one process at a time; no
// backend needs internal locking beyond what its medium requires.
type Storage interface {
	// Medications
	AddMedication(ctx context.Context, med *types.MedicationEntry) error
	GetMedications(ctx context.Context) ([]*types.MedicationEntry, error)
	GetActiveMedications(ctx context.Context) ([]*types.MedicationEntry, error)
	SetMedicationActive(ctx context.Context, id string, active bool) error

	// Mood log
	AddMood(ctx context.Context, entry *types.MoodEntry) error
	GetMoods(ctx context.Context) ([]*types.MoodEntry, error)

	// Symptom log
	AddSymptom(ctx context.Context, entry *types.SymptomEntry) error
	GetSymptoms(ctx context.Context) ([]*types.SymptomEntry, error)

	// Trigger log
	AddTrigger(ctx context.Context, entry *types.TriggerEntry) error
	GetTriggers(ctx context.Context) ([]*types.TriggerEntry, error)

	// Dose log (adherence)
	AddDose(ctx context.Context, entry *types.DoseEntry) error
	GetDoses(ctx context.Context) ([]*types.DoseEntry, error)

	// Lifecycle
	Close() error
}
