// Package jsonfile implements storage.Storage over a single JSON
// document, the canonical interchange format of the trackers. The whole
// document is loaded into memory at Open and rewritten atomically on
// every mutation; event volumes here are a personal log, not a firehose.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wellkit/wellkit/internal/types"
)

// Store implements the Storage interface over a JSON file
type Store struct {
	path string
	doc  *document
}

// Open loads (or creates) the JSON store at path. Legacy documents are
// migrated to the current schema version once, here at the load
// boundary; saves always write the canonical shape.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read store: %w", err)
		}
		return &Store{path: path, doc: newDocument()}, nil
	}

	doc, err := migrate(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load store %s: %w", path, err)
	}

	return &Store{path: path, doc: doc}, nil
}

// save rewrites the document atomically: write a temp file in the same
// directory, then rename over the target.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".wellkit-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

// AddMedication adds a medication entry and persists the document
func (s *Store) AddMedication(ctx context.Context, med *types.MedicationEntry) error {
	if err := med.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	s.doc.Medications = append(s.doc.Medications, med)
	return s.save()
}

// GetMedications returns all medication entries
func (s *Store) GetMedications(ctx context.Context) ([]*types.MedicationEntry, error) {
	return s.doc.Medications, nil
}

// GetActiveMedications returns only entries with Active set
func (s *Store) GetActiveMedications(ctx context.Context) ([]*types.MedicationEntry, error) {
	var active []*types.MedicationEntry
	for _, med := range s.doc.Medications {
		if med.Active {
			active = append(active, med)
		}
	}
	return active, nil
}

// SetMedicationActive flips a medication's active flag
func (s *Store) SetMedicationActive(ctx context.Context, id string, active bool) error {
	for _, med := range s.doc.Medications {
		if med.ID == id {
			med.Active = active
			return s.save()
		}
	}
	return fmt.Errorf("medication %s not found", id)
}

// AddMood appends a mood entry
func (s *Store) AddMood(ctx context.Context, entry *types.MoodEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	s.doc.MoodEntries = append(s.doc.MoodEntries, entry)
	return s.save()
}

// GetMoods returns all mood entries
func (s *Store) GetMoods(ctx context.Context) ([]*types.MoodEntry, error) {
	return s.doc.MoodEntries, nil
}

// AddSymptom appends a symptom entry
func (s *Store) AddSymptom(ctx context.Context, entry *types.SymptomEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	s.doc.SymptomEntries = append(s.doc.SymptomEntries, entry)
	return s.save()
}

// GetSymptoms returns all symptom entries
func (s *Store) GetSymptoms(ctx context.Context) ([]*types.SymptomEntry, error) {
	return s.doc.SymptomEntries, nil
}

// AddTrigger appends a trigger entry
func (s *Store) AddTrigger(ctx context.Context, entry *types.TriggerEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	s.doc.TriggerEntries = append(s.doc.TriggerEntries, entry)
	return s.save()
}

// GetTriggers returns all trigger entries
func (s *Store) GetTriggers(ctx context.Context) ([]*types.TriggerEntry, error) {
	return s.doc.TriggerEntries, nil
}

// AddDose appends a dose entry
func (s *Store) AddDose(ctx context.Context, entry *types.DoseEntry) error {
	s.doc.DoseEntries = append(s.doc.DoseEntries, entry)
	return s.save()
}

// GetDoses returns all dose entries
func (s *Store) GetDoses(ctx context.Context) ([]*types.DoseEntry, error) {
	return s.doc.DoseEntries, nil
}

// Close flushes nothing; every mutation already persisted.
func (s *Store) Close() error {
	return nil
}
