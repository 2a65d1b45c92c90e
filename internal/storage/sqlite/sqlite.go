// Package sqlite implements storage.Storage on SQLite via database/sql
// and the wasm-based ncruces driver, so the binary stays cgo-free.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/wellkit/wellkit/internal/types"
)

// Store implements the Storage interface using SQLite
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the SQLite store at path. The special
// value ":memory:" creates an in-memory database, useful for tests.
func New(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		// WAL mode for crash safety on the single-user file
		dsn = "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// AddMedication inserts a medication entry
func (s *Store) AddMedication(ctx context.Context, med *types.MedicationEntry) error {
	if err := med.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if med.CreatedAt.IsZero() {
		med.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO medications (id, name, dosage, active, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, med.ID, med.Name, med.Dosage, med.Active, med.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert medication: %w", err)
	}
	return nil
}

// GetMedications returns all medication entries
func (s *Store) GetMedications(ctx context.Context) ([]*types.MedicationEntry, error) {
	return s.queryMedications(ctx, `
		SELECT id, name, dosage, active, created_at
		FROM medications ORDER BY created_at
	`)
}

// GetActiveMedications returns only entries with Active set
func (s *Store) GetActiveMedications(ctx context.Context) ([]*types.MedicationEntry, error) {
	return s.queryMedications(ctx, `
		SELECT id, name, dosage, active, created_at
		FROM medications WHERE active = 1 ORDER BY created_at
	`)
}

func (s *Store) queryMedications(ctx context.Context, query string) ([]*types.MedicationEntry, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query medications: %w", err)
	}
	defer rows.Close()

	var meds []*types.MedicationEntry
	for rows.Next() {
		var med types.MedicationEntry
		var dosage sql.NullString
		if err := rows.Scan(&med.ID, &med.Name, &dosage, &med.Active, &med.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan medication: %w", err)
		}
		if dosage.Valid {
			med.Dosage = dosage.String
		}
		meds = append(meds, &med)
	}
	return meds, rows.Err()
}

// SetMedicationActive flips a medication's active flag
func (s *Store) SetMedicationActive(ctx context.Context, id string, active bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE medications SET active = ? WHERE id = ?`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("medication %s not found", id)
	}
	return nil
}

// AddMood inserts a mood entry
func (s *Store) AddMood(ctx context.Context, entry *types.MoodEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO mood_entries (id, timestamp, rating, note)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Timestamp, entry.Rating, entry.Note)
	if err != nil {
		return fmt.Errorf("failed to insert mood entry: %w", err)
	}
	return nil
}

// GetMoods returns all mood entries. Rows with a NULL rating come back
// with Rating zero, which the analysis layers treat as absent.
func (s *Store) GetMoods(ctx context.Context) ([]*types.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, rating, note FROM mood_entries ORDER BY timestamp
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	var moods []*types.MoodEntry
	for rows.Next() {
		var m types.MoodEntry
		var rating sql.NullInt64
		var note sql.NullString
		if err := rows.Scan(&m.ID, &m.Timestamp, &rating, &note); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		if rating.Valid {
			m.Rating = int(rating.Int64)
		}
		if note.Valid {
			m.Note = note.String
		}
		moods = append(moods, &m)
	}
	return moods, rows.Err()
}

// AddSymptom inserts a symptom entry
func (s *Store) AddSymptom(ctx context.Context, entry *types.SymptomEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO symptom_entries (id, timestamp, type, severity)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Timestamp, entry.Type, entry.Severity)
	if err != nil {
		return fmt.Errorf("failed to insert symptom entry: %w", err)
	}
	return nil
}

// GetSymptoms returns all symptom entries
func (s *Store) GetSymptoms(ctx context.Context) ([]*types.SymptomEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, type, severity FROM symptom_entries ORDER BY timestamp
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query symptom entries: %w", err)
	}
	defer rows.Close()

	var symptoms []*types.SymptomEntry
	for rows.Next() {
		var sym types.SymptomEntry
		var severity sql.NullInt64
		if err := rows.Scan(&sym.ID, &sym.Timestamp, &sym.Type, &severity); err != nil {
			return nil, fmt.Errorf("failed to scan symptom entry: %w", err)
		}
		if severity.Valid {
			sym.Severity = int(severity.Int64)
		}
		symptoms = append(symptoms, &sym)
	}
	return symptoms, rows.Err()
}

// AddTrigger inserts a trigger entry
func (s *Store) AddTrigger(ctx context.Context, entry *types.TriggerEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trigger_entries (id, description, intensity, last_occurred)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Description, entry.Intensity, entry.LastOccurred)
	if err != nil {
		return fmt.Errorf("failed to insert trigger entry: %w", err)
	}
	return nil
}

// GetTriggers returns all trigger entries
func (s *Store) GetTriggers(ctx context.Context) ([]*types.TriggerEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, intensity, last_occurred FROM trigger_entries ORDER BY last_occurred
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trigger entries: %w", err)
	}
	defer rows.Close()

	var triggers []*types.TriggerEntry
	for rows.Next() {
		var trig types.TriggerEntry
		var intensity sql.NullInt64
		if err := rows.Scan(&trig.ID, &trig.Description, &intensity, &trig.LastOccurred); err != nil {
			return nil, fmt.Errorf("failed to scan trigger entry: %w", err)
		}
		if intensity.Valid {
			trig.Intensity = int(intensity.Int64)
		}
		triggers = append(triggers, &trig)
	}
	return triggers, rows.Err()
}

// AddDose inserts a dose entry
func (s *Store) AddDose(ctx context.Context, entry *types.DoseEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO dose_entries (id, medication_id, timestamp, taken)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.MedicationID, entry.Timestamp, entry.Taken)
	if err != nil {
		return fmt.Errorf("failed to insert dose entry: %w", err)
	}
	return nil
}

// GetDoses returns all dose entries
func (s *Store) GetDoses(ctx context.Context) ([]*types.DoseEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, medication_id, timestamp, taken FROM dose_entries ORDER BY timestamp
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dose entries: %w", err)
	}
	defer rows.Close()

	var doses []*types.DoseEntry
	for rows.Next() {
		var dose types.DoseEntry
		var medID sql.NullString
		if err := rows.Scan(&dose.ID, &medID, &dose.Timestamp, &dose.Taken); err != nil {
			return nil, fmt.Errorf("failed to scan dose entry: %w", err)
		}
		if medID.Valid {
			dose.MedicationID = medID.String
		}
		doses = append(doses, &dose)
	}
	return doses, rows.Err()
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
