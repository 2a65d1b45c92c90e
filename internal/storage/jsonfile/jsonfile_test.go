package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellkit/wellkit/internal/types"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wellkit.json")
	store, err := Open(path)
	require.NoError(t, err)
	return store, path
}

func TestStore_MedicationRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)

	med := &types.MedicationEntry{
		ID:        "med-1",
		Name:      "Aspirin 81mg tablet",
		Dosage:    "81mg",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.AddMedication(ctx, med))

	// Reopen from disk to prove persistence
	reopened, err := Open(path)
	require.NoError(t, err)

	meds, err := reopened.GetMedications(ctx)
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Aspirin 81mg tablet", meds[0].Name)
	assert.True(t, meds[0].Active)
}

func TestStore_GetActiveMedications(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	require.NoError(t, store.AddMedication(ctx, &types.MedicationEntry{ID: "1", Name: "Aspirin", Active: true}))
	require.NoError(t, store.AddMedication(ctx, &types.MedicationEntry{ID: "2", Name: "Ibuprofen", Active: false}))

	active, err := store.GetActiveMedications(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Aspirin", active[0].Name)
}

func TestStore_SetMedicationActive(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	require.NoError(t, store.AddMedication(ctx, &types.MedicationEntry{ID: "1", Name: "Aspirin", Active: true}))
	require.NoError(t, store.SetMedicationActive(ctx, "1", false))

	active, err := store.GetActiveMedications(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.Error(t, store.SetMedicationActive(ctx, "missing", true))
}

func TestStore_EventLogs(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)
	now := time.Now().UTC()

	require.NoError(t, store.AddMood(ctx, &types.MoodEntry{ID: "m-1", Timestamp: now, Rating: 7}))
	require.NoError(t, store.AddSymptom(ctx, &types.SymptomEntry{ID: "s-1", Timestamp: now, Type: "headache", Severity: 4}))
	require.NoError(t, store.AddTrigger(ctx, &types.TriggerEntry{ID: "t-1", Description: "stress", Intensity: 6, LastOccurred: now}))
	require.NoError(t, store.AddDose(ctx, &types.DoseEntry{ID: "d-1", Timestamp: now, Taken: true}))

	reopened, err := Open(path)
	require.NoError(t, err)

	moods, err := reopened.GetMoods(ctx)
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, 7, moods[0].Rating)

	symptoms, err := reopened.GetSymptoms(ctx)
	require.NoError(t, err)
	require.Len(t, symptoms, 1)

	triggers, err := reopened.GetTriggers(ctx)
	require.NoError(t, err)
	require.Len(t, triggers, 1)

	doses, err := reopened.GetDoses(ctx)
	require.NoError(t, err)
	require.Len(t, doses, 1)
}

func TestStore_RejectsInvalidEntries(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	assert.Error(t, store.AddMood(ctx, &types.MoodEntry{ID: "m-1", Timestamp: time.Now(), Rating: 11}))
	assert.Error(t, store.AddSymptom(ctx, &types.SymptomEntry{ID: "s-1", Timestamp: time.Now(), Type: ""}))
	assert.Error(t, store.AddMedication(ctx, &types.MedicationEntry{ID: "1"}))
}

func TestOpen_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellkit.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestMigrate_LegacyMoodLogs(t *testing.T) {
	raw := []byte(`{
		"moodLogs": [
			{"id": "m-1", "timestamp": "2026-08-01T09:00:00Z", "rating": 6}
		]
	}`)

	doc, err := migrate(raw)
	require.NoError(t, err)

	assert.Equal(t, currentVersion, doc.Version)
	require.Len(t, doc.MoodEntries, 1)
	assert.Equal(t, "m-1", doc.MoodEntries[0].ID)
}

func TestMigrate_CanonicalFieldWins(t *testing.T) {
	raw := []byte(`{
		"moodLogs": [
			{"id": "stale", "timestamp": "2026-08-01T09:00:00Z", "rating": 2}
		],
		"moodEntries": [
			{"id": "fresh", "timestamp": "2026-08-02T09:00:00Z", "rating": 8}
		]
	}`)

	doc, err := migrate(raw)
	require.NoError(t, err)

	require.Len(t, doc.MoodEntries, 1)
	assert.Equal(t, "fresh", doc.MoodEntries[0].ID)
}

func TestMigrate_UnsupportedVersion(t *testing.T) {
	_, err := migrate([]byte(`{"version": 99}`))
	assert.Error(t, err)
}

// A migrated legacy store is rewritten canonically on the next save:
// reopening must not resurrect moodLogs.
func TestMigration_PersistedOnSave(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wellkit.json")
	legacy := `{"moodLogs": [{"id": "m-1", "timestamp": "2026-08-01T09:00:00Z", "rating": 6}]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.AddMood(ctx, &types.MoodEntry{ID: "m-2", Timestamp: time.Now(), Rating: 5}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "moodLogs")
	assert.Contains(t, string(data), "moodEntries")

	reopened, err := Open(path)
	require.NoError(t, err)
	moods, err := reopened.GetMoods(ctx)
	require.NoError(t, err)
	assert.Len(t, moods, 2)
}
