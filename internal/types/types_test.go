package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_Rank(t *testing.T) {
	assert.Equal(t, 3, SeveritySevere.Rank())
	assert.Equal(t, 2, SeverityModerate.Rank())
	assert.Equal(t, 1, SeverityMinor.Rank())
	assert.Equal(t, 0, Severity("UNKNOWN").Rank())

	// The rank ordering is part of the data model contract
	assert.Greater(t, SeveritySevere.Rank(), SeverityModerate.Rank())
	assert.Greater(t, SeverityModerate.Rank(), SeverityMinor.Rank())
}

func TestSeverity_IsValid(t *testing.T) {
	tests := []struct {
		severity Severity
		valid    bool
	}{
		{SeveritySevere, true},
		{SeverityModerate, true},
		{SeverityMinor, true},
		{Severity("severe"), false}, // case matters in the dataset
		{Severity(""), false},
		{Severity("FATAL"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.severity.IsValid())
		})
	}
}

func TestMoodEntry_Validate(t *testing.T) {
	now := time.Now()

	valid := &MoodEntry{ID: "m-1", Timestamp: now, Rating: 7}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		entry MoodEntry
	}{
		{"zero rating", MoodEntry{Timestamp: now}},
		{"rating too high", MoodEntry{Timestamp: now, Rating: 11}},
		{"negative rating", MoodEntry{Timestamp: now, Rating: -3}},
		{"missing timestamp", MoodEntry{Rating: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.entry.Validate())
		})
	}
}

func TestMoodEntry_HasRating(t *testing.T) {
	assert.True(t, (&MoodEntry{Rating: 1}).HasRating())
	assert.True(t, (&MoodEntry{Rating: 10}).HasRating())
	assert.False(t, (&MoodEntry{}).HasRating())
	assert.False(t, (&MoodEntry{Rating: 11}).HasRating())
}

func TestSymptomEntry_Validate(t *testing.T) {
	now := time.Now()

	valid := &SymptomEntry{Timestamp: now, Type: "headache", Severity: 5}
	require.NoError(t, valid.Validate())

	assert.Error(t, (&SymptomEntry{Timestamp: now, Severity: 5}).Validate())
	assert.Error(t, (&SymptomEntry{Timestamp: now, Type: "headache"}).Validate())
	assert.Error(t, (&SymptomEntry{Type: "headache", Severity: 5}).Validate())
}

func TestTriggerEntry_Validate(t *testing.T) {
	now := time.Now()

	valid := &TriggerEntry{Description: "poor sleep", Intensity: 6, LastOccurred: now}
	require.NoError(t, valid.Validate())

	assert.Error(t, (&TriggerEntry{Intensity: 6, LastOccurred: now}).Validate())
	assert.Error(t, (&TriggerEntry{Description: "x", LastOccurred: now}).Validate())
	assert.Error(t, (&TriggerEntry{Description: "x", Intensity: 6}).Validate())
}

func TestMedicationEntry_Validate(t *testing.T) {
	require.NoError(t, (&MedicationEntry{Name: "Aspirin"}).Validate())
	assert.Error(t, (&MedicationEntry{Name: "   "}).Validate())
	assert.Error(t, (&MedicationEntry{}).Validate())
}
