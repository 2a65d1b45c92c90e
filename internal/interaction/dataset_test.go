package interaction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellkit/wellkit/internal/types"
)

const sampleDataset = `{
  "interactions": [
    {
      "drug1": "Aspirin",
      "drug2": "Ibuprofen",
      "severity": "MODERATE",
      "description": "Increased bleeding risk",
      "recommendation": "Space doses apart"
    },
    {
      "drug1": "Warfarin",
      "drug2": "Aspirin",
      "severity": "SEVERE",
      "description": "Major bleeding risk",
      "recommendation": "Avoid combination"
    }
  ]
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interactions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDataset(t *testing.T) {
	path := writeDataset(t, sampleDataset)

	records, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Aspirin", records[0].Drug1)
	assert.Equal(t, types.SeveritySevere, records[1].Severity)
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadDataset_CorruptJSON(t *testing.T) {
	path := writeDataset(t, `{"interactions": [`)

	_, err := LoadDataset(path)
	assert.Error(t, err)
}

// A missing or corrupt dataset degrades to an empty index: detection
// always returns no matches, and the calling command never fails.
func TestLoadIndex_DegradesToEmpty(t *testing.T) {
	idx, err := LoadIndex(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	require.NotNil(t, idx)
	assert.Equal(t, 0, idx.Len())

	d := NewDetector(idx)
	assert.Empty(t, d.Detect([]string{"Aspirin"}, "Ibuprofen"))
}

func TestLoadIndex_Valid(t *testing.T) {
	path := writeDataset(t, sampleDataset)

	idx, err := LoadIndex(path)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
}
