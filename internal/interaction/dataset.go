package interaction

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wellkit/wellkit/internal/types"
)

// datasetDocument is the on-disk shape of the interaction dataset.
type datasetDocument struct {
	Interactions []types.InteractionRecord `json:"interactions"`
}

// LoadDataset reads the static interaction dataset from a JSON file.
//
// Callers are expected to degrade on error rather than fail: a missing
// or corrupt dataset means detection runs against an empty index and
// always reports no matches. LoadIndex does that degradation.
func LoadDataset(path string) ([]types.InteractionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interaction dataset: %w", err)
	}

	var doc datasetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse interaction dataset: %w", err)
	}

	return doc.Interactions, nil
}

// LoadIndex builds an index from the dataset at path, degrading to an
// empty index when the file is missing or unparsable. The returned
// error is informational: the index is always usable, and callers
// should log the error as a warning rather than abort.
func LoadIndex(path string) (*Index, error) {
	records, err := LoadDataset(path)
	if err != nil {
		return NewIndex(nil), err
	}
	return NewIndex(records), nil
}
