package interaction

import (
	"github.com/wellkit/wellkit/internal/types"
)

// Index is a bidirectional lookup table over the static interaction
// dataset. Every record is inserted under both "{normA}::{normB}" and
// "{normB}::{normA}", so lookups need no direction check.
//
// Scanning the dataset for every candidate pair would be
// O(records x pairs); precomputing the index collapses each lookup to
// O(1), which matters once checks run on every medication add against a
// dataset that can grow to thousands of known interactions.
//
// The index is immutable after construction and safe to share read-only.
// It is rebuilt only when the dataset is reloaded.
type Index struct {
	records map[string][]types.InteractionRecord
	size    int
}

const pairKeySep = "::"

func pairKey(a, b string) string {
	return a + pairKeySep + b
}

// NewIndex builds an index from dataset records. Both drug names of each
// record are normalized before keying. A nil or empty record list yields
// a valid empty index.
func NewIndex(records []types.InteractionRecord) *Index {
	idx := &Index{
		records: make(map[string][]types.InteractionRecord, len(records)*2),
	}

	for _, rec := range records {
		a := Normalize(rec.Drug1)
		b := Normalize(rec.Drug2)
		if a == "" || b == "" {
			continue
		}

		idx.records[pairKey(a, b)] = append(idx.records[pairKey(a, b)], rec)
		if a != b {
			idx.records[pairKey(b, a)] = append(idx.records[pairKey(b, a)], rec)
		}
		idx.size++
	}

	return idx
}

// Lookup returns all known interaction records for a pair of canonical
// drug names, in either order. Returns nil when the pair is unknown.
func (idx *Index) Lookup(canonicalA, canonicalB string) []types.InteractionRecord {
	return idx.records[pairKey(canonicalA, canonicalB)]
}

// Len returns the number of dataset records indexed (each record counts
// once, not once per direction).
func (idx *Index) Len() int {
	return idx.size
}
