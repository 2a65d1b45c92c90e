package jsonfile

import (
	"encoding/json"
	"fmt"

	"github.com/wellkit/wellkit/internal/types"
)

// currentVersion is the schema version written by this build.
//
// Version history:
//
//	0 (implicit) — legacy documents kept mood entries under "moodLogs",
//	   with some writers duplicating them under "moodEntries" ad hoc.
//	1 — one canonical field set; "moodEntries" only.
const currentVersion = 1

// document is the canonical on-disk shape.
type document struct {
	Version        int                      `json:"version"`
	Medications    []*types.MedicationEntry `json:"medications"`
	MoodEntries    []*types.MoodEntry       `json:"moodEntries"`
	SymptomEntries []*types.SymptomEntry    `json:"symptomEntries"`
	TriggerEntries []*types.TriggerEntry    `json:"triggerEntries"`
	DoseEntries    []*types.DoseEntry       `json:"doseEntries"`
}

func newDocument() *document {
	return &document{Version: currentVersion}
}

// legacyDocument adds the field aliases older documents used. Only read
// during migration, never written.
type legacyDocument struct {
	document
	MoodLogs []*types.MoodEntry `json:"moodLogs"`
}

// migrate parses raw document bytes and upgrades legacy shapes to the
// current version. It runs exactly once, at the load boundary; the rest
// of the code only ever sees the canonical schema. There is no dual
// field to keep in sync afterward — saves write version 1 only.
func migrate(raw []byte) (*document, error) {
	var legacy legacyDocument
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("unparsable document: %w", err)
	}

	doc := legacy.document

	switch {
	case doc.Version == 0:
		// Canonical field wins when both are present; a legacy writer
		// that kept them in sync loses nothing, and one that diverged
		// most recently wrote moodEntries.
		if len(doc.MoodEntries) == 0 && len(legacy.MoodLogs) > 0 {
			doc.MoodEntries = legacy.MoodLogs
		}
		doc.Version = currentVersion
	case doc.Version == currentVersion:
		// Already canonical.
	default:
		return nil, fmt.Errorf("unsupported document version %d (this build reads up to %d)", doc.Version, currentVersion)
	}

	return &doc, nil
}
