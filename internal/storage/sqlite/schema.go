package sqlite

// schema is applied on every open; all statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS medications (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    dosage TEXT,
    active INTEGER NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS mood_entries (
    id TEXT PRIMARY KEY,
    timestamp DATETIME NOT NULL,
    rating INTEGER,
    note TEXT
);

CREATE TABLE IF NOT EXISTS symptom_entries (
    id TEXT PRIMARY KEY,
    timestamp DATETIME NOT NULL,
    type TEXT NOT NULL,
    severity INTEGER
);

CREATE TABLE IF NOT EXISTS trigger_entries (
    id TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    intensity INTEGER,
    last_occurred DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS dose_entries (
    id TEXT PRIMARY KEY,
    medication_id TEXT,
    timestamp DATETIME NOT NULL,
    taken INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_mood_timestamp ON mood_entries(timestamp);
CREATE INDEX IF NOT EXISTS idx_symptom_type_timestamp ON symptom_entries(type, timestamp);
CREATE INDEX IF NOT EXISTS idx_dose_timestamp ON dose_entries(timestamp);
CREATE INDEX IF NOT EXISTS idx_medications_active ON medications(active);
`
