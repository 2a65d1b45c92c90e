package types

// Severity is the categorical risk level of a known drug pair.
//
// The dataset carries no numeric rank, so the ordering is defined here as
// a first-class part of the data model rather than inferred at display
// sites: SEVERE=3 > MODERATE=2 > MINOR=1.
type Severity string

const (
	SeveritySevere   Severity = "SEVERE"
	SeverityModerate Severity = "MODERATE"
	SeverityMinor    Severity = "MINOR"
)

// IsValid checks if the severity value is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeveritySevere, SeverityModerate, SeverityMinor:
		return true
	}
	return false
}

// Rank returns the numeric ordering of the severity. Higher is more
// dangerous. Unknown severities rank 0, below MINOR.
func (s Severity) Rank() int {
	switch s {
	case SeveritySevere:
		return 3
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 1
	}
	return 0
}
